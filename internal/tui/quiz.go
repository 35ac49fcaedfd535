package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/studypartner/go-study-partner/models"
)

const quizUnanswered = -1

// quizModel is the state of a quiz run. Each question goes through select →
// check → next: an option must be recorded before its correctness can be
// revealed, and the run cannot advance past an unanswered question. It is a
// plain struct so the gating rules can be exercised without a running
// program.
type quizModel struct {
	questions []models.QuizQuestion
	answers   []int

	cursor      int
	highlight   int
	showResults bool
	completed   bool
}

func newQuizModel(questions []models.QuizQuestion) quizModel {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = quizUnanswered
	}
	return quizModel{questions: questions, answers: answers}
}

func (m quizModel) currentQuestion() models.QuizQuestion {
	return m.questions[m.cursor]
}

// hasOptions reports whether the current question can be answered at all.
// The backend occasionally produces a question with no options; such a
// question is shown with a notice instead of option rows.
func (m quizModel) hasOptions() bool {
	return len(m.questions) > 0 && len(m.currentQuestion().Options) > 0
}

// MoveHighlight moves the option highlight by delta, wrapping around.
// Ignored while the answer is revealed or the run is complete.
func (m *quizModel) MoveHighlight(delta int) {
	if m.showResults || m.completed || !m.hasOptions() {
		return
	}
	n := len(m.currentQuestion().Options)
	m.highlight = (m.highlight + delta + n) % n
}

// Select records the given option for the current question, overwriting any
// prior selection. Selecting is only permitted before the answer is revealed.
func (m *quizModel) Select(idx int) {
	if m.showResults || m.completed || !m.hasOptions() {
		return
	}
	if idx < 0 || idx >= len(m.currentQuestion().Options) {
		return
	}
	m.answers[m.cursor] = idx
}

// Check reveals the correct answer for the current question. It does nothing
// until an option has been recorded.
func (m *quizModel) Check() {
	if m.completed || len(m.questions) == 0 {
		return
	}
	if m.answers[m.cursor] == quizUnanswered {
		return
	}
	m.showResults = true
}

// Next advances to the following question. It is a no-op while the current
// question is unanswered; past the last question it completes the run
// instead of moving.
func (m *quizModel) Next() {
	if m.completed || len(m.questions) == 0 {
		return
	}
	if m.answers[m.cursor] == quizUnanswered {
		return
	}

	if m.cursor >= len(m.questions)-1 {
		m.completed = true
		return
	}

	m.cursor++
	m.showResults = false
	m.syncHighlight()
}

// Prev steps back one question. The arrived-at question opens unrevealed but
// keeps its recorded answer.
func (m *quizModel) Prev() {
	if m.completed || m.cursor == 0 {
		return
	}
	m.cursor--
	m.showResults = false
	m.syncHighlight()
}

// Reset clears every recorded answer and returns to the first question,
// ready for a retake.
func (m *quizModel) Reset() {
	for i := range m.answers {
		m.answers[i] = quizUnanswered
	}
	m.cursor = 0
	m.highlight = 0
	m.showResults = false
	m.completed = false
}

func (m *quizModel) syncHighlight() {
	m.highlight = 0
	if prev := m.answers[m.cursor]; prev != quizUnanswered {
		m.highlight = prev
	}
}

// Score returns the percentage of correct answers rounded to the nearest
// integer. Unanswered questions count as wrong. An empty quiz scores zero.
func (m quizModel) Score() int {
	if len(m.questions) == 0 {
		return 0
	}

	correct := 0
	for i, q := range m.questions {
		if m.answers[i] != quizUnanswered && m.answers[i] == q.Answer {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(m.questions))))
}

func (m quizModel) view() string {
	if len(m.questions) == 0 {
		return "No quiz questions to show."
	}

	if m.completed {
		return fmt.Sprintf("Quiz finished.\n\nYour score: %d%%\n", m.Score())
	}

	q := m.currentQuestion()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Question %d of %d\n\n", m.cursor+1, len(m.questions)))
	b.WriteString(q.Question + "\n\n")

	if len(q.Options) == 0 {
		b.WriteString(helpStyle.Render("No answer options available for this question."))
		b.WriteString("\n")
		return b.String()
	}

	for i, opt := range q.Options {
		b.WriteString(m.renderOption(i, opt, q.Answer))
	}

	return b.String()
}

func (m quizModel) renderOption(i int, opt string, correct int) string {
	cursor := " "
	if i == m.highlight {
		cursor = ">"
	}

	mark := " "
	switch {
	case m.showResults && i == correct:
		mark = "✓"
	case m.showResults && i == m.answers[m.cursor] && i != correct:
		mark = "✗"
	case !m.showResults && i == m.answers[m.cursor]:
		mark = "•"
	}

	return fmt.Sprintf("%s %s %s\n", cursor, mark, opt)
}
