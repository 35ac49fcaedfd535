// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studypartner/go-study-partner/internal/service"
	"github.com/studypartner/go-study-partner/models"
)

type contentStatus int

const (
	statusAbsent contentStatus = iota
	statusLoading
	statusPresent
	statusGenerating
	statusError
)

// contentState tracks one study content kind on the study screen.
type contentState struct {
	status  contentStatus
	content service.StudyContent
	errText string
}

type (
	studyContentLoadedMsg struct {
		kind    service.ContentKind
		content service.StudyContent
		err     error
	}

	studyContentGeneratedMsg struct {
		kind    service.ContentKind
		content service.StudyContent
		err     error
	}

	studySessionStartedMsg struct {
		kind    service.ContentKind
		session models.StudySession
		err     error
	}

	studySessionSavedMsg struct {
		err error
	}

	clipboardCopiedMsg struct {
		err error
	}
)

var studyTabs = []service.ContentKind{
	service.ContentSummary,
	service.ContentFlashcards,
	service.ContentQuiz,
}

// studyModel is the per-note study screen: three tabs (summary, flashcards,
// quiz), each with its own generate-on-demand state, plus the flashcard
// viewer and the quiz runner.
type studyModel struct {
	ctx   context.Context
	study service.ClientStudyService
	note  models.Note

	tab    int
	states map[service.ContentKind]*contentState
	spin   spinner.Model

	flash       flashcardModel
	flashActive bool
	quiz        quizModel
	quizActive  bool

	// sessionID is the telemetry session of the active run, 0 when the
	// session could not be started.
	sessionID int64

	statusText string
	closed     bool
}

func newStudyModel(ctx context.Context, study service.ClientStudyService, note models.Note) studyModel {
	states := make(map[service.ContentKind]*contentState, len(studyTabs))
	for _, kind := range studyTabs {
		states[kind] = &contentState{status: statusLoading}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return studyModel{
		ctx:    ctx,
		study:  study,
		note:   note,
		states: states,
		spin:   sp,
	}
}

func (m studyModel) init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for _, kind := range studyTabs {
		cmds = append(cmds, m.cmdLoadExisting(kind))
	}
	return tea.Batch(cmds...)
}

func (m studyModel) activeKind() service.ContentKind {
	return studyTabs[m.tab]
}

func (m studyModel) update(msg tea.Msg) (studyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.anyBusy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case studyContentLoadedMsg:
		state := m.states[msg.kind]
		if msg.err != nil {
			// Nothing generated yet and transient fetch failures look the
			// same here: the tab just offers to generate.
			state.status = statusAbsent
			return m, nil
		}
		state.status = statusPresent
		state.content = msg.content
		return m, nil

	case studyContentGeneratedMsg:
		state := m.states[msg.kind]
		if msg.err != nil {
			// A failed regeneration keeps whatever was on screen before.
			state.status = statusError
			if !state.content.Empty() {
				state.status = statusPresent
			}
			state.errText = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		state.status = statusPresent
		state.content = msg.content
		state.errText = ""
		return m, nil

	case studySessionStartedMsg:
		if msg.err == nil {
			m.sessionID = msg.session.ID
		}
		return m, nil

	case studySessionSavedMsg:
		return m, nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.statusText = "Could not copy to clipboard"
		} else {
			m.statusText = "Copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m studyModel) handleKey(msg tea.KeyMsg) (studyModel, tea.Cmd) {
	if m.flashActive {
		return m.handleFlashcardKey(msg)
	}
	if m.quizActive {
		return m.handleQuizKey(msg)
	}

	m.statusText = ""

	switch {
	case key.Matches(msg, keys.esc):
		m.closed = true
		return m, nil

	case key.Matches(msg, keys.tab), key.Matches(msg, keys.right):
		m.tab = (m.tab + 1) % len(studyTabs)
		return m, nil

	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.left):
		m.tab = (m.tab + len(studyTabs) - 1) % len(studyTabs)
		return m, nil

	case key.Matches(msg, keys.gen):
		return m.startGenerate()

	case key.Matches(msg, keys.copy):
		return m.copySummary()

	case key.Matches(msg, keys.enter):
		return m.startRun()
	}

	return m, nil
}

func (m studyModel) startGenerate() (studyModel, tea.Cmd) {
	kind := m.activeKind()
	state := m.states[kind]
	if state.status == statusLoading || state.status == statusGenerating {
		return m, nil
	}

	state.status = statusGenerating
	state.errText = ""
	return m, tea.Batch(m.spin.Tick, m.cmdGenerate(kind))
}

func (m studyModel) copySummary() (studyModel, tea.Cmd) {
	state := m.states[service.ContentSummary]
	if m.activeKind() != service.ContentSummary || state.status != statusPresent {
		return m, nil
	}

	content := state.content.Summary.Content
	return m, func() tea.Msg {
		return clipboardCopiedMsg{err: clipboard.WriteAll(content)}
	}
}

// startRun opens the flashcard viewer or the quiz runner for the active tab
// and records the study session start. Telemetry is best effort: the run
// starts even if the session could not be recorded.
func (m studyModel) startRun() (studyModel, tea.Cmd) {
	kind := m.activeKind()
	state := m.states[kind]
	if state.status != statusPresent {
		return m, nil
	}

	switch kind {
	case service.ContentFlashcards:
		m.flash = newFlashcardModel(state.content.Flashcards)
		m.flashActive = true
	case service.ContentQuiz:
		m.quiz = newQuizModel(state.content.Quiz)
		m.quizActive = true
	default:
		return m, nil
	}

	m.sessionID = 0
	return m, m.cmdBeginSession(kind)
}

func (m studyModel) handleFlashcardKey(msg tea.KeyMsg) (studyModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.flashActive = false
		return m, m.cmdCompleteSession(nil)
	case key.Matches(msg, keys.right):
		m.flash.Next()
	case key.Matches(msg, keys.left):
		m.flash.Prev()
	case key.Matches(msg, keys.refresh):
		m.flash.Reset()
	case key.Matches(msg, keys.copy):
		if len(m.flash.cards) > 0 {
			answer := m.flash.cards[m.flash.cursor].Answer
			return m, func() tea.Msg { return clipboardCopiedMsg{err: clipboard.WriteAll(answer)} }
		}
	case key.Matches(msg, keys.flip), key.Matches(msg, keys.enter):
		m.flash.Flip()
	}
	return m, nil
}

func (m studyModel) handleQuizKey(msg tea.KeyMsg) (studyModel, tea.Cmd) {
	if m.quiz.completed {
		switch {
		case key.Matches(msg, keys.refresh):
			m.quiz.Reset()
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.quizActive = false
			score := m.quiz.Score()
			return m, m.cmdCompleteSession(&score)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		// Abandoned run: the session stays incomplete.
		m.quizActive = false
		return m, nil
	case key.Matches(msg, keys.up):
		m.quiz.MoveHighlight(-1)
	case key.Matches(msg, keys.down):
		m.quiz.MoveHighlight(1)
	case key.Matches(msg, keys.enter):
		if m.quiz.showResults {
			m.quiz.Next()
		} else {
			m.quiz.Select(m.quiz.highlight)
			m.quiz.Check()
		}
	case key.Matches(msg, keys.right):
		m.quiz.Next()
	case key.Matches(msg, keys.left):
		m.quiz.Prev()
	}
	return m, nil
}

func (m studyModel) anyBusy() bool {
	for _, state := range m.states {
		if state.status == statusLoading || state.status == statusGenerating {
			return true
		}
	}
	return false
}

func (m studyModel) cmdLoadExisting(kind service.ContentKind) tea.Cmd {
	return func() tea.Msg {
		content, err := m.study.LoadExisting(m.ctx, m.note.ID, kind)
		return studyContentLoadedMsg{kind: kind, content: content, err: err}
	}
}

func (m studyModel) cmdGenerate(kind service.ContentKind) tea.Cmd {
	return func() tea.Msg {
		content, err := m.study.Generate(m.ctx, m.note.ID, kind)
		return studyContentGeneratedMsg{kind: kind, content: content, err: err}
	}
}

func (m studyModel) cmdBeginSession(kind service.ContentKind) tea.Cmd {
	return func() tea.Msg {
		session, err := m.study.BeginSession(m.ctx, m.note.ID, kind)
		return studySessionStartedMsg{kind: kind, session: session, err: err}
	}
}

func (m studyModel) cmdCompleteSession(score *int) tea.Cmd {
	sessionID := m.sessionID
	if sessionID == 0 {
		return nil
	}
	return func() tea.Msg {
		return studySessionSavedMsg{err: m.study.CompleteSession(m.ctx, sessionID, score)}
	}
}

func (m studyModel) view() string {
	if m.flashActive {
		return renderPage(
			"FLASHCARDS: "+fitText(m.note.Title, 40),
			m.flash.view(),
			"←/→: prev/next • space: flip • c: copy answer • r: restart • esc: finish",
		)
	}
	if m.quizActive {
		hotKeys := "↑/↓: select • enter: check/next • esc: abandon"
		if m.quiz.completed {
			hotKeys = "r: retake • enter: finish"
		}
		return renderPage("QUIZ: "+fitText(m.note.Title, 40), m.quiz.view(), hotKeys)
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderActiveTab())

	if m.statusText != "" {
		b.WriteString("\n" + helpStyle.Render(m.statusText) + "\n")
	}

	hotKeys := "tab: switch • g: generate • esc: back"
	switch m.activeKind() {
	case service.ContentSummary:
		hotKeys = "tab: switch • g: generate • c: copy • esc: back"
	case service.ContentFlashcards, service.ContentQuiz:
		hotKeys = "tab: switch • g: generate • enter: start • esc: back"
	}

	return renderPage("STUDY: "+fitText(m.note.Title, 40), b.String(), hotKeys)
}

func (m studyModel) renderTabs() string {
	labels := make([]string, 0, len(studyTabs))
	for i, kind := range studyTabs {
		label := strings.ToUpper(string(kind))
		if i == m.tab {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, " ")
}

func (m studyModel) renderActiveTab() string {
	kind := m.activeKind()
	state := m.states[kind]

	switch state.status {
	case statusLoading:
		return m.spin.View() + " Loading..."
	case statusGenerating:
		return m.spin.View() + " Generating, this may take a moment..."
	case statusError:
		return errorStyle.Render("Generation failed: "+state.errText) + "\n\nPress g to retry."
	case statusAbsent:
		return fmt.Sprintf("No %s yet for this note.\n\nPress g to generate.", kind)
	}

	var prefix string
	if state.errText != "" {
		prefix = errorStyle.Render("Generation failed: "+state.errText) + "\n\n"
	}

	switch kind {
	case service.ContentSummary:
		return prefix + state.content.Summary.Content
	case service.ContentFlashcards:
		return prefix + fmt.Sprintf("%d flashcards ready.\n\nPress enter to start studying.", len(state.content.Flashcards))
	case service.ContentQuiz:
		return prefix + fmt.Sprintf("%d quiz questions ready.\n\nPress enter to start the quiz.", len(state.content.Quiz))
	}
	return ""
}
