package tui

import (
	"fmt"
	"strings"

	"github.com/studypartner/go-study-partner/models"
)

// flashcardModel is the state of a flashcard run: a position in the deck and
// the side of the current card. It is a plain struct so the deck logic can be
// exercised without a running program.
type flashcardModel struct {
	cards   []models.Flashcard
	cursor  int
	flipped bool
}

func newFlashcardModel(cards []models.Flashcard) flashcardModel {
	return flashcardModel{cards: cards}
}

// Next advances to the following card. Moving resets the card to its
// question side; past the last card the position stays put.
func (m *flashcardModel) Next() {
	if m.cursor < len(m.cards)-1 {
		m.cursor++
		m.flipped = false
	}
}

// Prev steps back one card and resets it to the question side.
func (m *flashcardModel) Prev() {
	if m.cursor > 0 {
		m.cursor--
		m.flipped = false
	}
}

// Reset returns to the first card, question side up.
func (m *flashcardModel) Reset() {
	m.cursor = 0
	m.flipped = false
}

// Flip toggles between the question and the answer of the current card.
func (m *flashcardModel) Flip() {
	if len(m.cards) == 0 {
		return
	}
	m.flipped = !m.flipped
}

func (m flashcardModel) view() string {
	if len(m.cards) == 0 {
		return "No flashcards to show."
	}

	card := m.cards[m.cursor]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Card %d of %d\n\n", m.cursor+1, len(m.cards)))

	if m.flipped {
		b.WriteString(cardStyle.Render("A: " + card.Answer))
	} else {
		b.WriteString(cardStyle.Render("Q: " + card.Question))
	}
	b.WriteString("\n")

	return b.String()
}
