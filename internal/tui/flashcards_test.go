package tui

import (
	"testing"

	"github.com/studypartner/go-study-partner/models"
	"github.com/stretchr/testify/assert"
)

func testDeck() []models.Flashcard {
	return []models.Flashcard{
		{ID: 1, Question: "What is a goroutine?", Answer: "A lightweight thread managed by the Go runtime"},
		{ID: 2, Question: "What does defer do?", Answer: "Schedules a call to run when the function returns"},
		{ID: 3, Question: "What is a channel?", Answer: "A typed conduit for communication between goroutines"},
	}
}

func TestFlashcardModel_NextClampsAtLastCard(t *testing.T) {
	m := newFlashcardModel(testDeck())

	m.Next()
	m.Next()
	assert.Equal(t, 2, m.cursor)

	m.Next()
	assert.Equal(t, 2, m.cursor, "position must not move past the last card")
}

func TestFlashcardModel_PrevClampsAtFirstCard(t *testing.T) {
	m := newFlashcardModel(testDeck())

	m.Prev()
	assert.Equal(t, 0, m.cursor, "position must not move before the first card")
}

func TestFlashcardModel_FlipTogglesSides(t *testing.T) {
	m := newFlashcardModel(testDeck())

	assert.False(t, m.flipped)
	m.Flip()
	assert.True(t, m.flipped)
	m.Flip()
	assert.False(t, m.flipped)
}

func TestFlashcardModel_NavigationResetsToQuestionSide(t *testing.T) {
	m := newFlashcardModel(testDeck())

	m.Flip()
	m.Next()
	assert.False(t, m.flipped, "next card must open on its question side")

	m.Flip()
	m.Prev()
	assert.False(t, m.flipped, "previous card must open on its question side")
}

func TestFlashcardModel_NavigationAtBoundaryKeepsFlip(t *testing.T) {
	m := newFlashcardModel(testDeck())
	m.cursor = 2

	m.Flip()
	m.Next()
	assert.True(t, m.flipped, "a clamped move is not a move")
}

func TestFlashcardModel_EmptyDeck(t *testing.T) {
	m := newFlashcardModel(nil)

	m.Next()
	m.Prev()
	m.Flip()

	assert.Equal(t, 0, m.cursor)
	assert.False(t, m.flipped)
	assert.Contains(t, m.view(), "No flashcards")
}

func TestFlashcardModel_ViewShowsPositionAndSide(t *testing.T) {
	m := newFlashcardModel(testDeck())
	m.Next()

	view := m.view()
	assert.Contains(t, view, "Card 2 of 3")
	assert.Contains(t, view, "What does defer do?")

	m.Flip()
	assert.Contains(t, m.view(), "Schedules a call")
}
