package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/models"
)

type clientStudyService struct {
	adapter adapter.ServerAdapter
}

func NewClientStudyService(serverAdapter adapter.ServerAdapter) ClientStudyService {
	return &clientStudyService{adapter: serverAdapter}
}

func (s *clientStudyService) LoadExisting(ctx context.Context, noteID int64, kind ContentKind) (StudyContent, error) {
	content := StudyContent{Kind: kind}

	var err error
	switch kind {
	case ContentSummary:
		content.Summary, err = s.adapter.GetSummary(ctx, noteID)
	case ContentFlashcards:
		content.Flashcards, err = s.adapter.GetFlashcards(ctx, noteID)
	case ContentQuiz:
		content.Quiz, err = s.adapter.GetQuiz(ctx, noteID)
	default:
		return StudyContent{}, fmt.Errorf("unknown content kind %q", kind)
	}

	if err != nil {
		return StudyContent{}, mapAdapterError(err)
	}

	// Flashcard and quiz reads succeed with an empty list when nothing has
	// been generated; normalise that to the same signal a missing summary
	// produces.
	if content.Empty() {
		return StudyContent{}, ErrContentNotFound
	}

	return content, nil
}

func (s *clientStudyService) Generate(ctx context.Context, noteID int64, kind ContentKind) (StudyContent, error) {
	content := StudyContent{Kind: kind}

	var err error
	switch kind {
	case ContentSummary:
		content.Summary, err = s.adapter.GenerateSummary(ctx, noteID)
	case ContentFlashcards:
		content.Flashcards, err = s.adapter.GenerateFlashcards(ctx, noteID)
	case ContentQuiz:
		content.Quiz, err = s.adapter.GenerateQuiz(ctx, noteID)
	default:
		return StudyContent{}, fmt.Errorf("unknown content kind %q", kind)
	}

	if err != nil {
		return StudyContent{}, mapAdapterError(err)
	}

	return content, nil
}

func (s *clientStudyService) BeginSession(ctx context.Context, noteID int64, kind ContentKind) (models.StudySession, error) {
	if kind == ContentSummary {
		return models.StudySession{}, errors.New("summaries have no study sessions")
	}

	session, err := s.adapter.CreateStudySession(ctx, models.CreateStudySessionRequest{
		NoteID: noteID,
		Type:   string(kind),
	})
	if err != nil {
		return models.StudySession{}, mapAdapterError(err)
	}

	return session, nil
}

func (s *clientStudyService) CompleteSession(ctx context.Context, sessionID int64, score *int) error {
	req := models.UpdateStudySessionRequest{Score: score, Completed: true}

	if _, err := s.adapter.UpdateStudySession(ctx, sessionID, req); err != nil {
		return mapAdapterError(err)
	}

	return nil
}
