package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/app"
	"github.com/studypartner/go-study-partner/internal/mock"
	"github.com/studypartner/go-study-partner/models"
	"go.uber.org/mock/gomock"
)

func newTestStudySvc(t *testing.T, ctrl *gomock.Controller) (*clientStudyService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStudyService(mockAdapter).(*clientStudyService)
	return svc, mockAdapter
}

// ── LoadExisting ────────────────────────────────────────────────────────────

func TestClientStudyService_LoadExisting_SummaryFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	summary := models.Summary{ID: 1, NoteID: 3, Content: "Cells are small."}
	mockAdapter.EXPECT().GetSummary(ctx, int64(3)).Return(summary, nil)

	content, err := svc.LoadExisting(ctx, 3, ContentSummary)
	require.NoError(t, err)
	assert.Equal(t, ContentSummary, content.Kind)
	assert.Equal(t, summary, content.Summary)
}

func TestClientStudyService_LoadExisting_SummaryAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgSummaryNotFound)
	mockAdapter.EXPECT().GetSummary(ctx, int64(3)).Return(models.Summary{}, transportErr)

	_, err := svc.LoadExisting(ctx, 3, ContentSummary)
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestClientStudyService_LoadExisting_FlashcardsEmptyListMeansAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	// untouched notes answer with an empty (or null) list, not a 404
	mockAdapter.EXPECT().GetFlashcards(ctx, int64(3)).Return([]models.Flashcard{}, nil)

	_, err := svc.LoadExisting(ctx, 3, ContentFlashcards)
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestClientStudyService_LoadExisting_QuizFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	questions := []models.QuizQuestion{{ID: 1, Question: "Q1", Options: []string{"a", "b"}, Answer: 1}}
	mockAdapter.EXPECT().GetQuiz(ctx, int64(3)).Return(questions, nil)

	content, err := svc.LoadExisting(ctx, 3, ContentQuiz)
	require.NoError(t, err)
	assert.Equal(t, questions, content.Quiz)
}

func TestClientStudyService_LoadExisting_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Failed to fetch quiz")
	mockAdapter.EXPECT().GetQuiz(ctx, int64(3)).Return(nil, transportErr)

	_, err := svc.LoadExisting(ctx, 3, ContentQuiz)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrContentNotFound)
	require.ErrorIs(t, err, ErrServerInternal)
}

// ── Generate ────────────────────────────────────────────────────────────────

func TestClientStudyService_Generate_Flashcards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	cards := []models.Flashcard{{ID: 1, Question: "Q1", Answer: "A1"}}
	mockAdapter.EXPECT().GenerateFlashcards(ctx, int64(3)).Return(cards, nil)

	content, err := svc.Generate(ctx, 3, ContentFlashcards)
	require.NoError(t, err)
	assert.Equal(t, cards, content.Flashcards)
}

func TestClientStudyService_Generate_ServerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrBadGateway, "generation service unavailable")
	mockAdapter.EXPECT().GenerateSummary(ctx, int64(3)).Return(models.Summary{}, transportErr)

	_, err := svc.Generate(ctx, 3, ContentSummary)
	require.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientStudyService_Generate_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestStudySvc(t, ctrl)

	_, err := svc.Generate(context.Background(), 3, ContentKind("essay"))
	require.Error(t, err)
}

// ── Study sessions ──────────────────────────────────────────────────────────

func TestClientStudyService_BeginSession_Quiz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	expected := models.StudySession{ID: 100, NoteID: 3, Type: "quiz"}
	mockAdapter.EXPECT().
		CreateStudySession(ctx, models.CreateStudySessionRequest{NoteID: 3, Type: "quiz"}).
		Return(expected, nil)

	session, err := svc.BeginSession(ctx, 3, ContentQuiz)
	require.NoError(t, err)
	assert.Equal(t, expected, session)
}

func TestClientStudyService_BeginSession_SummaryRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestStudySvc(t, ctrl)

	_, err := svc.BeginSession(context.Background(), 3, ContentSummary)
	require.Error(t, err)
}

func TestClientStudyService_CompleteSession_WithScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	score := 67
	mockAdapter.EXPECT().
		UpdateStudySession(ctx, int64(100), models.UpdateStudySessionRequest{Score: &score, Completed: true}).
		Return(models.StudySession{ID: 100, Score: &score, Completed: true}, nil)

	require.NoError(t, svc.CompleteSession(ctx, 100, &score))
}

func TestClientStudyService_CompleteSession_NoScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestStudySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		UpdateStudySession(ctx, int64(101), models.UpdateStudySessionRequest{Score: nil, Completed: true}).
		Return(models.StudySession{ID: 101, Completed: true}, nil)

	require.NoError(t, svc.CompleteSession(ctx, 101, nil))
}
