package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/app"
	"github.com/studypartner/go-study-partner/internal/mock"
	"github.com/studypartner/go-study-partner/internal/validators"
	"github.com/studypartner/go-study-partner/models"
	"go.uber.org/mock/gomock"
)

func newTestNotesSvc(t *testing.T, ctrl *gomock.Controller) (*clientNotesService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientNotesService(mockAdapter, validators.NewStudyValidator()).(*clientNotesService)
	return svc, mockAdapter
}

func TestClientNotesService_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	content := []byte("mitochondria is the powerhouse of the cell")
	path := filepath.Join(t.TempDir(), "lecture notes.txt")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	mockAdapter.EXPECT().UploadNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.UploadRequest) (models.Note, error) {
			assert.Equal(t, "lecture notes.txt", req.Name)
			assert.Equal(t, base64.StdEncoding.EncodeToString(content), req.File)
			return models.Note{ID: 1, FileName: req.Name, FileType: "txt"}, nil
		},
	)

	note, err := svc.Upload(ctx, path)
	require.NoError(t, err)
	assert.EqualValues(t, 1, note.ID)
}

func TestClientNotesService_Upload_UnsupportedExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotesSvc(t, ctrl)

	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# notes"), 0o600))

	_, err := svc.Upload(context.Background(), path)
	require.ErrorIs(t, err, validators.ErrUnsupportedFileType)
}

func TestClientNotesService_Upload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotesSvc(t, ctrl)

	_, err := svc.Upload(context.Background(), "/nonexistent/lecture.pdf")
	require.ErrorIs(t, err, validators.ErrFileNotFound)
}

func TestClientNotesService_Upload_ServerRejectsType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a real pdf"), 0o600))

	transportErr := fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgUnsupportedFileType)
	mockAdapter.EXPECT().UploadNote(ctx, gomock.Any()).Return(models.Note{}, transportErr)

	_, err := svc.Upload(ctx, path)
	require.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestClientNotesService_List_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	notes := []models.Note{{ID: 1, Title: "Biology"}, {ID: 2, Title: "History"}}
	mockAdapter.EXPECT().ListNotes(ctx).Return(notes, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestClientNotesService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgNoteNotFound)
	mockAdapter.EXPECT().GetNote(ctx, int64(42)).Return(models.Note{}, transportErr)

	_, err := svc.Get(ctx, 42)
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestClientNotesService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteNote(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 5))
}

func TestClientNotesService_Search_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestNotesSvc(t, ctrl)
	ctx := context.Background()

	results := []models.SearchResult{{Note: models.Note{ID: 1, Title: "Cell biology"}, Similarity: 0.9}}
	mockAdapter.EXPECT().SearchNotes(ctx, models.SearchRequest{Query: "mitochondria"}).Return(results, nil)

	got, err := svc.Search(ctx, "mitochondria")
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestClientNotesService_Search_BlankQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotesSvc(t, ctrl)

	_, err := svc.Search(context.Background(), "   ")
	require.ErrorIs(t, err, validators.ErrEmptySearchQuery)
}
