package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studypartner/go-study-partner/internal/adapter"
	"github.com/studypartner/go-study-partner/internal/validators"
	"github.com/studypartner/go-study-partner/models"
)

type clientNotesService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientNotesService(serverAdapter adapter.ServerAdapter, validator validators.Validator) ClientNotesService {
	return &clientNotesService{adapter: serverAdapter, validator: validator}
}

func (n *clientNotesService) Upload(ctx context.Context, filePath string) (models.Note, error) {
	if err := n.validator.Validate(ctx, filePath); err != nil {
		return models.Note{}, err
	}

	payload, err := os.ReadFile(filePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("read file %q: %w", filePath, err)
	}

	req := models.UploadRequest{
		File: base64.StdEncoding.EncodeToString(payload),
		Name: filepath.Base(filePath),
	}

	note, err := n.adapter.UploadNote(ctx, req)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (n *clientNotesService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := n.adapter.ListNotes(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return notes, nil
}

func (n *clientNotesService) Get(ctx context.Context, noteID int64) (models.Note, error) {
	note, err := n.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}
	return note, nil
}

func (n *clientNotesService) Delete(ctx context.Context, noteID int64) error {
	if err := n.adapter.DeleteNote(ctx, noteID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (n *clientNotesService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	req := models.SearchRequest{Query: query}
	if err := n.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	results, err := n.adapter.SearchNotes(ctx, req)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return results, nil
}
