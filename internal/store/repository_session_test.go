package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	session := models.Session{
		UserID:  1,
		Email:   "alice@example.com",
		Name:    "Alice",
		Token:   "signed-token",
		SavedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sessionRowID, session.UserID, session.Email, session.Name, session.Token, session.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveSession(context.Background(), models.Session{UserID: 1, Token: "t"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	savedAt := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "email", "name", "token", "saved_at"}).
		AddRow(1, "alice@example.com", "Alice", "signed-token", savedAt)

	mock.ExpectQuery("SELECT .+ FROM sessions").
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	got, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %q", got.Email)
	}
	if got.Token != "signed-token" {
		t.Errorf("expected token signed-token, got %q", got.Token)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM sessions").
		WithArgs(sessionRowID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(context.Background())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got: %v", err)
	}
}

func TestDeleteSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSession_NoRows(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	// deleting an absent session succeeds with zero affected rows
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
