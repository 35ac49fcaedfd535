package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("failed to build session upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to execute session upsert")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to build session select query: %w", err)
	}

	var session models.Session
	row := s.db.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(
		&session.UserID,
		&session.Email,
		&session.Name,
		&session.Token,
		&session.SavedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("failed to build session delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to execute session delete")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
