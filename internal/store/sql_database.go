package store

import (
	"database/sql"

	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
