package migration

import (
	"context"

	"gotrial/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createParticipantsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create participants table")
	}

	if err := r.createQuestionnaireResponsesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create questionnaire_responses table")
	}

	if err := r.createTestResponsesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create test_responses table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createParticipantsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS participants (
			id UUID PRIMARY KEY,
			assigned_length VARCHAR(16) NOT NULL,
			assigned_source_order INTEGER NOT NULL,
			age INTEGER,
			is_pilot BOOLEAN NOT NULL DEFAULT false,
			is_controlled BOOLEAN NOT NULL DEFAULT false,
			is_mobile BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createQuestionnaireResponsesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS questionnaire_responses (
			id BIGSERIAL PRIMARY KEY,
			participant_id UUID NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
			question_id VARCHAR(100) NOT NULL,
			response_value INTEGER NOT NULL,
			questionnaire_type VARCHAR(16) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createTestResponsesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS test_responses (
			id BIGSERIAL PRIMARY KEY,
			participant_id UUID NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
			test_slug VARCHAR(50) NOT NULL,
			question_id VARCHAR(100) NOT NULL,
			response_value TEXT NOT NULL,
			reaction_time_ms INTEGER,
			content_source VARCHAR(16) NOT NULL,
			content_length VARCHAR(16) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (participant_id, test_slug, question_id)
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_questionnaire_responses_participant ON questionnaire_responses(participant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_test_responses_participant ON test_responses(participant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_test_responses_slug ON test_responses(test_slug)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
