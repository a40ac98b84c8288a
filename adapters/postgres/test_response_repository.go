package postgres

import (
	"context"

	"gotrial/domain/condition"
	"gotrial/domain/core"
	"gotrial/models"
	"gotrial/ports"

	"github.com/jmoiron/sqlx"
)

// TestResponseRepositoryImpl implements TestResponseRepository for PostgreSQL
type TestResponseRepositoryImpl struct {
	db *sqlx.DB
}

// NewTestResponseRepository creates a new PostgreSQL test response repository
func NewTestResponseRepository(db *sqlx.DB) ports.TestResponseRepository {
	return &TestResponseRepositoryImpl{db: db}
}

// InsertMany appends a batch of round answers in one transaction. The unique
// constraint on (participant_id, test_slug, question_id) plus ON CONFLICT DO
// NOTHING makes a re-submitted form a no-op rather than an error.
func (r *TestResponseRepositoryImpl) InsertMany(ctx context.Context, responses []models.TestResponse) error {
	if len(responses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, resp := range responses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO test_responses (participant_id, test_slug, question_id, response_value, reaction_time_ms, content_source, content_length, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (participant_id, test_slug, question_id) DO NOTHING
		`, resp.ParticipantID, resp.TestSlug, resp.QuestionID, resp.ResponseValue, resp.ReactionTimeMs, resp.ContentSource, resp.ContentLength, resp.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ExistingQuestionIDs returns the question ids already stored for a
// participant and round
func (r *TestResponseRepositoryImpl) ExistingQuestionIDs(ctx context.Context, id core.ParticipantID, slug condition.TestSlug) (map[string]bool, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, `
		SELECT question_id
		FROM test_responses
		WHERE participant_id = $1 AND test_slug = $2
	`, id, slug)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(ids))
	for _, qid := range ids {
		existing[qid] = true
	}
	return existing, nil
}

// List returns all test responses ordered by creation time
func (r *TestResponseRepositoryImpl) List(ctx context.Context) ([]models.TestResponse, error) {
	var responses []models.TestResponse
	err := r.db.SelectContext(ctx, &responses, `
		SELECT id, participant_id, test_slug, question_id, response_value, reaction_time_ms, content_source, content_length, created_at
		FROM test_responses
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ListBySlug returns all responses for one round across participants
func (r *TestResponseRepositoryImpl) ListBySlug(ctx context.Context, slug condition.TestSlug) ([]models.TestResponse, error) {
	var responses []models.TestResponse
	err := r.db.SelectContext(ctx, &responses, `
		SELECT id, participant_id, test_slug, question_id, response_value, reaction_time_ms, content_source, content_length, created_at
		FROM test_responses
		WHERE test_slug = $1
		ORDER BY created_at
	`, slug)
	if err != nil {
		return nil, err
	}
	return responses, nil
}
