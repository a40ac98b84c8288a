package postgres

import (
	"context"

	"gotrial/models"
	"gotrial/ports"

	"github.com/jmoiron/sqlx"
)

// QuestionnaireResponseRepositoryImpl implements QuestionnaireResponseRepository for PostgreSQL
type QuestionnaireResponseRepositoryImpl struct {
	db *sqlx.DB
}

// NewQuestionnaireResponseRepository creates a new PostgreSQL questionnaire response repository
func NewQuestionnaireResponseRepository(db *sqlx.DB) ports.QuestionnaireResponseRepository {
	return &QuestionnaireResponseRepositoryImpl{db: db}
}

// InsertMany appends a batch of questionnaire answers in one transaction
func (r *QuestionnaireResponseRepositoryImpl) InsertMany(ctx context.Context, responses []models.QuestionnaireResponse) error {
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
			INSERT INTO questionnaire_responses (participant_id, question_id, response_value, questionnaire_type, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, resp.ParticipantID, resp.QuestionID, resp.ResponseValue, resp.QuestionnaireType, resp.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// List returns all questionnaire responses ordered by creation time
func (r *QuestionnaireResponseRepositoryImpl) List(ctx context.Context) ([]models.QuestionnaireResponse, error) {
	var responses []models.QuestionnaireResponse
	err := r.db.SelectContext(ctx, &responses, `
		SELECT id, participant_id, question_id, response_value, questionnaire_type, created_at
		FROM questionnaire_responses
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return responses, nil
}
