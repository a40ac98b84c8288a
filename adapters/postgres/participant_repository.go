package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"gotrial/domain/core"
	"gotrial/models"
	"gotrial/ports"

	"github.com/jmoiron/sqlx"
)

// ParticipantRepositoryImpl implements ParticipantRepository for PostgreSQL
type ParticipantRepositoryImpl struct {
	db *sqlx.DB
}

// NewParticipantRepository creates a new PostgreSQL participant repository
func NewParticipantRepository(db *sqlx.DB) ports.ParticipantRepository {
	return &ParticipantRepositoryImpl{db: db}
}

// Create inserts a new participant row
func (r *ParticipantRepositoryImpl) Create(ctx context.Context, p *models.Participant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO participants (id, assigned_length, assigned_source_order, age, is_pilot, is_controlled, is_mobile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.AssignedLength, p.AssignedSourceOrder, p.Age, p.IsPilot, p.IsControlled, p.IsMobile, p.CreatedAt)
	return err
}

// GetByID retrieves a participant by id
func (r *ParticipantRepositoryImpl) GetByID(ctx context.Context, id core.ParticipantID) (*models.Participant, error) {
	var p models.Participant
	err := r.db.GetContext(ctx, &p, `
		SELECT id, assigned_length, assigned_source_order, age, is_pilot, is_controlled, is_mobile, created_at
		FROM participants
		WHERE id = $1
	`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrParticipantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all participants ordered by creation time
func (r *ParticipantRepositoryImpl) List(ctx context.Context) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.SelectContext(ctx, &participants, `
		SELECT id, assigned_length, assigned_source_order, age, is_pilot, is_controlled, is_mobile, created_at
		FROM participants
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return participants, nil
}
