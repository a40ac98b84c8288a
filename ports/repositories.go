package ports

import (
	"context"

	"gotrial/domain/condition"
	"gotrial/domain/core"
	"gotrial/models"
)

// ParticipantRepository persists participant sessions and their immutable
// condition assignments.
type ParticipantRepository interface {
	Create(ctx context.Context, p *models.Participant) error
	GetByID(ctx context.Context, id core.ParticipantID) (*models.Participant, error)
	List(ctx context.Context) ([]models.Participant, error)
}

// QuestionnaireResponseRepository appends pre/post questionnaire answers.
type QuestionnaireResponseRepository interface {
	InsertMany(ctx context.Context, responses []models.QuestionnaireResponse) error
	List(ctx context.Context) ([]models.QuestionnaireResponse, error)
}

// TestResponseRepository appends per-round answers and supports the
// duplicate-submission check.
type TestResponseRepository interface {
	InsertMany(ctx context.Context, responses []models.TestResponse) error
	// ExistingQuestionIDs returns the question ids already stored for a
	// participant and round, used to filter duplicates before insert.
	ExistingQuestionIDs(ctx context.Context, id core.ParticipantID, slug condition.TestSlug) (map[string]bool, error)
	List(ctx context.Context) ([]models.TestResponse, error)
	ListBySlug(ctx context.Context, slug condition.TestSlug) ([]models.TestResponse, error)
}
