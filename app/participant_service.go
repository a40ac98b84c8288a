package app

import (
	"context"
	"fmt"

	"gotrial/domain/condition"
	"gotrial/domain/core"
	"gotrial/models"
	"gotrial/ports"
)

// ParticipantService creates sessions and draws their condition assignments.
type ParticipantService struct {
	participants   ports.ParticipantRepository
	engine         *condition.Engine
	controlledCode string
	pilotCode      string
}

func NewParticipantService(participants ports.ParticipantRepository, engine *condition.Engine, controlledCode, pilotCode string) *ParticipantService {
	return &ParticipantService{
		participants:   participants,
		engine:         engine,
		controlledCode: controlledCode,
		pilotCode:      pilotCode,
	}
}

// RegisterInput carries the consent-page form fields.
type RegisterInput struct {
	Age        int
	AccessCode string
	IsMobile   bool
}

// Register draws a fresh condition assignment and persists the participant.
// An empty access code admits a regular participant; the controlled and pilot
// codes tag the session accordingly, and anything else is rejected.
func (s *ParticipantService) Register(ctx context.Context, input RegisterInput) (*models.Participant, error) {
	controlled := false
	pilot := false
	switch input.AccessCode {
	case "":
	case s.controlledCode:
		controlled = true
	case s.pilotCode:
		pilot = true
	default:
		return nil, core.ErrInvalidAccessCode
	}

	assignment := s.engine.Assign()
	participant := models.NewParticipant(assignment, input.Age, pilot, controlled, input.IsMobile)

	if err := s.participants.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return participant, nil
}

// Get loads a participant from its URL id string.
func (s *ParticipantService) Get(ctx context.Context, id string) (*models.Participant, error) {
	participantID, err := core.ParseParticipantID(id)
	if err != nil {
		return nil, err
	}
	return s.participants.GetByID(ctx, participantID)
}
