package app

import (
	"context"
	"testing"

	"gotrial/domain/core"
	"gotrial/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParticipantRepo struct {
	created []*models.Participant
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id core.ParticipantID) (*models.Participant, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, core.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) List(context.Context) ([]models.Participant, error) {
	out := make([]models.Participant, 0, len(f.created))
	for _, p := range f.created {
		out = append(out, *p)
	}
	return out, nil
}

func TestRegisterDrawsAssignment(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo, testEngine(t), "ctrl-code", "pilot-code")

	participant, err := svc.Register(context.Background(), RegisterInput{Age: 28})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.GreaterOrEqual(t, participant.AssignedSourceOrder, 1)
	assert.LessOrEqual(t, participant.AssignedSourceOrder, 6)
	assert.Contains(t, []string{"longer", "shorter"}, string(participant.AssignedLength))
	assert.Equal(t, 28, participant.Age)
	assert.False(t, participant.IsPilot)
	assert.False(t, participant.IsControlled)
}

func TestRegisterAccessCodes(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo, testEngine(t), "ctrl-code", "pilot-code")

	controlled, err := svc.Register(context.Background(), RegisterInput{Age: 30, AccessCode: "ctrl-code"})
	require.NoError(t, err)
	assert.True(t, controlled.IsControlled)
	assert.False(t, controlled.IsPilot)

	pilot, err := svc.Register(context.Background(), RegisterInput{Age: 30, AccessCode: "pilot-code"})
	require.NoError(t, err)
	assert.True(t, pilot.IsPilot)
	assert.False(t, pilot.IsControlled)

	_, err = svc.Register(context.Background(), RegisterInput{Age: 30, AccessCode: "wrong"})
	assert.ErrorIs(t, err, core.ErrInvalidAccessCode)
	assert.Len(t, repo.created, 2)
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc := NewParticipantService(&fakeParticipantRepo{}, testEngine(t), "", "")

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.Error(t, err)
}
