package models

import (
	"time"

	"gotrial/domain/condition"
	"gotrial/domain/core"
)

// Participant is one experiment session. The assigned condition fields are
// drawn once at consent time and never change; every piece of content the
// participant sees is a pure function of AssignedSourceOrder, AssignedLength
// and the test slug being shown.
type Participant struct {
	ID                  core.ParticipantID      `db:"id" json:"id"`
	AssignedLength      condition.ContentLength `db:"assigned_length" json:"assignedLength"`
	AssignedSourceOrder int                     `db:"assigned_source_order" json:"assignedSourceOrder"`
	Age                 int                     `db:"age" json:"age"`
	IsPilot             bool                    `db:"is_pilot" json:"isPilot"`
	IsControlled        bool                    `db:"is_controlled" json:"isControlled"`
	IsMobile            bool                    `db:"is_mobile" json:"isMobile"`
	CreatedAt           time.Time               `db:"created_at" json:"createdAt"`
}

// NewParticipant builds a participant with a fresh id and the given draw.
func NewParticipant(assignment condition.Assignment, age int, pilot, controlled, mobile bool) *Participant {
	return &Participant{
		ID:                  core.NewParticipantID(),
		AssignedLength:      assignment.Length,
		AssignedSourceOrder: assignment.SourceOrder,
		Age:                 age,
		IsPilot:             pilot,
		IsControlled:        controlled,
		IsMobile:            mobile,
		CreatedAt:           time.Now().UTC(),
	}
}
