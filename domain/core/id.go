package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ParticipantID identifies an experiment participant. It is generated once at
// consent time and never reassigned.
type ParticipantID ID

func (id ParticipantID) String() string { return ID(id).String() }

// NewParticipantID creates a fresh participant identifier
func NewParticipantID() ParticipantID {
	return ParticipantID(NewID())
}

// ParseParticipantID parses a string into ParticipantID, validating it is a UUID
func ParseParticipantID(s string) (ParticipantID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("participant ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("participant ID is not a valid UUID: %w", err)
	}
	return ParticipantID(s), nil
}
