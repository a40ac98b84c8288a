package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseParticipantID tests participant ID parsing
func TestParseParticipantID(t *testing.T) {
	valid := string(NewParticipantID())

	tests := []struct {
		input    string
		hasError bool
	}{
		{valid, false},
		{"  " + valid + "  ", false},
		{"", true},
		{"   ", true},
		{"not-a-uuid", true},
		{"550e8400-e29b-41d4-a716-44665544000", true}, // truncated
	}

	for _, test := range tests {
		result, err := ParseParticipantID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if !test.hasError && result.String() != valid {
			t.Errorf("Expected %s, got %s", valid, result)
		}
	}
}

// TestErrorClassification tests the error family helpers
func TestErrorClassification(t *testing.T) {
	if !IsNotFoundError(ErrParticipantNotFound) {
		t.Error("ErrParticipantNotFound not classified as not-found")
	}
	if !IsNotFoundError(NewNotFoundError("participant", "abc")) {
		t.Error("wrapped not-found error not classified")
	}
	if !IsConfigurationError(ErrNoIrrelevantItem) {
		t.Error("ErrNoIrrelevantItem not classified as configuration error")
	}
	if !IsConfigurationError(NewUnknownContentTypeError("x")) {
		t.Error("wrapped unknown-content error not classified")
	}
	if !IsInputError(ErrEmptySubmission) {
		t.Error("ErrEmptySubmission not classified as input error")
	}
	if !IsInputError(NewInvalidMaskError("source", 9)) {
		t.Error("wrapped mask error not classified")
	}
	if IsNotFoundError(ErrEmptySubmission) {
		t.Error("input error classified as not-found")
	}
}
