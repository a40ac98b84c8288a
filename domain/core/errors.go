package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound            = errors.New("resource not found")
	ErrParticipantNotFound = fmt.Errorf("%w: participant", ErrNotFound)
	ErrTestNotFound        = fmt.Errorf("%w: test", ErrNotFound)
	ErrStepNotFound        = fmt.Errorf("%w: step", ErrNotFound)

	// Configuration errors - fatal, detected at startup or during content authoring
	ErrUnknownContentType = errors.New("content type not present in any item set")
	ErrNoIrrelevantItem   = errors.New("no irrelevant item available to remove")
	ErrInvalidPartition   = errors.New("item set partition does not cover the content types")
	ErrInvalidOrderTable  = errors.New("source order table is not a latin square")

	// Input errors
	ErrInvalidMask       = errors.New("mask index out of range")
	ErrInvalidSource     = errors.New("unknown content source")
	ErrInvalidLength     = errors.New("unknown content length")
	ErrEmptySubmission   = errors.New("no responses submitted")
	ErrInvalidAccessCode = errors.New("access code is incorrect")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewUnknownContentTypeError(slug string) error {
	return fmt.Errorf("%w: %s", ErrUnknownContentType, slug)
}

func NewInvalidMaskError(kind string, index int) error {
	return fmt.Errorf("%w: %s index %d", ErrInvalidMask, kind, index)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownContentType) ||
		errors.Is(err, ErrNoIrrelevantItem) ||
		errors.Is(err, ErrInvalidPartition) ||
		errors.Is(err, ErrInvalidOrderTable)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidMask) ||
		errors.Is(err, ErrInvalidSource) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrEmptySubmission) ||
		errors.Is(err, ErrInvalidAccessCode)
}
