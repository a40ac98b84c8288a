package models

import (
	"gotrial/domain/condition"
)

// ContentPayload is the tagged union handed to the rendering layer: exactly
// one of Original, AISummary or Digest is set, selected by Source. Renderers
// must switch exhaustively on Source.
type ContentPayload struct {
	Slug   condition.TestSlug      `json:"slug"`
	Source condition.ContentSource `json:"source"`
	Length condition.ContentLength `json:"length"`

	// Original holds the (length-filtered) raw item slice for the slug.
	Original interface{} `json:"original,omitempty"`
	// AISummary holds the statically authored narrative summary.
	AISummary interface{} `json:"aiSummary,omitempty"`
	// Digest holds the extractive programmatic summary artifact.
	Digest interface{} `json:"digest,omitempty"`
}
