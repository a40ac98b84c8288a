package condition

import (
	"fmt"

	"gotrial/domain/core"
)

// ContentSource identifies which rendition of a stimulus a participant sees.
type ContentSource string

const (
	SourceAI           ContentSource = "ai"
	SourceOriginal     ContentSource = "original"
	SourceProgrammatic ContentSource = "programmatic"
)

// ContentLength is the between-subjects corpus-size factor.
type ContentLength string

const (
	LengthLonger  ContentLength = "longer"
	LengthShorter ContentLength = "shorter"
)

// TestSlug identifies one content-exposure round.
type TestSlug string

const (
	SlugPractice             TestSlug = "practice"
	SlugPushNotifications    TestSlug = "push-notifications"
	SlugSearchEngine         TestSlug = "search-engine"
	SlugEmailInbox           TestSlug = "email-inbox"
	SlugProductListing       TestSlug = "product-listing"
	SlugMeetingTranscription TestSlug = "meeting-transcription"
	SlugPresentationSlide    TestSlug = "presentation-slide"
)

// TestSlugs lists the counterbalanced rounds in presentation order. The
// practice round is excluded: it is a tutorial and always shows original data.
func TestSlugs() []TestSlug {
	return []TestSlug{
		SlugPushNotifications,
		SlugSearchEngine,
		SlugEmailInbox,
		SlugProductListing,
		SlugMeetingTranscription,
		SlugPresentationSlide,
	}
}

// Partition splits the counterbalanced slugs into three contiguous item sets.
// The partition is static configuration, not participant data.
type Partition struct {
	SetA []TestSlug
	SetB []TestSlug
	SetC []TestSlug
}

// DefaultPartition divides TestSlugs into three equal contiguous sets.
func DefaultPartition() Partition {
	slugs := TestSlugs()
	per := len(slugs) / 3
	return Partition{
		SetA: slugs[:per],
		SetB: slugs[per : per*2],
		SetC: slugs[per*2:],
	}
}

// OrderRow maps the three item sets to a permutation of the content sources.
type OrderRow struct {
	SetA ContentSource
	SetB ContentSource
	SetC ContentSource
}

// OrderTable is the full Latin square over 3 sources x 3 sets x 6 orders.
// Every one of the 3! permutations appears exactly once, so across six
// participants each set sees each source exactly once per order slot.
type OrderTable map[int]OrderRow

// DefaultOrderTable returns the canonical six-row counterbalancing table.
func DefaultOrderTable() OrderTable {
	return OrderTable{
		1: {SetA: SourceOriginal, SetB: SourceAI, SetC: SourceProgrammatic},
		2: {SetA: SourceOriginal, SetB: SourceProgrammatic, SetC: SourceAI},
		3: {SetA: SourceAI, SetB: SourceOriginal, SetC: SourceProgrammatic},
		4: {SetA: SourceAI, SetB: SourceProgrammatic, SetC: SourceOriginal},
		5: {SetA: SourceProgrammatic, SetB: SourceOriginal, SetC: SourceAI},
		6: {SetA: SourceProgrammatic, SetB: SourceAI, SetC: SourceOriginal},
	}
}

// Assignment is a participant's immutable condition draw.
type Assignment struct {
	SourceOrder int
	Length      ContentLength
}

// Rand is the injectable randomness source for condition draws. A seeded
// *rand.Rand satisfies it, which keeps assignment reproducible in tests
// while remaining non-deterministic in production.
type Rand interface {
	Intn(n int) int
}

// Engine resolves experimental conditions. All lookup tables are passed in at
// construction; there are no package-level singletons.
type Engine struct {
	partition Partition
	orders    OrderTable
	practice  TestSlug
	rng       Rand
}

// Config holds the explicit configuration for an Engine.
type Config struct {
	Partition Partition
	Orders    OrderTable
	Practice  TestSlug
	Rand      Rand
}

// NewEngine creates an Engine and validates its configuration. An invalid
// partition or order table is a fatal configuration error, never coerced.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{
		partition: cfg.Partition,
		orders:    cfg.Orders,
		practice:  cfg.Practice,
		rng:       cfg.Rand,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

var lengths = []ContentLength{LengthLonger, LengthShorter}

// Assign draws a participant's condition: a source order uniformly over the
// table's keys and a length uniformly over the two lengths. Called exactly
// once per participant at creation.
func (e *Engine) Assign() Assignment {
	return Assignment{
		SourceOrder: 1 + e.rng.Intn(len(e.orders)),
		Length:      lengths[e.rng.Intn(len(lengths))],
	}
}

// ResolveSource returns the content source the participant with the given
// source order must see for a test. The practice round is exempt from the
// mapping and always resolves to the original data.
func (e *Engine) ResolveSource(slug TestSlug, sourceOrder int) (ContentSource, error) {
	if slug == e.practice {
		return SourceOriginal, nil
	}
	row, ok := e.orders[sourceOrder]
	if !ok {
		return "", fmt.Errorf("source order %d not in table", sourceOrder)
	}
	if containsSlug(e.partition.SetA, slug) {
		return row.SetA, nil
	}
	if containsSlug(e.partition.SetB, slug) {
		return row.SetB, nil
	}
	if containsSlug(e.partition.SetC, slug) {
		return row.SetC, nil
	}
	return "", core.NewUnknownContentTypeError(string(slug))
}

// Validate asserts the configuration integrity invariants: the partition plus
// the practice slug covers the slug enum exactly with no overlaps, and every
// order row assigns a distinct source to each set.
func (e *Engine) Validate() error {
	seen := map[TestSlug]bool{}
	for _, set := range [][]TestSlug{e.partition.SetA, e.partition.SetB, e.partition.SetC} {
		for _, slug := range set {
			if seen[slug] {
				return fmt.Errorf("%w: %s appears in more than one set", core.ErrInvalidPartition, slug)
			}
			seen[slug] = true
		}
	}
	for _, slug := range TestSlugs() {
		if !seen[slug] {
			return fmt.Errorf("%w: %s missing from all sets", core.ErrInvalidPartition, slug)
		}
	}
	if len(seen) != len(TestSlugs()) {
		return fmt.Errorf("%w: sets contain undeclared slugs", core.ErrInvalidPartition)
	}
	if seen[e.practice] {
		return fmt.Errorf("%w: practice slug %s must stay out of the partition", core.ErrInvalidPartition, e.practice)
	}
	for order, row := range e.orders {
		if row.SetA == row.SetB || row.SetB == row.SetC || row.SetA == row.SetC {
			return fmt.Errorf("%w: order %d repeats a source across sets", core.ErrInvalidOrderTable, order)
		}
	}
	return nil
}

// SetOf reports which item set a slug belongs to ("SetA", "SetB" or "SetC").
func (e *Engine) SetOf(slug TestSlug) (string, error) {
	switch {
	case containsSlug(e.partition.SetA, slug):
		return "SetA", nil
	case containsSlug(e.partition.SetB, slug):
		return "SetB", nil
	case containsSlug(e.partition.SetC, slug):
		return "SetC", nil
	}
	return "", core.NewUnknownContentTypeError(string(slug))
}

func containsSlug(set []TestSlug, slug TestSlug) bool {
	for _, s := range set {
		if s == slug {
			return true
		}
	}
	return false
}
