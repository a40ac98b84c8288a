package stimuli

import (
	"errors"
	"testing"

	"gotrial/domain/condition"
	"gotrial/domain/core"
)

type flaggedItem struct {
	id         int
	irrelevant bool
}

func (f flaggedItem) IsIrrelevant() bool { return f.irrelevant }

func corpus(flags ...bool) []flaggedItem {
	items := make([]flaggedItem, len(flags))
	for i, irr := range flags {
		items[i] = flaggedItem{id: i, irrelevant: irr}
	}
	return items
}

// TestFilterShorterKeepsRelevant verifies Shorter drops irrelevant items when
// enough relevant ones remain.
func TestFilterShorterKeepsRelevant(t *testing.T) {
	items := corpus(false, true, false, false, true, false, false, true, false, false)

	out, err := FilterByLength(items, condition.LengthShorter)
	if err != nil {
		t.Fatalf("FilterByLength: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("got %d items, want 7 relevant", len(out))
	}
	for _, item := range out {
		if item.irrelevant {
			t.Errorf("item %d is irrelevant but survived Shorter", item.id)
		}
	}
}

// TestFilterShorterBackfillsToFloor verifies Shorter pads with irrelevant
// items, in original order, up to five when relevant items are scarce.
func TestFilterShorterBackfillsToFloor(t *testing.T) {
	items := corpus(true, false, true, false, true, true, false, true)

	out, err := FilterByLength(items, condition.LengthShorter)
	if err != nil {
		t.Fatalf("FilterByLength: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("got %d items, want floor of 5", len(out))
	}

	// Relevant items first (1, 3, 6), then irrelevant backfill in original
	// order (0, 2).
	wantIDs := []int{1, 3, 6, 0, 2}
	for i, item := range out {
		if item.id != wantIDs[i] {
			t.Errorf("position %d holds item %d, want %d", i, item.id, wantIDs[i])
		}
	}
}

// TestFilterLongerRemovesFirstIrrelevant verifies Longer removes exactly one
// item: the first irrelevant one.
func TestFilterLongerRemovesFirstIrrelevant(t *testing.T) {
	items := corpus(false, false, true, false, true)

	out, err := FilterByLength(items, condition.LengthLonger)
	if err != nil {
		t.Fatalf("FilterByLength: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d items, want 4", len(out))
	}
	wantIDs := []int{0, 1, 3, 4}
	for i, item := range out {
		if item.id != wantIDs[i] {
			t.Errorf("position %d holds item %d, want %d", i, item.id, wantIDs[i])
		}
	}
}

// TestFilterLongerErrorsWithoutIrrelevant verifies an all-relevant corpus is
// rejected for the Longer variant.
func TestFilterLongerErrorsWithoutIrrelevant(t *testing.T) {
	items := corpus(false, false, false)
	if _, err := FilterByLength(items, condition.LengthLonger); !errors.Is(err, core.ErrNoIrrelevantItem) {
		t.Fatalf("expected ErrNoIrrelevantItem, got %v", err)
	}
}

// TestFilterRejectsUnknownLength verifies an undeclared length value errors.
func TestFilterRejectsUnknownLength(t *testing.T) {
	items := corpus(false, true)
	if _, err := FilterByLength(items, condition.ContentLength("medium")); !errors.Is(err, core.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

// TestFilterDoesNotMutateInput verifies the input slice survives both variants
// untouched.
func TestFilterDoesNotMutateInput(t *testing.T) {
	items := corpus(false, true, false, true, false, false)
	snapshot := make([]flaggedItem, len(items))
	copy(snapshot, items)

	if _, err := FilterByLength(items, condition.LengthShorter); err != nil {
		t.Fatalf("Shorter: %v", err)
	}
	if _, err := FilterByLength(items, condition.LengthLonger); err != nil {
		t.Fatalf("Longer: %v", err)
	}

	for i := range items {
		if items[i] != snapshot[i] {
			t.Errorf("input item %d mutated", i)
		}
	}
}

// TestCorporaSatisfyFilterContract verifies every shipped corpus supports both
// length variants.
func TestCorporaSatisfyFilterContract(t *testing.T) {
	check := func(name string, n int, shorter, longer int, err1, err2 error) {
		if err1 != nil {
			t.Errorf("%s Shorter: %v", name, err1)
		}
		if err2 != nil {
			t.Errorf("%s Longer: %v", name, err2)
		}
		if longer != n-1 {
			t.Errorf("%s Longer kept %d of %d items, want %d", name, longer, n, n-1)
		}
		if shorter < minRelevantItems {
			t.Errorf("%s Shorter kept %d items, want at least %d", name, shorter, minRelevantItems)
		}
	}

	{
		s, e1 := FilterByLength(NotificationsData, condition.LengthShorter)
		l, e2 := FilterByLength(NotificationsData, condition.LengthLonger)
		check("notifications", len(NotificationsData), len(s), len(l), e1, e2)
	}
	{
		s, e1 := FilterByLength(EmailsData, condition.LengthShorter)
		l, e2 := FilterByLength(EmailsData, condition.LengthLonger)
		check("emails", len(EmailsData), len(s), len(l), e1, e2)
	}
	{
		s, e1 := FilterByLength(TranscriptData, condition.LengthShorter)
		l, e2 := FilterByLength(TranscriptData, condition.LengthLonger)
		check("transcripts", len(TranscriptData), len(s), len(l), e1, e2)
	}
	{
		s, e1 := FilterByLength(SlidesData, condition.LengthShorter)
		l, e2 := FilterByLength(SlidesData, condition.LengthLonger)
		check("slides", len(SlidesData), len(s), len(l), e1, e2)
	}
	{
		s, e1 := FilterByLength(ProductsData, condition.LengthShorter)
		l, e2 := FilterByLength(ProductsData, condition.LengthLonger)
		check("products", len(ProductsData), len(s), len(l), e1, e2)
	}
	{
		s, e1 := FilterByLength(SearchData, condition.LengthShorter)
		l, e2 := FilterByLength(SearchData, condition.LengthLonger)
		check("search", len(SearchData), len(s), len(l), e1, e2)
	}
}
