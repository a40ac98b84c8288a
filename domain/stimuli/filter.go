package stimuli

import (
	"gotrial/domain/condition"
	"gotrial/domain/core"
)

// Flagged is satisfied by every corpus item type.
type Flagged interface {
	IsIrrelevant() bool
}

// minRelevantItems is the floor the Shorter variant backfills up to.
const minRelevantItems = 5

// FilterByLength derives the length variant of a corpus. It is pure: the same
// input always yields the same output, and the input slice is never mutated.
//
// Shorter keeps every relevant item; if fewer than five remain, irrelevant
// items are appended in original order until the floor is reached.
//
// Longer removes exactly the first irrelevant item. A corpus with no
// irrelevant item cannot satisfy the Longer contract; that is a fatal
// authoring error surfaced as core.ErrNoIrrelevantItem, not a per-request
// condition to recover from.
func FilterByLength[T Flagged](items []T, length condition.ContentLength) ([]T, error) {
	switch length {
	case condition.LengthShorter:
		relevant := make([]T, 0, len(items))
		var irrelevant []T
		for _, item := range items {
			if item.IsIrrelevant() {
				irrelevant = append(irrelevant, item)
			} else {
				relevant = append(relevant, item)
			}
		}
		for _, item := range irrelevant {
			if len(relevant) >= minRelevantItems {
				break
			}
			relevant = append(relevant, item)
		}
		return relevant, nil

	case condition.LengthLonger:
		for i, item := range items {
			if item.IsIrrelevant() {
				out := make([]T, 0, len(items)-1)
				out = append(out, items[:i]...)
				out = append(out, items[i+1:]...)
				return out, nil
			}
		}
		return nil, core.ErrNoIrrelevantItem

	default:
		return nil, core.ErrInvalidLength
	}
}
