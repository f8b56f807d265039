package job

import (
	"errors"

	"github.com/google/uuid"
)

var ErrChecklistItemNotFound = errors.New("checklist item not found")

// ToggleChecklistItem flips the Completed flag of the item with the given id
// and returns a new slice. Order and every other item are left untouched.
func ToggleChecklistItem(items []ChecklistItem, itemID uuid.UUID) ([]ChecklistItem, error) {
	out := make([]ChecklistItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID == itemID {
			out[i].Completed = !out[i].Completed
			return out, nil
		}
	}
	return nil, ErrChecklistItemNotFound
}

// CompletedCount reports how many checklist items are completed.
func CompletedCount(items []ChecklistItem) int {
	n := 0
	for _, it := range items {
		if it.Completed {
			n++
		}
	}
	return n
}
