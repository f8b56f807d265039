package job

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestToggleChecklistItem_FlipsOnlyTarget(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	items := []ChecklistItem{
		{ID: a, Label: "first"},
		{ID: b, Label: "second", Completed: true},
	}

	got, err := ToggleChecklistItem(items, a)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got[0].Completed {
		t.Fatalf("target item not toggled")
	}
	if got[1].Completed != true {
		t.Fatalf("sibling item changed")
	}
	if got[0].ID != a || got[1].ID != b {
		t.Fatalf("order changed")
	}

	// input slice untouched
	if items[0].Completed {
		t.Fatalf("input mutated")
	}
}

func TestToggleChecklistItem_TwiceRestores(t *testing.T) {
	id := uuid.New()
	items := []ChecklistItem{{ID: id, Label: "only", Completed: true}}

	once, err := ToggleChecklistItem(items, id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	twice, err := ToggleChecklistItem(once, id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if twice[0].Completed != items[0].Completed {
		t.Fatalf("double toggle did not restore")
	}
}

func TestToggleChecklistItem_UnknownID(t *testing.T) {
	items := []ChecklistItem{{ID: uuid.New(), Label: "x"}}

	_, err := ToggleChecklistItem(items, uuid.New())
	if !errors.Is(err, ErrChecklistItemNotFound) {
		t.Fatalf("expected ErrChecklistItemNotFound, got %v", err)
	}
}

func TestCompletedCount(t *testing.T) {
	items := []ChecklistItem{
		{ID: uuid.New(), Completed: true},
		{ID: uuid.New()},
		{ID: uuid.New(), Completed: true},
	}

	if got := CompletedCount(items); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := CompletedCount(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %d", got)
	}
}
