package job

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("expected %s valid", c)
		}
	}
	if Category("design").Valid() {
		t.Fatalf("expected unknown category invalid")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusOpen, StatusInProgress, StatusCompleted} {
		if !s.Valid() {
			t.Fatalf("expected %s valid", s)
		}
	}
	if Status("archived").Valid() {
		t.Fatalf("expected unknown status invalid")
	}
}

func TestJobClone_NoAliasing(t *testing.T) {
	url := "https://example.com/guide"
	j := Job{
		Skills:        []string{"Go"},
		Checklist:     []ChecklistItem{{Label: "a"}},
		GuidelinesURL: &url,
	}

	c := j.Clone()
	c.Skills[0] = "Rust"
	c.Checklist[0].Completed = true
	*c.GuidelinesURL = "changed"

	if j.Skills[0] != "Go" || j.Checklist[0].Completed || *j.GuidelinesURL != "https://example.com/guide" {
		t.Fatalf("clone aliases the original")
	}
}
