package models

import "testing"

func TestDedupeLastValueFirstPosition(t *testing.T) {
	first := "v1"
	last := "v2"
	items := []AnswerItem{
		{RequirementID: 3, Compliant: false, Evidence: &first},
		{RequirementID: 1, Compliant: true},
		{RequirementID: 3, Compliant: true, Evidence: &last},
	}

	got := Dedupe(items)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].RequirementID != 3 || got[1].RequirementID != 1 {
		t.Fatalf("order = %d, %d, want 3, 1", got[0].RequirementID, got[1].RequirementID)
	}
	if !got[0].Compliant || got[0].Evidence == nil || *got[0].Evidence != "v2" {
		t.Fatalf("duplicate kept first values: %+v", got[0])
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Fatalf("Dedupe(nil) = %v", got)
	}
}
