package entities

import (
	"testing"
	"time"
)

func TestFormatSeq(t *testing.T) {
	seq := int64(42)
	if got := FormatSeq(&seq); got != "CHECK-000042" {
		t.Fatalf("expected CHECK-000042, got %q", got)
	}
	if got := FormatSeq(nil); got != "CHECK-—" {
		t.Fatalf("expected CHECK-—, got %q", got)
	}
	big := int64(1234567)
	if got := FormatSeq(&big); got != "CHECK-1234567" {
		t.Fatalf("expected CHECK-1234567, got %q", got)
	}
}

func TestChecklist_IsReadOnly(t *testing.T) {
	cases := []struct {
		name string
		c    Checklist
		want bool
	}{
		{name: "in progress", c: Checklist{Status: ChecklistStatusEmAndamento}, want: false},
		{name: "draft", c: Checklist{Status: ChecklistStatusRascunho}, want: false},
		{name: "finalized", c: Checklist{Status: ChecklistStatusFinalizado}, want: true},
		{name: "locked", c: Checklist{Status: ChecklistStatusEmAndamento, IsLocked: true}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IsReadOnly(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestChecklist_DaysOpen(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c := Checklist{CreatedAt: created}
	if got := c.DaysOpen(created.Add(71 * time.Hour)); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
	if got := c.DaysOpen(created.Add(-time.Hour)); got != 0 {
		t.Fatalf("expected 0 for clock skew, got %d", got)
	}
	if got := (Checklist{}).DaysOpen(created); got != 0 {
		t.Fatalf("expected 0 without created_at, got %d", got)
	}
}

func TestChecklistPatch_TouchesAttachments(t *testing.T) {
	notes := "x"
	if (ChecklistPatch{Notes: &notes}).TouchesAttachments() {
		t.Fatalf("notes patch must not count as attachment write")
	}
	media := []MediaItem{}
	if !(ChecklistPatch{Media: &media}).TouchesAttachments() {
		t.Fatalf("media patch must count as attachment write")
	}
	if !(ChecklistPatch{}).IsEmpty() {
		t.Fatalf("zero patch must be empty")
	}
}

func TestChecklist_CloneAndApply(t *testing.T) {
	vehicle := "v1"
	c := Checklist{
		ID:        "c1",
		VehicleID: &vehicle,
		Items:     &Items{Defects: SeedDefects()},
		Media:     []MediaItem{{Type: MediaTypePhoto, Path: "c1/a.jpg"}},
		FuelGaugePhotos: FuelGaugePhotos{
			Entry: &FuelPhoto{Path: "c1/fuel/entry-a.jpg"},
		},
	}

	cp := c.Clone()
	cp.Items.Defects[0].Notes = "changed"
	cp.Media[0].Path = "changed"
	cp.FuelGaugePhotos.Entry.Path = "changed"
	*cp.VehicleID = "changed"
	if c.Items.Defects[0].Notes != "" || c.Media[0].Path != "c1/a.jpg" || c.FuelGaugePhotos.Entry.Path != "c1/fuel/entry-a.jpg" || *c.VehicleID != "v1" {
		t.Fatalf("clone aliases the original")
	}

	status := ChecklistStatusRascunho
	notes := "revisar freios"
	c.Apply(ChecklistPatch{Status: &status, Notes: &notes})
	if c.Status != ChecklistStatusRascunho || c.Notes != notes {
		t.Fatalf("patch not applied: %+v", c)
	}
	if len(c.Media) != 1 || c.Items == nil || len(c.Items.Defects) != len(DefectCatalog()) {
		t.Fatalf("untouched fields changed: %+v", c)
	}
}
