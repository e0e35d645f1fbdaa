package response

import (
	"testing"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
)

func TestFromChecklist(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := created.Add(50 * time.Hour)
	seq := int64(42)
	c := entities.Checklist{
		ID:        "c1",
		Seq:       &seq,
		Status:    entities.ChecklistStatusEmAndamento,
		CreatedAt: created,
		Vehicle:   &entities.Vehicle{ID: "v1", Plate: "ABC1D23", Brand: "VW", Model: "Gol"},
		Supplier:  &entities.Supplier{ID: "s1", CNPJ: "12345678000195", TradeName: "Oficina"},
	}

	res := FromChecklist(c, now)
	if res.SeqLabel != "CHECK-000042" || res.DaysOpen != 2 || res.ReadOnly {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Media == nil || res.BudgetAttachments == nil {
		t.Fatalf("expected empty slices, got nil")
	}
	if res.Vehicle == nil || res.Vehicle.Description != "VW / Gol" {
		t.Fatalf("unexpected vehicle: %+v", res.Vehicle)
	}
	if res.Supplier == nil || res.Supplier.Name != "Oficina" || res.Supplier.CNPJ != "12.345.678/0001-95" {
		t.Fatalf("unexpected supplier: %+v", res.Supplier)
	}
}

func TestFromChecklist_FinalizedHasNoDaysOpen(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := entities.Checklist{ID: "c1", Status: entities.ChecklistStatusFinalizado, IsLocked: true, CreatedAt: created}

	res := FromChecklist(c, created.Add(30*24*time.Hour))
	if res.DaysOpen != 0 || !res.ReadOnly || res.SeqLabel != "CHECK-—" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromWizardSnapshot(t *testing.T) {
	res := FromWizardSnapshot(usecase.WizardSnapshot{SessionID: "w1", Step: usecase.StepPhotos, SeqLabel: "CHECK-—"})
	if res.Step != 3 || res.StepName != "photos" || res.CreatedAt != nil {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Defects == nil || res.StagedPhotos == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}
