package request

import (
	"errors"
	"testing"
	"time"

	"frota_checklist/internal/domain/entities"
)

func TestChecklistListQuery_ToFilter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f, err := ChecklistListQuery{}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.From != nil || f.To != nil || f.Status != "" {
			t.Fatalf("expected zero filter, got %+v", f)
		}
	})

	t.Run("bare dates cover the whole day", func(t *testing.T) {
		f, err := ChecklistListQuery{Status: "finalizado", From: "2024-03-01", To: "2024-03-31", Search: " abc "}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Status != entities.ChecklistStatusFinalizado || f.Search != "abc" {
			t.Fatalf("unexpected filter: %+v", f)
		}
		if !f.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected from: %v", f.From)
		}
		if want := time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC); !f.To.Equal(want) {
			t.Fatalf("unexpected to: %v", f.To)
		}
	})

	t.Run("rfc3339 kept as is", func(t *testing.T) {
		f, err := ChecklistListQuery{To: "2024-03-31T10:00:00-03:00"}.ToFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2024, 3, 31, 13, 0, 0, 0, time.UTC); !f.To.Equal(want) {
			t.Fatalf("unexpected to: %v", f.To)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		if _, err := (ChecklistListQuery{From: "31/03/2024"}).ToFilter(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestStep1Request_ToInput(t *testing.T) {
	km := 15000.0
	in := Step1Request{Service: " Preventiva ", KM: &km, Responsavel: "Ana ", VehicleID: "v1", SupplierID: " s1"}.ToInput()
	if in.Service != "Preventiva" || in.Responsavel != "Ana" || in.SupplierID != "s1" || *in.KM != km {
		t.Fatalf("unexpected input: %+v", in)
	}
}
