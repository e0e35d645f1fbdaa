package request

import (
	"strings"

	"frota_checklist/internal/usecase"
)

const (
	DefectActionToggleChecked = "toggle_checked"
	DefectActionToggleProblem = "toggle_problem"
	DefectActionNotes         = "notes"
)

// OpenWizardRequest opens a wizard. Without checklist_id a new checklist is started.
type OpenWizardRequest struct {
	ChecklistID string `json:"checklist_id"`
}

// Step1Request is the data entry form. Validation happens in the wizard so
// every invalid field is reported at once.
type Step1Request struct {
	Service     string   `json:"service"`
	KM          *float64 `json:"km"`
	Responsavel string   `json:"responsavel"`
	VehicleID   string   `json:"vehicle_id"`
	SupplierID  string   `json:"supplier_id"`
}

func (r Step1Request) ToInput() usecase.Step1Input {
	return usecase.Step1Input{
		Service:     strings.TrimSpace(r.Service),
		KM:          r.KM,
		Responsavel: strings.TrimSpace(r.Responsavel),
		VehicleID:   strings.TrimSpace(r.VehicleID),
		SupplierID:  strings.TrimSpace(r.SupplierID),
	}
}

type DefectActionRequest struct {
	Action string `json:"action" binding:"required,oneof=toggle_checked toggle_problem notes"`
	Notes  string `json:"notes"`
}

// SaveDefectsRequest optionally carries the free text note of the defects step.
type SaveDefectsRequest struct {
	Note *string `json:"note"`
}

type GoToRequest struct {
	Step int `json:"step" binding:"required,min=1,max=4"`
}

// BudgetForm holds the non-file fields of the budget request. It is bound
// from a multipart form or, without files, from JSON.
type BudgetForm struct {
	Total *float64 `json:"budget_total" form:"budget_total"`
	Notes *string  `json:"budget_notes" form:"budget_notes"`
}
