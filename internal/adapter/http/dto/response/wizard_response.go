package response

import (
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
)

type WizardResponse struct {
	SessionID         string                      `json:"session_id"`
	Step              int                         `json:"step"`
	StepName          string                      `json:"step_name"`
	ChecklistID       string                      `json:"checklist_id,omitempty"`
	Seq               *int64                      `json:"seq"`
	SeqLabel          string                      `json:"seq_label"`
	Status            string                      `json:"status,omitempty"`
	ReadOnly          bool                        `json:"read_only"`
	Finalizing        bool                        `json:"finalizing"`
	Meta              entities.Meta               `json:"meta"`
	Defects           []entities.Defect           `json:"defects"`
	VehicleID         *string                     `json:"vehicle_id"`
	SupplierID        *string                     `json:"supplier_id"`
	Notes             string                      `json:"notes"`
	Media             []entities.MediaItem        `json:"media"`
	BudgetAttachments []entities.BudgetAttachment `json:"budgetAttachments"`
	FuelGaugePhotos   entities.FuelGaugePhotos    `json:"fuelGaugePhotos"`
	StagedPhotos      []usecase.StagedFile        `json:"staged_photos"`
	StagedBudget      []usecase.StagedFile        `json:"staged_budget"`
	CreatedAt         *time.Time                  `json:"created_at,omitempty"`
}

func FromWizardSnapshot(s usecase.WizardSnapshot) WizardResponse {
	res := WizardResponse{
		SessionID:         s.SessionID,
		Step:              int(s.Step),
		StepName:          s.Step.String(),
		ChecklistID:       s.ChecklistID,
		Seq:               s.Seq,
		SeqLabel:          s.SeqLabel,
		Status:            string(s.Status),
		ReadOnly:          s.ReadOnly,
		Finalizing:        s.Finalizing,
		Meta:              s.Meta,
		Defects:           nonNil(s.Defects),
		VehicleID:         s.VehicleID,
		SupplierID:        s.SupplierID,
		Notes:             s.Notes,
		Media:             nonNil(s.Media),
		BudgetAttachments: nonNil(s.BudgetAttachments),
		FuelGaugePhotos:   s.FuelGaugePhotos,
		StagedPhotos:      nonNil(s.StagedPhotos),
		StagedBudget:      nonNil(s.StagedBudget),
	}
	if !s.CreatedAt.IsZero() {
		created := s.CreatedAt
		res.CreatedAt = &created
	}
	return res
}

// StagedResponse answers a staging request with the number of accepted files.
type StagedResponse struct {
	Accepted int            `json:"accepted"`
	Wizard   WizardResponse `json:"wizard"`
}
