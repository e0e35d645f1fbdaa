package response

import (
	"time"

	"frota_checklist/internal/domain/entities"
)

type VehicleSummary struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Description string `json:"description"`
}

type SupplierSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
}

type ChecklistResponse struct {
	ID                string                      `json:"id"`
	Seq               *int64                      `json:"seq"`
	SeqLabel          string                      `json:"seq_label"`
	Status            string                      `json:"status"`
	IsLocked          bool                        `json:"is_locked"`
	ReadOnly          bool                        `json:"read_only"`
	CreatedBy         string                      `json:"created_by"`
	VehicleID         *string                     `json:"vehicle_id"`
	SupplierID        *string                     `json:"supplier_id"`
	Vehicle           *VehicleSummary             `json:"vehicle,omitempty"`
	Supplier          *SupplierSummary            `json:"supplier,omitempty"`
	Notes             string                      `json:"notes"`
	Items             *entities.Items             `json:"items"`
	Media             []entities.MediaItem        `json:"media"`
	BudgetAttachments []entities.BudgetAttachment `json:"budgetAttachments"`
	FuelGaugePhotos   entities.FuelGaugePhotos    `json:"fuelGaugePhotos"`
	DaysOpen          int                         `json:"days_open"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

// FromChecklist maps a checklist. days_open is only meaningful while the
// checklist is not finalized and is zero otherwise.
func FromChecklist(c entities.Checklist, now time.Time) ChecklistResponse {
	res := ChecklistResponse{
		ID:                c.ID,
		Seq:               c.Seq,
		SeqLabel:          c.SeqLabel(),
		Status:            string(c.Status),
		IsLocked:          c.IsLocked,
		ReadOnly:          c.IsReadOnly(),
		CreatedBy:         c.CreatedBy,
		VehicleID:         c.VehicleID,
		SupplierID:        c.SupplierID,
		Notes:             c.Notes,
		Items:             c.Items,
		Media:             nonNil(c.Media),
		BudgetAttachments: nonNil(c.BudgetAttachments),
		FuelGaugePhotos:   c.FuelGaugePhotos,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if !c.IsReadOnly() {
		res.DaysOpen = c.DaysOpen(now)
	}
	if c.Vehicle != nil {
		res.Vehicle = &VehicleSummary{ID: c.Vehicle.ID, Plate: c.Vehicle.Plate, Description: c.Vehicle.Description()}
	}
	if c.Supplier != nil {
		res.Supplier = &SupplierSummary{ID: c.Supplier.ID, Name: c.Supplier.DisplayName(), CNPJ: entities.FormatCNPJ(c.Supplier.CNPJ)}
	}
	return res
}

func FromChecklists(list []entities.Checklist, now time.Time) []ChecklistResponse {
	out := make([]ChecklistResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromChecklist(c, now))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
