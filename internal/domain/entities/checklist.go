package entities

import (
	"fmt"
	"math"
	"time"
)

// ChecklistStatus represents the lifecycle of a vehicle inspection.
//
// Domain notes:
//   - em_andamento is the status written on creation.
//   - rascunho is written by explicit draft saves and is always resumable.
//   - finalizado is terminal; together with is_locked it makes the document read-only.
type ChecklistStatus string

const (
	ChecklistStatusEmAndamento ChecklistStatus = "em_andamento"
	ChecklistStatusFinalizado  ChecklistStatus = "finalizado"
	ChecklistStatusCancelado   ChecklistStatus = "cancelado"
	ChecklistStatusRascunho    ChecklistStatus = "rascunho"
)

func (s ChecklistStatus) Valid() bool {
	switch s {
	case ChecklistStatusEmAndamento, ChecklistStatusFinalizado, ChecklistStatusCancelado, ChecklistStatusRascunho:
		return true
	}
	return false
}

// Checklist is one vehicle inspection record.
//
// Storage model:
//   - PK: id
//   - seq is a human facing sequence number assigned by the store on insert.
//
// Field names are the persisted contract and must not change: items, media,
// budgetAttachments, fuelGaugePhotos, is_locked, seq.
type Checklist struct {
	ID                string             `json:"id"`
	Seq               *int64             `json:"seq"`
	Status            ChecklistStatus    `json:"status"`
	CreatedBy         string             `json:"created_by"`
	VehicleID         *string            `json:"vehicle_id"`
	SupplierID        *string            `json:"supplier_id"`
	Notes             string             `json:"notes"`
	Items             *Items             `json:"items"`
	Media             []MediaItem        `json:"media"`
	BudgetAttachments []BudgetAttachment `json:"budgetAttachments"`
	FuelGaugePhotos   FuelGaugePhotos    `json:"fuelGaugePhotos"`
	IsLocked          bool               `json:"is_locked"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`

	// Joined references, filled by read paths only.
	Vehicle  *Vehicle  `json:"vehicles,omitempty"`
	Supplier *Supplier `json:"suppliers,omitempty"`
}

// IsReadOnly reports whether the client must refuse further mutations.
func (c Checklist) IsReadOnly() bool {
	return c.IsLocked || c.Status == ChecklistStatusFinalizado
}

// SeqLabel is the human facing identifier, e.g. CHECK-000042.
func (c Checklist) SeqLabel() string {
	return FormatSeq(c.Seq)
}

// DaysOpen is the number of whole days since creation, used to highlight stale
// inspections.
func (c Checklist) DaysOpen(now time.Time) int {
	if c.CreatedAt.IsZero() || now.Before(c.CreatedAt) {
		return 0
	}
	return int(math.Floor(now.Sub(c.CreatedAt).Hours() / 24))
}

// FormatSeq renders a sequence number as CHECK-NNNNNN, or CHECK-— when unknown.
func FormatSeq(seq *int64) string {
	if seq == nil || *seq == 0 {
		return "CHECK-—"
	}
	return fmt.Sprintf("CHECK-%06d", *seq)
}

// ChecklistPatch is a partial update. Nil fields are left untouched by the store.
type ChecklistPatch struct {
	Status            *ChecklistStatus
	IsLocked          *bool
	CreatedBy         *string
	VehicleID         *string
	SupplierID        *string
	Notes             *string
	Items             *Items
	Media             *[]MediaItem
	BudgetAttachments *[]BudgetAttachment
	FuelGaugePhotos   *FuelGaugePhotos
}

// TouchesAttachments reports whether the patch writes media, budget attachments
// or fuel photos, which are refused on read-only documents.
func (p ChecklistPatch) TouchesAttachments() bool {
	return p.Media != nil || p.BudgetAttachments != nil || p.FuelGaugePhotos != nil
}

func (p ChecklistPatch) IsEmpty() bool {
	return p.Status == nil && p.IsLocked == nil && p.CreatedBy == nil && p.VehicleID == nil &&
		p.SupplierID == nil && p.Notes == nil && p.Items == nil && !p.TouchesAttachments()
}

// ChecklistFilter drives list views.
type ChecklistFilter struct {
	Status ChecklistStatus
	From   *time.Time
	To     *time.Time
	Search string
}

// Clone returns a deep copy of the document fields (joined references are shared).
func (c Checklist) Clone() Checklist {
	out := c
	if c.Seq != nil {
		v := *c.Seq
		out.Seq = &v
	}
	out.VehicleID = cloneStringPtr(c.VehicleID)
	out.SupplierID = cloneStringPtr(c.SupplierID)
	out.Items = c.Items.Clone()
	if c.Media != nil {
		out.Media = append([]MediaItem{}, c.Media...)
	}
	if c.BudgetAttachments != nil {
		out.BudgetAttachments = append([]BudgetAttachment{}, c.BudgetAttachments...)
	}
	out.FuelGaugePhotos = c.FuelGaugePhotos.clone()
	return out
}

// Apply writes the non-nil fields of p onto c.
func (c *Checklist) Apply(p ChecklistPatch) {
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.IsLocked != nil {
		c.IsLocked = *p.IsLocked
	}
	if p.CreatedBy != nil {
		c.CreatedBy = *p.CreatedBy
	}
	if p.VehicleID != nil {
		c.VehicleID = cloneStringPtr(p.VehicleID)
	}
	if p.SupplierID != nil {
		c.SupplierID = cloneStringPtr(p.SupplierID)
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Items != nil {
		c.Items = p.Items.Clone()
	}
	if p.Media != nil {
		c.Media = append([]MediaItem{}, (*p.Media)...)
	}
	if p.BudgetAttachments != nil {
		c.BudgetAttachments = append([]BudgetAttachment{}, (*p.BudgetAttachments)...)
	}
	if p.FuelGaugePhotos != nil {
		c.FuelGaugePhotos = p.FuelGaugePhotos.clone()
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
