package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"
)

var (
	ErrInvalidStatus    = errors.New("invalid checklist status")
	ErrInvalidDateRange = errors.New("from must not be after to")
)

// ResolvedAttachment is a budget attachment with its display URL (nil on failure).
type ResolvedAttachment struct {
	entities.BudgetAttachment
	URL *string `json:"url"`
}

// ChecklistMedia groups every stored file of a checklist with display URLs.
type ChecklistMedia struct {
	Media     []entities.MediaItemWithURL `json:"media"`
	Budget    []ResolvedAttachment        `json:"budgetAttachments"`
	FuelEntry *entities.MediaItemWithURL  `json:"fuel_entry"`
	FuelExit  *entities.MediaItemWithURL  `json:"fuel_exit"`
}

// IChecklistUseCase serves the list and detail pages and the admin override.
type IChecklistUseCase interface {
	List(ctx context.Context, filter entities.ChecklistFilter) ([]entities.Checklist, error)
	GetByID(ctx context.Context, id string) (entities.Checklist, error)
	UpdateNotes(ctx context.Context, id, notes string) (entities.Checklist, error)
	MediaURLs(ctx context.Context, id string) (ChecklistMedia, error)
	Delete(ctx context.Context, id string) error
}

type ChecklistUseCase struct {
	repo      interfaces.IChecklistRepository
	vehicles  interfaces.IVehicleRepository
	suppliers interfaces.ISupplierRepository
	media     IMediaUseCase
	events    interfaces.IEventPublisher
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(
	repo interfaces.IChecklistRepository,
	vehicles interfaces.IVehicleRepository,
	suppliers interfaces.ISupplierRepository,
	media IMediaUseCase,
	events interfaces.IEventPublisher,
) *ChecklistUseCase {
	return &ChecklistUseCase{repo: repo, vehicles: vehicles, suppliers: suppliers, media: media, events: events}
}

// List returns checklists newest first with their vehicle and supplier joined.
// Search matches the plate and the supplier names, case-insensitively.
func (u *ChecklistUseCase) List(ctx context.Context, filter entities.ChecklistFilter) ([]entities.Checklist, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, ErrInvalidDateRange
	}
	rows, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	j := newJoiner(u.vehicles, u.suppliers)
	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]entities.Checklist, 0, len(rows))
	for _, c := range rows {
		if err := j.join(ctx, &c); err != nil {
			return nil, err
		}
		if needle != "" && !checklistMatches(c, needle) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func checklistMatches(c entities.Checklist, needle string) bool {
	if c.Vehicle != nil {
		if strings.Contains(strings.ToLower(c.Vehicle.Plate), needle) {
			return true
		}
		if p := entities.NormalizePlate(needle); p != "" && strings.Contains(entities.NormalizePlate(c.Vehicle.Plate), p) {
			return true
		}
	}
	if c.Supplier != nil {
		for _, v := range []string{c.Supplier.Name, c.Supplier.TradeName, c.Supplier.CorporateName} {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}

func (u *ChecklistUseCase) GetByID(ctx context.Context, id string) (entities.Checklist, error) {
	c, err := u.get(ctx, id)
	if err != nil {
		return entities.Checklist{}, err
	}
	if err := newJoiner(u.vehicles, u.suppliers).join(ctx, &c); err != nil {
		return entities.Checklist{}, err
	}
	return c, nil
}

func (u *ChecklistUseCase) get(ctx context.Context, id string) (entities.Checklist, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Checklist{}, ErrInvalidChecklistID
	}
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.Checklist{}, err
	}
	if c.ID == "" {
		return entities.Checklist{}, ErrChecklistNotFound
	}
	return c, nil
}

// UpdateNotes is the detail page auto-save. Read-only checklists refuse it.
func (u *ChecklistUseCase) UpdateNotes(ctx context.Context, id, notes string) (entities.Checklist, error) {
	c, err := u.get(ctx, id)
	if err != nil {
		return entities.Checklist{}, err
	}
	if c.IsReadOnly() {
		return entities.Checklist{}, ErrChecklistLocked
	}
	updated, err := u.repo.Update(ctx, c.ID, entities.ChecklistPatch{Notes: &notes})
	if err != nil {
		return entities.Checklist{}, err
	}
	if updated.ID == "" {
		return entities.Checklist{}, ErrChecklistNotFound
	}
	return updated, nil
}

// MediaURLs resolves every stored file of the checklist. A failed resolution
// leaves that URL nil and never fails the call.
func (u *ChecklistUseCase) MediaURLs(ctx context.Context, id string) (ChecklistMedia, error) {
	c, err := u.get(ctx, id)
	if err != nil {
		return ChecklistMedia{}, err
	}

	items := make([]entities.MediaItem, 0, len(c.Media)+len(c.BudgetAttachments)+2)
	items = append(items, c.Media...)
	for _, b := range c.BudgetAttachments {
		items = append(items, entities.MediaItem{Type: "budget", Path: b.Path, CreatedAt: b.CreatedAt})
	}
	fuel := []*entities.FuelPhoto{c.FuelGaugePhotos.Entry, c.FuelGaugePhotos.Exit}
	for _, f := range fuel {
		if f != nil {
			items = append(items, entities.MediaItem{Type: "fuel", Path: f.Path, CreatedAt: f.CreatedAt})
		}
	}
	resolved := u.media.ResolveURLs(ctx, items)

	out := ChecklistMedia{
		Media:  resolved[:len(c.Media)],
		Budget: make([]ResolvedAttachment, 0, len(c.BudgetAttachments)),
	}
	next := len(c.Media)
	for _, b := range c.BudgetAttachments {
		out.Budget = append(out.Budget, ResolvedAttachment{BudgetAttachment: b, URL: resolved[next].URL})
		next++
	}
	for i, f := range fuel {
		if f == nil {
			continue
		}
		r := resolved[next]
		next++
		if i == 0 {
			out.FuelEntry = &r
		} else {
			out.FuelExit = &r
		}
	}
	return out, nil
}

// Delete removes a checklist in any status. Admin only.
func (u *ChecklistUseCase) Delete(ctx context.Context, id string) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	c, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, c.ID); err != nil {
		log.Printf("[checklist][usecase] delete failed checklist_id=%s err=%v", c.ID, err)
		return err
	}
	log.Printf("[checklist][usecase] deleted checklist_id=%s status=%s by=%s", c.ID, c.Status, caller.ID)
	publishEvent(ctx, u.events, entities.ChecklistEventDeleted, c, caller.ID)
	return nil
}

// joiner caches reference lookups for the duration of one call.
type joiner struct {
	vehicles  interfaces.IVehicleRepository
	suppliers interfaces.ISupplierRepository
	vcache    map[string]*entities.Vehicle
	scache    map[string]*entities.Supplier
}

func newJoiner(v interfaces.IVehicleRepository, s interfaces.ISupplierRepository) *joiner {
	return &joiner{
		vehicles:  v,
		suppliers: s,
		vcache:    make(map[string]*entities.Vehicle),
		scache:    make(map[string]*entities.Supplier),
	}
}

func (j *joiner) join(ctx context.Context, c *entities.Checklist) error {
	if c.VehicleID != nil && *c.VehicleID != "" && j.vehicles != nil {
		id := *c.VehicleID
		v, ok := j.vcache[id]
		if !ok {
			row, err := j.vehicles.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if row.ID != "" {
				v = &row
			}
			j.vcache[id] = v
		}
		c.Vehicle = v
	}
	if c.SupplierID != nil && *c.SupplierID != "" && j.suppliers != nil {
		id := *c.SupplierID
		s, ok := j.scache[id]
		if !ok {
			row, err := j.suppliers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if row.ID != "" {
				s = &row
			}
			j.scache[id] = s
		}
		c.Supplier = s
	}
	return nil
}
