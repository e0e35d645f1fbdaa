// Package memory holds in-memory repositories used by STORAGE_DRIVER=memory
// and by scenario tests. Every repository is safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ChecklistRepository keeps checklists in a map and applies the same
// conditional write rules as the DynamoDB repository.
type ChecklistRepository struct {
	mu      sync.RWMutex
	docs    map[string]entities.Checklist
	lastSeq int64
	now     func() time.Time
	last    time.Time
}

var _ interfaces.IChecklistRepository = (*ChecklistRepository)(nil)

func NewChecklistRepository() *ChecklistRepository {
	return &ChecklistRepository{
		docs: make(map[string]entities.Checklist),
		now:  time.Now,
	}
}

// tick returns a strictly increasing timestamp so updated_at always changes.
func (r *ChecklistRepository) tick() time.Time {
	t := r.now().UTC()
	if !t.After(r.last) {
		t = r.last.Add(time.Microsecond)
	}
	r.last = t
	return t
}

func (r *ChecklistRepository) Get(_ context.Context, id string) (entities.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.docs[id]
	if !ok {
		return entities.Checklist{}, nil
	}
	return c.Clone(), nil
}

func (r *ChecklistRepository) Insert(_ context.Context, c entities.Checklist) (entities.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := r.docs[c.ID]; exists {
		return entities.Checklist{}, nil
	}
	r.lastSeq++
	seq := r.lastSeq
	c.Seq = &seq
	now := r.tick()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := c.Clone()
	r.docs[c.ID] = stored
	return stored.Clone(), nil
}

func (r *ChecklistRepository) Update(_ context.Context, id string, patch entities.ChecklistPatch) (entities.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return entities.Checklist{}, nil
	}
	if patch.TouchesAttachments() && c.IsReadOnly() {
		return entities.Checklist{}, interfaces.ErrChecklistLocked
	}
	c.Apply(patch)
	c.UpdatedAt = r.tick()
	r.docs[id] = c
	return c.Clone(), nil
}

func (r *ChecklistRepository) Finalize(_ context.Context, id string, patch entities.ChecklistPatch, expectedUpdatedAt time.Time) (entities.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.docs[id]
	if !ok {
		return entities.Checklist{}, nil
	}
	if c.IsReadOnly() {
		return entities.Checklist{}, interfaces.ErrChecklistLocked
	}
	if !expectedUpdatedAt.IsZero() && !c.UpdatedAt.Equal(expectedUpdatedAt) {
		return entities.Checklist{}, interfaces.ErrChecklistModified
	}
	status := entities.ChecklistStatusFinalizado
	locked := true
	patch.Status = &status
	patch.IsLocked = &locked
	c.Apply(patch)
	c.UpdatedAt = r.tick()
	r.docs[id] = c
	return c.Clone(), nil
}

func (r *ChecklistRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

// List applies status and date filters. Free-text search needs the joined
// references and is done by the use case.
func (r *ChecklistRepository) List(_ context.Context, filter entities.ChecklistFilter) ([]entities.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Checklist, 0, len(r.docs))
	for _, c := range r.docs {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.From != nil && c.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && c.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SupplierRepository is the in-memory supplier store.
type SupplierRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.Supplier
}

var _ interfaces.ISupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{rows: make(map[string]entities.Supplier)}
}

func (r *SupplierRepository) Create(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.rows[s.ID] = s
	return s, nil
}

func (r *SupplierRepository) GetByID(_ context.Context, id string) (entities.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rows[id], nil
}

func (r *SupplierRepository) GetByCNPJ(_ context.Context, cnpj string) (entities.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.rows {
		if s.CNPJ == cnpj {
			return s, nil
		}
	}
	return entities.Supplier{}, nil
}

func (r *SupplierRepository) Update(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.rows[s.ID]
	if !ok {
		return entities.Supplier{}, nil
	}
	s.CreatedAt = prev.CreatedAt
	r.rows[s.ID] = s
	return s, nil
}

func (r *SupplierRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *SupplierRepository) List(_ context.Context) ([]entities.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Supplier, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
	})
	return out, nil
}

// VehicleRepository is the in-memory vehicle store.
type VehicleRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.Vehicle
}

var _ interfaces.IVehicleRepository = (*VehicleRepository)(nil)

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{rows: make(map[string]entities.Vehicle)}
}

func (r *VehicleRepository) Create(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	r.rows[v.ID] = v
	return v, nil
}

func (r *VehicleRepository) GetByID(_ context.Context, id string) (entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rows[id], nil
}

func (r *VehicleRepository) Update(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.rows[v.ID]
	if !ok {
		return entities.Vehicle{}, nil
	}
	v.CreatedAt = prev.CreatedAt
	r.rows[v.ID] = v
	return v, nil
}

func (r *VehicleRepository) List(_ context.Context, onlyActive bool) ([]entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Vehicle, 0, len(r.rows))
	for _, v := range r.rows {
		if onlyActive && !v.Active {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

// UserRepository is the in-memory user profile store.
type UserRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.User
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{rows: make(map[string]entities.User)}
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rows[id], nil
}

func (r *UserRepository) Upsert(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.rows[u.ID]; ok && !prev.CreatedAt.IsZero() {
		u.CreatedAt = prev.CreatedAt
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.rows[u.ID] = u
	return u, nil
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Email) < strings.ToLower(out[j].Email) })
	return out, nil
}
