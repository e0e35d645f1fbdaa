package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type checklistModel struct {
	ID                string                                         `gorm:"type:varchar(36);primaryKey"`
	Seq               int64                                          `gorm:"type:bigserial;<-:false"`
	Status            string                                         `gorm:"type:varchar(20);index;not null"`
	CreatedBy         string                                         `gorm:"type:varchar(64)"`
	VehicleID         *string                                        `gorm:"type:varchar(36);index"`
	SupplierID        *string                                        `gorm:"type:varchar(36);index"`
	Notes             string                                         `gorm:"type:text"`
	Items             datatypes.JSON                                 `gorm:"type:jsonb"`
	Media             datatypes.JSONSlice[entities.MediaItem]        `gorm:"type:jsonb"`
	BudgetAttachments datatypes.JSONSlice[entities.BudgetAttachment] `gorm:"column:budget_attachments;type:jsonb"`
	FuelGaugePhotos   datatypes.JSONType[entities.FuelGaugePhotos]   `gorm:"column:fuel_gauge_photos;type:jsonb"`
	IsLocked          bool                                           `gorm:"not null;default:false"`
	CreatedAt         time.Time                                      `gorm:"index;autoCreateTime:false"`
	UpdatedAt         time.Time                                      `gorm:"autoUpdateTime:false"`
}

func (checklistModel) TableName() string { return "checklists" }

// ChecklistGormRepository persists checklists in Postgres. seq comes from a
// bigserial column. Timestamps are kept at microsecond precision so the
// optimistic finalize comparison matches what Postgres stores.
type ChecklistGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.IChecklistRepository = (*ChecklistGormRepository)(nil)

func NewChecklistGormRepository(db *gorm.DB) *ChecklistGormRepository {
	return &ChecklistGormRepository{db: db, now: time.Now}
}

func (r *ChecklistGormRepository) stamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *ChecklistGormRepository) Get(ctx context.Context, id string) (entities.Checklist, error) {
	var m checklistModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Checklist{}, nil
	}
	if err != nil {
		return entities.Checklist{}, err
	}
	return fromChecklistModel(m)
}

func (r *ChecklistGormRepository) Insert(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := r.stamp()
	c.CreatedAt = now
	c.UpdatedAt = now
	m, err := toChecklistModel(c)
	if err != nil {
		return entities.Checklist{}, err
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Checklist{}, nil
		}
		return entities.Checklist{}, err
	}
	// seq is assigned by the database
	return r.Get(ctx, c.ID)
}

func (r *ChecklistGormRepository) Update(ctx context.Context, id string, patch entities.ChecklistPatch) (entities.Checklist, error) {
	cols, err := checklistColumns(patch)
	if err != nil {
		return entities.Checklist{}, err
	}
	cols["updated_at"] = r.stamp()

	q := r.db.WithContext(ctx).Model(&checklistModel{}).Where("id = ?", id)
	if patch.TouchesAttachments() {
		q = q.Where("is_locked = ? AND status <> ?", false, string(entities.ChecklistStatusFinalizado))
	}
	res := q.Updates(cols)
	if res.Error != nil {
		return entities.Checklist{}, res.Error
	}
	if res.RowsAffected == 0 {
		stored, err := r.Get(ctx, id)
		if err != nil || stored.ID == "" {
			return entities.Checklist{}, err
		}
		return entities.Checklist{}, interfaces.ErrChecklistLocked
	}
	return r.Get(ctx, id)
}

func (r *ChecklistGormRepository) Finalize(ctx context.Context, id string, patch entities.ChecklistPatch, expectedUpdatedAt time.Time) (entities.Checklist, error) {
	cols, err := checklistColumns(patch)
	if err != nil {
		return entities.Checklist{}, err
	}
	cols["status"] = string(entities.ChecklistStatusFinalizado)
	cols["is_locked"] = true
	cols["updated_at"] = r.stamp()

	q := r.db.WithContext(ctx).Model(&checklistModel{}).
		Where("id = ? AND is_locked = ? AND status <> ?", id, false, string(entities.ChecklistStatusFinalizado))
	if !expectedUpdatedAt.IsZero() {
		q = q.Where("updated_at = ?", expectedUpdatedAt.UTC().Truncate(time.Microsecond))
	}
	res := q.Updates(cols)
	if res.Error != nil {
		return entities.Checklist{}, res.Error
	}
	if res.RowsAffected == 0 {
		stored, err := r.Get(ctx, id)
		if err != nil || stored.ID == "" {
			return entities.Checklist{}, err
		}
		if stored.IsReadOnly() {
			return entities.Checklist{}, interfaces.ErrChecklistLocked
		}
		return entities.Checklist{}, interfaces.ErrChecklistModified
	}
	return r.Get(ctx, id)
}

func (r *ChecklistGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&checklistModel{}).Error
}

func (r *ChecklistGormRepository) List(ctx context.Context, filter entities.ChecklistFilter) ([]entities.Checklist, error) {
	q := r.db.WithContext(ctx).Model(&checklistModel{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", filter.To.UTC())
	}
	var rows []checklistModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Checklist, 0, len(rows))
	for _, m := range rows {
		c, err := fromChecklistModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// checklistColumns maps the non-nil patch fields to column values.
func checklistColumns(p entities.ChecklistPatch) (map[string]any, error) {
	cols := map[string]any{}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.IsLocked != nil {
		cols["is_locked"] = *p.IsLocked
	}
	if p.CreatedBy != nil {
		cols["created_by"] = *p.CreatedBy
	}
	if p.VehicleID != nil {
		cols["vehicle_id"] = nullable(*p.VehicleID)
	}
	if p.SupplierID != nil {
		cols["supplier_id"] = nullable(*p.SupplierID)
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.Items != nil {
		raw, err := json.Marshal(p.Items)
		if err != nil {
			return nil, err
		}
		cols["items"] = datatypes.JSON(raw)
	}
	if p.Media != nil {
		cols["media"] = datatypes.NewJSONSlice(derefSlice(p.Media))
	}
	if p.BudgetAttachments != nil {
		cols["budget_attachments"] = datatypes.NewJSONSlice(derefSlice(p.BudgetAttachments))
	}
	if p.FuelGaugePhotos != nil {
		cols["fuel_gauge_photos"] = datatypes.NewJSONType(*p.FuelGaugePhotos)
	}
	return cols, nil
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func toChecklistModel(c entities.Checklist) (checklistModel, error) {
	m := checklistModel{
		ID:                c.ID,
		Status:            string(c.Status),
		CreatedBy:         c.CreatedBy,
		VehicleID:         c.VehicleID,
		SupplierID:        c.SupplierID,
		Notes:             c.Notes,
		Media:             datatypes.NewJSONSlice(derefSlice(&c.Media)),
		BudgetAttachments: datatypes.NewJSONSlice(derefSlice(&c.BudgetAttachments)),
		FuelGaugePhotos:   datatypes.NewJSONType(c.FuelGaugePhotos),
		IsLocked:          c.IsLocked,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.Items != nil {
		raw, err := json.Marshal(c.Items)
		if err != nil {
			return checklistModel{}, err
		}
		m.Items = raw
	}
	return m, nil
}

func fromChecklistModel(m checklistModel) (entities.Checklist, error) {
	c := entities.Checklist{
		ID:                m.ID,
		Status:            entities.ChecklistStatus(m.Status),
		CreatedBy:         m.CreatedBy,
		VehicleID:         m.VehicleID,
		SupplierID:        m.SupplierID,
		Notes:             m.Notes,
		Media:             []entities.MediaItem(m.Media),
		BudgetAttachments: []entities.BudgetAttachment(m.BudgetAttachments),
		FuelGaugePhotos:   m.FuelGaugePhotos.Data(),
		IsLocked:          m.IsLocked,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
	if m.Seq != 0 {
		seq := m.Seq
		c.Seq = &seq
	}
	if len(m.Items) > 0 && string(m.Items) != "null" {
		var items entities.Items
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return entities.Checklist{}, err
		}
		c.Items = &items
	}
	return c, nil
}
