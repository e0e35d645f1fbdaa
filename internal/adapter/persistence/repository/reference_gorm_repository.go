package repository

import (
	"context"
	"errors"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type supplierModel struct {
	ID            string    `gorm:"type:varchar(36);primaryKey"`
	Name          string    `gorm:"type:varchar(200)"`
	CNPJ          string    `gorm:"column:cnpj;type:varchar(14);uniqueIndex"`
	CorporateName string    `gorm:"type:varchar(200);not null"`
	TradeName     string    `gorm:"type:varchar(200)"`
	Address       string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(32)"`
	Email         string    `gorm:"type:varchar(200)"`
	ContactName   string    `gorm:"type:varchar(200)"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
}

func (supplierModel) TableName() string { return "suppliers" }

type vehicleModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Plate       string    `gorm:"type:varchar(10);index"`
	Brand       string    `gorm:"type:varchar(100)"`
	Model       string    `gorm:"type:varchar(100)"`
	Year        string    `gorm:"type:varchar(10)"`
	VehicleType string    `gorm:"type:varchar(50)"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

func (vehicleModel) TableName() string { return "vehicles" }

type userModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(200)"`
	Email     string    `gorm:"type:varchar(200);index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (userModel) TableName() string { return "users" }

// AutoMigrate creates or updates the Postgres schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&checklistModel{}, &supplierModel{}, &vehicleModel{}, &userModel{})
}

// SupplierGormRepository persists suppliers in Postgres.
type SupplierGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISupplierRepository = (*SupplierGormRepository)(nil)

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m := supplierModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *SupplierGormRepository) GetByCNPJ(ctx context.Context, cnpj string) (entities.Supplier, error) {
	return r.first(ctx, "cnpj = ?", cnpj)
}

func (r *SupplierGormRepository) first(ctx context.Context, query string, arg any) (entities.Supplier, error) {
	var m supplierModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Supplier{}, nil
	}
	if err != nil {
		return entities.Supplier{}, err
	}
	return entities.Supplier(m), nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	res := r.db.WithContext(ctx).Model(&supplierModel{}).Where("id = ?", s.ID).Updates(map[string]any{
		"name":           s.Name,
		"cnpj":           s.CNPJ,
		"corporate_name": s.CorporateName,
		"trade_name":     s.TradeName,
		"address":        s.Address,
		"phone":          s.Phone,
		"email":          s.Email,
		"contact_name":   s.ContactName,
		"notes":          s.Notes,
	})
	if res.Error != nil {
		return entities.Supplier{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Supplier{}, nil
	}
	return r.GetByID(ctx, s.ID)
}

func (r *SupplierGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&supplierModel{}).Error
}

func (r *SupplierGormRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	var rows []supplierModel
	err := r.db.WithContext(ctx).
		Order("LOWER(COALESCE(NULLIF(trade_name, ''), NULLIF(corporate_name, ''), name))").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Supplier(m))
	}
	return out, nil
}

// VehicleGormRepository persists vehicles in Postgres.
type VehicleGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IVehicleRepository = (*VehicleGormRepository)(nil)

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	m := vehicleModel(v)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleGormRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var m vehicleModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Vehicle{}, nil
	}
	if err != nil {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle(m), nil
}

func (r *VehicleGormRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	// map form so active=false is written
	res := r.db.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", v.ID).Updates(map[string]any{
		"plate":        v.Plate,
		"brand":        v.Brand,
		"model":        v.Model,
		"year":         v.Year,
		"vehicle_type": v.VehicleType,
		"active":       v.Active,
	})
	if res.Error != nil {
		return entities.Vehicle{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Vehicle{}, nil
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VehicleGormRepository) List(ctx context.Context, onlyActive bool) ([]entities.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&vehicleModel{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var rows []vehicleModel
	if err := q.Order("plate").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Vehicle(m))
	}
	return out, nil
}

// UserGormRepository persists user profiles in Postgres.
type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserModel(m), nil
}

// Upsert inserts the profile or updates name, email and role, keeping created_at.
func (r *UserGormRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	m := userModel{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role"}),
	}).Create(&m).Error
	if err != nil {
		return entities.User{}, err
	}
	return r.GetByID(ctx, u.ID)
}

func (r *UserGormRepository) List(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("LOWER(email)").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromUserModel(m))
	}
	return out, nil
}

func fromUserModel(m userModel) entities.User {
	return entities.User{ID: m.ID, Name: m.Name, Email: m.Email, Role: entities.UserRole(m.Role), CreatedAt: m.CreatedAt.UTC()}
}
