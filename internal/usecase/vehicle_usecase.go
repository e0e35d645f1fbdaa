package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrInvalidVehicleID     = errors.New("invalid vehicle id")
	ErrInvalidPlate         = errors.New("plate is required")
	ErrVehicleAlreadyExists = errors.New("vehicle with this plate already exists")
)

type VehicleInput struct {
	Plate       string
	Brand       string
	Model       string
	Year        string
	VehicleType string
}

// IVehicleUseCase manages fleet vehicles. Delete only deactivates.
type IVehicleUseCase interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	Search(ctx context.Context, q string) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// List returns the active vehicles ordered by plate.
func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx, true)
}

// Search matches active vehicles by plate, ignoring case and separators.
func (u *VehicleUseCase) Search(ctx context.Context, q string) ([]entities.Vehicle, error) {
	all, err := u.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	needle := entities.NormalizePlate(q)
	out := make([]entities.Vehicle, 0, searchLimit)
	for _, v := range all {
		if len(out) == searchLimit {
			break
		}
		if needle == "" || strings.Contains(entities.NormalizePlate(v.Plate), needle) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	plate := entities.NormalizePlate(in.Plate)
	if plate == "" {
		return entities.Vehicle{}, ErrInvalidPlate
	}
	if taken, err := u.plateTaken(ctx, plate, ""); err != nil {
		return entities.Vehicle{}, err
	} else if taken {
		return entities.Vehicle{}, ErrVehicleAlreadyExists
	}

	v := applyVehicleInput(entities.Vehicle{Active: true}, in)
	v.Plate = plate
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[vehicle] created vehicle_id=%s plate=%s", created.ID, created.Plate)
	return created, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	plate := entities.NormalizePlate(in.Plate)
	if plate == "" {
		return entities.Vehicle{}, ErrInvalidPlate
	}
	if taken, err := u.plateTaken(ctx, plate, current.ID); err != nil {
		return entities.Vehicle{}, err
	} else if taken {
		return entities.Vehicle{}, ErrVehicleAlreadyExists
	}

	v := applyVehicleInput(current, in)
	v.Plate = plate
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

// Delete deactivates the vehicle so historic checklists keep their reference.
func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	current.Active = false
	if _, err := u.repo.Update(ctx, current); err != nil {
		return err
	}
	log.Printf("[vehicle] deactivated vehicle_id=%s plate=%s", current.ID, current.Plate)
	return nil
}

func (u *VehicleUseCase) plateTaken(ctx context.Context, plate, exceptID string) (bool, error) {
	all, err := u.repo.List(ctx, true)
	if err != nil {
		return false, err
	}
	for _, v := range all {
		if v.ID != exceptID && entities.NormalizePlate(v.Plate) == plate {
			return true, nil
		}
	}
	return false, nil
}

func applyVehicleInput(v entities.Vehicle, in VehicleInput) entities.Vehicle {
	v.Brand = strings.TrimSpace(in.Brand)
	v.Model = strings.TrimSpace(in.Model)
	v.Year = strings.TrimSpace(in.Year)
	v.VehicleType = strings.TrimSpace(in.VehicleType)
	return v
}
