package interfaces

import (
	"context"

	"frota_checklist/internal/domain/entities"
)

// ISupplierRepository abstracts persistence for suppliers. Delete is a hard delete.
type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	GetByCNPJ(ctx context.Context, cnpj string) (entities.Supplier, error)
	Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Supplier, error)
}

// IVehicleRepository abstracts persistence for vehicles. Deletion is soft
// (active=false) and handled by the use case through Update.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	List(ctx context.Context, onlyActive bool) ([]entities.Vehicle, error)
}

// IUserRepository abstracts persistence for user profiles.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	Upsert(ctx context.Context, u entities.User) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
