package response

import (
	"time"

	"frota_checklist/internal/domain/entities"
)

type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DisplayName   string    `json:"display_name"`
	CNPJ          string    `json:"cnpj"`
	CNPJFormatted string    `json:"cnpj_formatted"`
	CorporateName string    `json:"corporate_name"`
	TradeName     string    `json:"trade_name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ContactName   string    `json:"contact_name"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		DisplayName:   s.DisplayName(),
		CNPJ:          s.CNPJ,
		CNPJFormatted: entities.FormatCNPJ(s.CNPJ),
		CorporateName: s.CorporateName,
		TradeName:     s.TradeName,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		ContactName:   s.ContactName,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

func FromSuppliers(list []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSupplier(s))
	}
	return out
}

type VehicleResponse struct {
	ID          string    `json:"id"`
	Plate       string    `json:"plate"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        string    `json:"year"`
	VehicleType string    `json:"vehicle_type"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		Plate:       v.Plate,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		VehicleType: v.VehicleType,
		Description: v.Description(),
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}

func FromVehicles(list []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVehicle(v))
	}
	return out
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUsers(list []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
}
