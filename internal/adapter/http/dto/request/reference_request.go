package request

import (
	"strings"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
)

type SupplierRequest struct {
	CNPJ          string `json:"cnpj" binding:"required"`
	CorporateName string `json:"corporate_name" binding:"required"`
	TradeName     string `json:"trade_name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	ContactName   string `json:"contact_name"`
	Notes         string `json:"notes"`
}

func (r SupplierRequest) ToInput() usecase.SupplierInput {
	return usecase.SupplierInput{
		CNPJ:          r.CNPJ,
		CorporateName: strings.TrimSpace(r.CorporateName),
		TradeName:     strings.TrimSpace(r.TradeName),
		Address:       strings.TrimSpace(r.Address),
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		ContactName:   strings.TrimSpace(r.ContactName),
		Notes:         r.Notes,
	}
}

type VehicleRequest struct {
	Plate       string `json:"plate" binding:"required"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	VehicleType string `json:"vehicle_type"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		Plate:       r.Plate,
		Brand:       strings.TrimSpace(r.Brand),
		Model:       strings.TrimSpace(r.Model),
		Year:        strings.TrimSpace(r.Year),
		VehicleType: strings.TrimSpace(r.VehicleType),
	}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user disabled"`
}

func (r SetRoleRequest) ToRole() entities.UserRole {
	return entities.UserRole(r.Role)
}
