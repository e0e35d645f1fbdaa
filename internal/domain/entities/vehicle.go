package entities

import (
	"strings"
	"time"
)

// Vehicle is a fleet vehicle identified by its plate. Deleting only clears Active.
type Vehicle struct {
	ID          string    `json:"id"`
	Plate       string    `json:"plate"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        string    `json:"year"`
	VehicleType string    `json:"vehicle_type"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Description joins brand, model and year with " / ", or "-" when all are empty.
func (v Vehicle) Description() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Brand, v.Model, v.Year} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " / ")
}

// NormalizePlate upper-cases a plate and removes separators.
func NormalizePlate(p string) string {
	p = strings.ToUpper(strings.TrimSpace(p))
	return strings.NewReplacer("-", "", " ", "").Replace(p)
}
