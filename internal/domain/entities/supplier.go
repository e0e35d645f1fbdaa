package entities

import (
	"strings"
	"time"
)

// Supplier is a workshop or parts vendor identified by CNPJ.
// Suppliers are hard-deleted.
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CNPJ          string    `json:"cnpj"`
	CorporateName string    `json:"corporate_name"`
	TradeName     string    `json:"trade_name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ContactName   string    `json:"contact_name"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// DisplayName prefers the trade name, then the corporate name, then name.
func (s Supplier) DisplayName() string {
	for _, v := range []string{s.TradeName, s.CorporateName, s.Name} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// OnlyDigits strips every non digit rune.
func OnlyDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCNPJ renders up to 14 digits as 00.000.000/0000-00.
func FormatCNPJ(v string) string {
	d := OnlyDigits(v)
	if len(d) > 14 {
		d = d[:14]
	}
	var out strings.Builder
	for i, r := range d {
		switch i {
		case 2, 5:
			out.WriteByte('.')
		case 8:
			out.WriteByte('/')
		case 12:
			out.WriteByte('-')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// CNPJLookup is the subset of a public CNPJ registry answer used to prefill a supplier.
type CNPJLookup struct {
	CNPJ          string `json:"cnpj"`
	CorporateName string `json:"corporate_name"`
	TradeName     string `json:"trade_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}
