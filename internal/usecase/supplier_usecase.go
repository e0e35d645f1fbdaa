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
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrSupplierAlreadyExists = errors.New("supplier with this cnpj already exists")
	ErrInvalidCNPJ           = errors.New("cnpj must have 14 digits")
	ErrCorporateNameRequired = errors.New("corporate_name is required")
	ErrInvalidSupplierID     = errors.New("invalid supplier id")
	ErrCNPJNotFound          = interfaces.ErrCNPJNotFound
	ErrCNPJLookupUnavailable = errors.New("cnpj lookup not configured")
)

// searchLimit caps typeahead answers.
const searchLimit = 10

// SupplierInput carries the editable supplier fields.
type SupplierInput struct {
	CNPJ          string
	CorporateName string
	TradeName     string
	Address       string
	Phone         string
	Email         string
	ContactName   string
	Notes         string
}

func (in SupplierInput) normalize() (SupplierInput, error) {
	in.CNPJ = entities.OnlyDigits(in.CNPJ)
	in.CorporateName = strings.TrimSpace(in.CorporateName)
	in.TradeName = strings.TrimSpace(in.TradeName)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.Notes = strings.TrimSpace(in.Notes)
	if len(in.CNPJ) != 14 {
		return in, ErrInvalidCNPJ
	}
	if in.CorporateName == "" {
		return in, ErrCorporateNameRequired
	}
	return in, nil
}

// ISupplierUseCase manages the supplier registry.
type ISupplierUseCase interface {
	List(ctx context.Context) ([]entities.Supplier, error)
	Search(ctx context.Context, q string) ([]entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	Create(ctx context.Context, in SupplierInput) (entities.Supplier, error)
	Update(ctx context.Context, id string, in SupplierInput) (entities.Supplier, error)
	Delete(ctx context.Context, id string) error
	LookupCNPJ(ctx context.Context, cnpj string) (entities.CNPJLookup, error)
}

type SupplierUseCase struct {
	repo   interfaces.ISupplierRepository
	lookup interfaces.ICNPJLookup
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository, lookup interfaces.ICNPJLookup) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, lookup: lookup}
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}

// Search matches name, trade name, corporate name and CNPJ digits.
func (u *SupplierUseCase) Search(ctx context.Context, q string) ([]entities.Supplier, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	digits := entities.OnlyDigits(q)
	out := make([]entities.Supplier, 0, searchLimit)
	for _, s := range all {
		if len(out) == searchLimit {
			break
		}
		if q == "" || supplierMatches(s, q, digits) {
			out = append(out, s)
		}
	}
	return out, nil
}

func supplierMatches(s entities.Supplier, q, digits string) bool {
	for _, v := range []string{s.Name, s.TradeName, s.CorporateName} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return digits != "" && strings.Contains(s.CNPJ, digits)
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) Create(ctx context.Context, in SupplierInput) (entities.Supplier, error) {
	in, err := in.normalize()
	if err != nil {
		return entities.Supplier{}, err
	}
	if existing, err := u.repo.GetByCNPJ(ctx, in.CNPJ); err != nil {
		return entities.Supplier{}, err
	} else if existing.ID != "" {
		return entities.Supplier{}, ErrSupplierAlreadyExists
	}

	created, err := u.repo.Create(ctx, applySupplierInput(entities.Supplier{}, in))
	if err != nil {
		return entities.Supplier{}, err
	}
	log.Printf("[supplier] created supplier_id=%s cnpj=%s", created.ID, created.CNPJ)
	return created, nil
}

func (u *SupplierUseCase) Update(ctx context.Context, id string, in SupplierInput) (entities.Supplier, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return entities.Supplier{}, err
	}
	if in.CNPJ != current.CNPJ {
		if other, err := u.repo.GetByCNPJ(ctx, in.CNPJ); err != nil {
			return entities.Supplier{}, err
		} else if other.ID != "" && other.ID != current.ID {
			return entities.Supplier{}, ErrSupplierAlreadyExists
		}
	}
	updated, err := u.repo.Update(ctx, applySupplierInput(current, in))
	if err != nil {
		return entities.Supplier{}, err
	}
	if updated.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return updated, nil
}

func (u *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[supplier] deleted supplier_id=%s", id)
	return nil
}

// LookupCNPJ queries the public registry to prefill the supplier form.
func (u *SupplierUseCase) LookupCNPJ(ctx context.Context, cnpj string) (entities.CNPJLookup, error) {
	digits := entities.OnlyDigits(cnpj)
	if len(digits) != 14 {
		return entities.CNPJLookup{}, ErrInvalidCNPJ
	}
	if u.lookup == nil {
		return entities.CNPJLookup{}, ErrCNPJLookupUnavailable
	}
	raw, err := u.lookup.Lookup(ctx, digits)
	if err != nil {
		return entities.CNPJLookup{}, err
	}
	return ParseCNPJLookup(digits, raw)
}

// applySupplierInput copies in onto s; name falls back to the trade name and
// then to the corporate name.
func applySupplierInput(s entities.Supplier, in SupplierInput) entities.Supplier {
	s.CNPJ = in.CNPJ
	s.CorporateName = in.CorporateName
	s.TradeName = in.TradeName
	s.Address = in.Address
	s.Phone = in.Phone
	s.Email = in.Email
	s.ContactName = in.ContactName
	s.Notes = in.Notes
	s.Name = in.TradeName
	if s.Name == "" {
		s.Name = in.CorporateName
	}
	return s
}
