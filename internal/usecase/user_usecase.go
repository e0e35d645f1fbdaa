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
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRole         = errors.New("invalid role")
	ErrCannotChangeOwnRole = errors.New("cannot change own role")
)

// IUserUseCase is the admin surface over user profiles.
type IUserUseCase interface {
	List(ctx context.Context, q string) ([]entities.User, error)
	SetRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error)
	Disable(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
	auth IAuthContext
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, auth IAuthContext) *UserUseCase {
	return &UserUseCase{repo: repo, auth: auth}
}

func (u *UserUseCase) List(ctx context.Context, q string) ([]entities.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all, nil
	}
	out := make([]entities.User, 0, len(all))
	for _, usr := range all {
		if strings.Contains(strings.ToLower(usr.Name), q) || strings.Contains(strings.ToLower(usr.Email), q) {
			out = append(out, usr)
		}
	}
	return out, nil
}

func (u *UserUseCase) SetRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return entities.User{}, err
	}
	switch role {
	case entities.UserRoleAdmin, entities.UserRoleUser, entities.UserRoleDisabled:
	default:
		return entities.User{}, ErrInvalidRole
	}
	if caller.ID == id {
		return entities.User{}, ErrCannotChangeOwnRole
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if current.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	if current.Role == role {
		return current, nil
	}
	current.Role = role
	updated, err := u.repo.Upsert(ctx, current)
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[user] role changed user_id=%s role=%s by=%s", id, role, caller.ID)
	if u.auth != nil {
		u.auth.Notify(entities.AuthEvent{Type: entities.AuthEventRoleChanged, AccountID: id, Role: role})
	}
	return updated, nil
}

// Disable blocks the account and signs it out everywhere.
func (u *UserUseCase) Disable(ctx context.Context, id string) (entities.User, error) {
	updated, err := u.SetRole(ctx, id, entities.UserRoleDisabled)
	if err != nil {
		return entities.User{}, err
	}
	if u.auth != nil {
		if err := u.auth.SignOut(ctx, id); err != nil {
			return entities.User{}, err
		}
	}
	return updated, nil
}
