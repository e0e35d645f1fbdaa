package usecase

import (
	"context"
	"errors"
	"testing"

	"frota_checklist/internal/adapter/persistence/memory"
	"frota_checklist/internal/domain/entities"
)

func seedUsers(t *testing.T) *memory.UserRepository {
	t.Helper()
	repo := memory.NewUserRepository()
	for _, u := range []entities.User{
		{ID: "adm", Name: "Admin", Email: "admin@frota.com", Role: entities.UserRoleAdmin},
		{ID: "u1", Name: "Ana", Email: "ana@frota.com", Role: entities.UserRoleUser},
		{ID: "u2", Name: "Bruno", Email: "bruno@frota.com", Role: entities.UserRoleUser},
	} {
		if _, err := repo.Upsert(context.Background(), u); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestUserUseCase_List(t *testing.T) {
	uc := NewUserUseCase(seedUsers(t), nil)

	if _, err := uc.List(authCtx(), ""); !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
	all, err := uc.List(adminCtx(), "")
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 users, got %d (%v)", len(all), err)
	}
	got, _ := uc.List(adminCtx(), "BRU")
	if len(got) != 1 || got[0].ID != "u2" {
		t.Fatalf("unexpected search result %+v", got)
	}
}

func TestUserUseCase_SetRole(t *testing.T) {
	repo := seedUsers(t)
	auth := NewAuthContext(nil, nil)
	var events []entities.AuthEvent
	auth.Subscribe(func(evt entities.AuthEvent) { events = append(events, evt) })
	uc := NewUserUseCase(repo, auth)

	if _, err := uc.SetRole(adminCtx(), "u1", "root"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := uc.SetRole(adminCtx(), "adm", entities.UserRoleUser); !errors.Is(err, ErrCannotChangeOwnRole) {
		t.Fatalf("expected ErrCannotChangeOwnRole, got %v", err)
	}
	if _, err := uc.SetRole(adminCtx(), "nobody", entities.UserRoleUser); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	got, err := uc.SetRole(adminCtx(), "u1", entities.UserRoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Role != entities.UserRoleAdmin {
		t.Fatalf("expected admin role, got %s", got.Role)
	}
	if len(events) != 1 || events[0].Type != entities.AuthEventRoleChanged || events[0].Role != entities.UserRoleAdmin {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestUserUseCase_Disable(t *testing.T) {
	repo := seedUsers(t)
	auth := NewAuthContext(nil, nil)
	var types []entities.AuthEventType
	auth.Subscribe(func(evt entities.AuthEvent) { types = append(types, evt.Type) })
	uc := NewUserUseCase(repo, auth)

	got, err := uc.Disable(adminCtx(), "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Role != entities.UserRoleDisabled {
		t.Fatalf("expected disabled, got %s", got.Role)
	}
	if len(types) != 2 || types[0] != entities.AuthEventRoleChanged || types[1] != entities.AuthEventSignedOut {
		t.Fatalf("unexpected events %v", types)
	}
	stored, _ := repo.GetByID(context.Background(), "u2")
	if stored.Role != entities.UserRoleDisabled {
		t.Fatalf("role not persisted: %s", stored.Role)
	}
}
