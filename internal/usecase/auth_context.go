package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"
)

var (
	ErrAuthNotInitialized = errors.New("auth context not initialized")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrAdminRequired      = errors.New("admin role required")
)

// IAuthContext owns the authentication state shared by the whole process.
//
// Subscribers are told about sign-in, sign-out and role changes so that state
// tied to an account (open wizard sessions) can be torn down.
type IAuthContext interface {
	Initialize(ctx context.Context) error
	Teardown()
	Subscribe(fn func(entities.AuthEvent)) (unsubscribe func())
	Resolve(ctx context.Context, token string) (entities.Account, error)
	SignOut(ctx context.Context, accountID string) error
	Notify(evt entities.AuthEvent)
}

type AuthContext struct {
	verifier interfaces.IAuthVerifier
	users    interfaces.IUserRepository

	mu          sync.RWMutex
	ready       bool
	nextID      int
	subscribers map[int]func(entities.AuthEvent)
	signedOut   map[string]time.Time
	now         func() time.Time
}

var _ IAuthContext = (*AuthContext)(nil)

func NewAuthContext(verifier interfaces.IAuthVerifier, users interfaces.IUserRepository) *AuthContext {
	return &AuthContext{
		verifier:    verifier,
		users:       users,
		subscribers: make(map[int]func(entities.AuthEvent)),
		signedOut:   make(map[string]time.Time),
		now:         time.Now,
	}
}

func (a *AuthContext) Initialize(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.verifier == nil {
		return fmt.Errorf("%w: no token verifier", ErrAuthNotInitialized)
	}
	a.ready = true
	log.Printf("[auth] context initialized")
	return nil
}

// Teardown drops every subscription. Resolve fails until Initialize runs again.
func (a *AuthContext) Teardown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ready = false
	a.subscribers = make(map[int]func(entities.AuthEvent))
	log.Printf("[auth] context torn down")
}

func (a *AuthContext) Subscribe(fn func(entities.AuthEvent)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	id := a.nextID
	a.subscribers[id] = fn
	return func() {
		a.mu.Lock()
		delete(a.subscribers, id)
		a.mu.Unlock()
	}
}

// Notify delivers evt to every subscriber on the caller's goroutine.
func (a *AuthContext) Notify(evt entities.AuthEvent) {
	a.mu.RLock()
	ids := make([]int, 0, len(a.subscribers))
	for id := range a.subscribers {
		ids = append(ids, id)
	}
	fns := make([]func(entities.AuthEvent), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, a.subscribers[id])
	}
	a.mu.RUnlock()

	for _, fn := range fns {
		fn(evt)
	}
}

// Resolve verifies token and attaches the stored profile role. A missing
// profile is created with the role carried by the token.
func (a *AuthContext) Resolve(ctx context.Context, token string) (entities.Account, error) {
	a.mu.RLock()
	ready := a.ready
	a.mu.RUnlock()
	if !ready {
		return entities.Account{}, ErrAuthNotInitialized
	}
	if token == "" {
		return entities.Account{}, ErrSessionRequired
	}

	acc, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return entities.Account{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if acc.ID == "" {
		return entities.Account{}, ErrInvalidToken
	}

	a.mu.RLock()
	outAt, wasSignedOut := a.signedOut[acc.ID]
	a.mu.RUnlock()
	// token timestamps have second precision
	if wasSignedOut && acc.IssuedAt.Before(outAt.Truncate(time.Second)) {
		return entities.Account{}, ErrInvalidToken
	}

	if a.users == nil {
		return acc, nil
	}
	profile, err := a.users.GetByID(ctx, acc.ID)
	if err != nil {
		return entities.Account{}, err
	}
	if profile.ID == "" {
		role := acc.Role
		if role == "" {
			role = entities.UserRoleUser
		}
		profile, err = a.users.Upsert(ctx, entities.User{ID: acc.ID, Name: acc.Name, Email: acc.Email, Role: role})
		if err != nil {
			return entities.Account{}, err
		}
		log.Printf("[auth] profile created account_id=%s role=%s", acc.ID, role)
		a.Notify(entities.AuthEvent{Type: entities.AuthEventSignedIn, AccountID: acc.ID, Role: role})
	}
	if profile.Role == entities.UserRoleDisabled {
		return entities.Account{}, ErrAccountDisabled
	}
	acc.Role = profile.Role
	if acc.Email == "" {
		acc.Email = profile.Email
	}
	if acc.Name == "" {
		acc.Name = profile.Name
	}
	return acc, nil
}

// SignOut invalidates the tokens of the account issued before now.
func (a *AuthContext) SignOut(_ context.Context, accountID string) error {
	if accountID == "" {
		return ErrSessionRequired
	}
	a.mu.Lock()
	a.signedOut[accountID] = a.now()
	a.mu.Unlock()
	log.Printf("[auth] signed out account_id=%s", accountID)
	a.Notify(entities.AuthEvent{Type: entities.AuthEventSignedOut, AccountID: accountID})
	return nil
}

// requireAdmin checks the caller placed in ctx by the auth middleware.
func requireAdmin(ctx context.Context) (entities.Account, error) {
	acc, ok := AccountFromContext(ctx)
	if !ok {
		return entities.Account{}, ErrSessionRequired
	}
	if !acc.IsAdmin() {
		return entities.Account{}, ErrAdminRequired
	}
	return acc, nil
}
