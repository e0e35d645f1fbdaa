package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"frota_checklist/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrWizardNotFound  = errors.New("wizard session not found")
	ErrWizardForbidden = errors.New("wizard session belongs to another account")
)

const defaultWizardIdleTTL = 30 * time.Minute

// IWizardRegistry keeps the open wizard sessions of every account.
type IWizardRegistry interface {
	Open(ctx context.Context, checklistID string) (IWizard, error)
	Get(ctx context.Context, sessionID string) (IWizard, error)
	Close(ctx context.Context, sessionID string) error
	CloseAccount(accountID string) int
	Sweep(now time.Time) int
	Run(ctx context.Context)
	HandleAuthEvent(evt entities.AuthEvent)
	Len() int
}

type WizardRegistry struct {
	mu       sync.Mutex
	sessions map[string]IWizard
	deps     WizardDeps
	idleTTL  time.Duration
	newID    func() string
}

var _ IWizardRegistry = (*WizardRegistry)(nil)

func NewWizardRegistry(deps WizardDeps, idleTTL time.Duration) *WizardRegistry {
	if idleTTL <= 0 {
		idleTTL = defaultWizardIdleTTL
	}
	return &WizardRegistry{
		sessions: make(map[string]IWizard),
		deps:     deps,
		idleTTL:  idleTTL,
		newID:    uuid.NewString,
	}
}

// Open starts a session for the caller. An empty checklistID opens the wizard
// on a new checklist; otherwise the checklist is loaded first.
func (r *WizardRegistry) Open(ctx context.Context, checklistID string) (IWizard, error) {
	acc, ok := AccountFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}
	w := NewWizard(r.newID(), acc.ID, r.deps)
	if id := strings.TrimSpace(checklistID); id != "" {
		if _, err := w.Load(ctx, id); err != nil {
			w.Close(ctx)
			return nil, err
		}
	}

	r.mu.Lock()
	r.sessions[w.SessionID()] = w
	r.mu.Unlock()
	log.Printf("[wizard] session opened session_id=%s account_id=%s checklist_id=%s", w.SessionID(), acc.ID, checklistID)
	return w, nil
}

func (r *WizardRegistry) Get(ctx context.Context, sessionID string) (IWizard, error) {
	acc, ok := AccountFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}
	r.mu.Lock()
	w, found := r.sessions[sessionID]
	r.mu.Unlock()
	if !found {
		return nil, ErrWizardNotFound
	}
	if w.Owner() != acc.ID {
		return nil, ErrWizardForbidden
	}
	return w, nil
}

// Close removes the session and runs its teardown. The teardown draft save
// continues in the background.
func (r *WizardRegistry) Close(ctx context.Context, sessionID string) error {
	w, err := r.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	r.remove(sessionID)
	w.Close(ctx)
	return nil
}

func (r *WizardRegistry) remove(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}

func (r *WizardRegistry) takeWhere(match func(IWizard) bool) []IWizard {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []IWizard
	for id, w := range r.sessions {
		if match(w) {
			out = append(out, w)
			delete(r.sessions, id)
		}
	}
	return out
}

// CloseAccount tears down every session of an account, e.g. after sign-out.
func (r *WizardRegistry) CloseAccount(accountID string) int {
	closed := r.takeWhere(func(w IWizard) bool { return w.Owner() == accountID })
	for _, w := range closed {
		w.Close(context.Background())
	}
	if len(closed) > 0 {
		log.Printf("[wizard] sessions closed account_id=%s count=%d", accountID, len(closed))
	}
	return len(closed)
}

// Sweep tears down sessions idle for longer than the configured TTL. This is the
// server-side counterpart of a browser tab being closed.
func (r *WizardRegistry) Sweep(now time.Time) int {
	expired := r.takeWhere(func(w IWizard) bool { return now.Sub(w.LastActive()) > r.idleTTL })
	for _, w := range expired {
		w.Close(context.Background())
	}
	if len(expired) > 0 {
		log.Printf("[wizard] idle sessions swept count=%d", len(expired))
	}
	return len(expired)
}

// Run sweeps periodically until ctx is done, then closes every session left.
func (r *WizardRegistry) Run(ctx context.Context) {
	interval := r.idleTTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			rest := r.takeWhere(func(IWizard) bool { return true })
			for _, w := range rest {
				<-w.Close(context.Background())
			}
			return
		case now := <-ticker.C:
			r.Sweep(now)
		}
	}
}

// HandleAuthEvent is subscribed to the auth context.
func (r *WizardRegistry) HandleAuthEvent(evt entities.AuthEvent) {
	switch {
	case evt.Type == entities.AuthEventSignedOut:
		r.CloseAccount(evt.AccountID)
	case evt.Type == entities.AuthEventRoleChanged && evt.Role == entities.UserRoleDisabled:
		r.CloseAccount(evt.AccountID)
	}
}

func (r *WizardRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
