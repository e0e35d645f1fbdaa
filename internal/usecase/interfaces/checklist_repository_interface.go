package interfaces

import (
	"context"
	"errors"
	"time"

	"frota_checklist/internal/domain/entities"
)

// ErrChecklistLocked is returned by the store when a write that touches media,
// budget attachments or fuel photos targets a read-only document.
var ErrChecklistLocked = errors.New("checklist is locked")

// ErrChecklistModified is returned by Finalize when the document changed after
// the caller last read it.
var ErrChecklistModified = errors.New("checklist modified concurrently")

// IChecklistRepository abstracts the remote document store holding checklists.
//
// Not-found follows the repository convention: zero value and nil error.
// Update has patch semantics: nil fields of the patch are left untouched.
type IChecklistRepository interface {
	Get(ctx context.Context, id string) (entities.Checklist, error)
	Insert(ctx context.Context, c entities.Checklist) (entities.Checklist, error)
	Update(ctx context.Context, id string, patch entities.ChecklistPatch) (entities.Checklist, error)
	// Finalize writes patch together with status=finalizado and is_locked=true in a
	// single conditional write. A non-zero expectedUpdatedAt must match the stored
	// updated_at, otherwise ErrChecklistModified is returned.
	Finalize(ctx context.Context, id string, patch entities.ChecklistPatch, expectedUpdatedAt time.Time) (entities.Checklist, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entities.ChecklistFilter) ([]entities.Checklist, error)
}
