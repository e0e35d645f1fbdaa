package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"frota_checklist/internal/domain/entities"
)

// ErrCNPJNotFound is returned by lookups when the registry has no such company.
var ErrCNPJNotFound = errors.New("cnpj not found")

// ICNPJLookup queries a public company registry by CNPJ. The raw answer is
// returned because its shape varies between providers.
type ICNPJLookup interface {
	Lookup(ctx context.Context, cnpj string) (json.RawMessage, error)
}

// IEventPublisher publishes checklist lifecycle events.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.ChecklistEvent) error
}

// IAuthVerifier validates a bearer token issued by the identity provider and
// returns the account it belongs to.
type IAuthVerifier interface {
	Verify(ctx context.Context, token string) (entities.Account, error)
}

// IReportRenderer lays out a checklist report as a PDF document.
type IReportRenderer interface {
	Render(report entities.ChecklistReport) ([]byte, error)
}

// IMetricsRecorder receives operational counters. Implementations must be safe
// for concurrent use.
type IMetricsRecorder interface {
	WizardTransition(step string)
	ChecklistFinalized(result string)
	DraftSaved(trigger string, result string)
	BlobUploaded(kind string)
	SignedURLFailed()
	ReportExported(result string)
}
