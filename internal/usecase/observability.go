package usecase

import (
	"context"
	"log"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"
)

type noopMetrics struct{}

func (noopMetrics) WizardTransition(string)   {}
func (noopMetrics) ChecklistFinalized(string) {}
func (noopMetrics) DraftSaved(string, string) {}
func (noopMetrics) BlobUploaded(string)       {}
func (noopMetrics) SignedURLFailed()          {}
func (noopMetrics) ReportExported(string)     {}

func metricsOrNoop(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

// publishEvent never fails the caller: the transition is already persisted.
func publishEvent(ctx context.Context, pub interfaces.IEventPublisher, typ entities.ChecklistEventType, c entities.Checklist, accountID string) {
	if pub == nil {
		return
	}
	evt := entities.ChecklistEvent{
		Type:        typ,
		ChecklistID: c.ID,
		Seq:         c.Seq,
		Status:      c.Status,
		AccountID:   accountID,
		OccurredAt:  time.Now().UTC(),
	}
	if err := pub.Publish(ctx, evt); err != nil {
		log.Printf("[events] publish failed type=%s checklist_id=%s err=%v", typ, c.ID, err)
	}
}

func accountID(ctx context.Context) string {
	acc, _ := AccountFromContext(ctx)
	return acc.ID
}
