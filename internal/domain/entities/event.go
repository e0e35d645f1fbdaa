package entities

import "time"

type ChecklistEventType string

const (
	ChecklistEventCreated    ChecklistEventType = "created"
	ChecklistEventDraftSaved ChecklistEventType = "draft_saved"
	ChecklistEventFinalized  ChecklistEventType = "finalized"
	ChecklistEventDeleted    ChecklistEventType = "deleted"
)

// ChecklistEvent is published after a lifecycle transition has been persisted.
type ChecklistEvent struct {
	Type        ChecklistEventType `json:"type"`
	ChecklistID string             `json:"checklist_id"`
	Seq         *int64             `json:"seq,omitempty"`
	Status      ChecklistStatus    `json:"status"`
	AccountID   string             `json:"account_id,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// AuthEventType describes a change of an account's authentication state.
type AuthEventType string

const (
	AuthEventSignedIn    AuthEventType = "signed_in"
	AuthEventSignedOut   AuthEventType = "signed_out"
	AuthEventRoleChanged AuthEventType = "role_changed"
)

type AuthEvent struct {
	Type      AuthEventType
	AccountID string
	Role      UserRole
}
