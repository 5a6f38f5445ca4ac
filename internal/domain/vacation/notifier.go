package vacation

import "context"

type EventKind string

const (
	EventSubmitted EventKind = "vacation_submitted"
	EventApproved  EventKind = "vacation_approved"
	EventDenied    EventKind = "vacation_denied"
	EventCancelled EventKind = "vacation_cancelled"
)

// Notifier receives workflow events for user-facing delivery. Delivery is
// best effort: the workflow logs Notify errors and never rolls back a
// committed transition because of them.
type Notifier interface {
	Notify(ctx context.Context, recipientID string, kind EventKind, req Request) error
}
