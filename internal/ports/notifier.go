package ports

import "context"

// Per-facility details carried into notification emails. IDs are strings
// because nearby-place results use provider place IDs rather than row IDs.
type FacilitySummary struct {
	ID          string
	Name        string
	Category    string
	Coordinates string
	Description string
	Distance    string
	CreatedAt   string
}

// OmitCount suppresses the "Total Count" line in a success notification.
const OmitCount = -1

// Contract for sending operation-outcome notifications.
// Implementations append a timestamp line to every message.
type Notifier interface {
	// Notify the receiver group about a successful operation. A non-empty
	// facilities slice is rendered as an HTML table; pass OmitCount to
	// leave the total-count line out.
	NotifySuccess(ctx context.Context, subject, body string, facilities []FacilitySummary, count int) error
	// Notify the error-handling group about a failed operation.
	NotifyFailure(ctx context.Context, subject, body, details string) error
	// Send a raw HTML message to explicit recipients.
	Send(ctx context.Context, to []string, subject, body string) error
}
