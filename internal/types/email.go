package types

import "time"

// EmailTemplate is one generated outreach email, bound to the contact it was
// generated for. Templates are generated in a single batch pass and remain
// user-editable afterwards.
type EmailTemplate struct {
	ID      string  `json:"id"`
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
	Company string  `json:"company"`
	Contact Contact `json:"contact"`
}

// TrackingStatus is the delivery state of one send attempt.
type TrackingStatus string

const (
	StatusPending TrackingStatus = "pending"
	StatusSent    TrackingStatus = "sent"
	StatusFailed  TrackingStatus = "failed"

	// Reserved states: never set by this core, kept for session round-trips
	// with tracking data produced elsewhere.
	StatusOpened  TrackingStatus = "opened"
	StatusReplied TrackingStatus = "replied"
)

// EmailTracking records one send attempt for one contact. Status transitions
// are pending→sent or pending→failed only.
type EmailTracking struct {
	ID            string         `json:"id"`
	Contact       Contact        `json:"contact"`
	EmailTemplate EmailTemplate  `json:"emailTemplate"`
	Status        TrackingStatus `json:"status"`
	SentAt        *time.Time     `json:"sentAt,omitempty"`
	OpenedAt      *time.Time     `json:"openedAt,omitempty"`
	RepliedAt     *time.Time     `json:"repliedAt,omitempty"`
	Error         string         `json:"error,omitempty"`
}
