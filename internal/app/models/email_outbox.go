package models

import "time"

// Outbox entry states.
const (
	OutboxPending = "pending"
	OutboxSent    = "sent"
	OutboxFailed  = "failed"
)

// OutboxEmail is a queued notification email. Rows are written in the same
// transaction as the event that triggers them and drained by the notifier
// worker, so a crash between commit and delivery loses nothing.
type OutboxEmail struct {
	ID        int64      `json:"_id"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	Attempts  int        `json:"attempts"`
	LastError string     `json:"last_error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}
