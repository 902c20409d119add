package models

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ActionEvent records one dispatched console action for the activity queue
type ActionEvent struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	Outcome    string    `json:"outcome"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	ShopcartID string    `json:"shopcart_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
