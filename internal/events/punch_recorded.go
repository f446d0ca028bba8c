package events

import "time"

const PunchRecordedTopic = "ponto.punch.recorded.v1"

// PunchRecordedEvent is emitted through the transactional outbox after a
// punch row commits.
type PunchRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PunchID    string    `json:"punch_id"`
	EmployeeID string    `json:"employee_id"`
	Action     string    `json:"action"`
	PunchDate  string    `json:"punch_date"`
	PunchTime  string    `json:"punch_time"`
	OccurredAt time.Time `json:"occurred_at"`
}
