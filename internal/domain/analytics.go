package domain

import "context"

// Analytics event types emitted by this service
const (
	EventEmailSent      = "email_sent"
	EventEmailFailed    = "email_failed"
	EventBookingCreated = "booking_created"
	EventLeadCaptured   = "lead_captured"
)

// AnalyticsEvent is a best-effort event record; inserts never block a response
type AnalyticsEvent struct {
	EventType string                 `json:"event_type"`
	UserID    *string                `json:"user_id,omitempty"`
	EventData map[string]interface{} `json:"event_data"`
}

// AnalyticsSink inserts events into the analytics store
type AnalyticsSink interface {
	Insert(ctx context.Context, event *AnalyticsEvent) error
}
