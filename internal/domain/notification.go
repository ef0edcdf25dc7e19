package domain

import "context"

// SendBookingEmailRequest is the inbound payload for the notification flow.
// Binding rejects malformed ids and unknown kinds before any side effect.
type SendBookingEmailRequest struct {
	BookingID string `json:"bookingId" binding:"required,uuid"`
	Kind      string `json:"notificationKind" binding:"required,oneof=confirmation reminder_24h reminder_1h cancellation reschedule"`
}

// SendBookingEmailResult is returned after a successful dispatch
type SendBookingEmailResult struct {
	ProviderMessageID string `json:"providerMessageId"`
	SentTo            string `json:"sentTo"`
	Kind              string `json:"notificationKind"`
}

// NotificationUsecase runs the validate/read/render/dispatch/log sequence
type NotificationUsecase interface {
	SendBookingEmail(ctx context.Context, req *SendBookingEmailRequest) (*SendBookingEmailResult, error)
}
