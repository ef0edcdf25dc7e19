package mail

// Kind enumerates the booking email categories
type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindReminder24h  Kind = "reminder_24h"
	KindReminder1h   Kind = "reminder_1h"
	KindCancellation Kind = "cancellation"
	KindReschedule   Kind = "reschedule"
)

// ParseKind maps a wire value to a Kind
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindConfirmation, KindReminder24h, KindReminder1h, KindCancellation, KindReschedule:
		return Kind(s), true
	}
	return "", false
}

// Session holds the fields every booking email interpolates
type Session struct {
	RecipientName   string
	ServiceName     string
	FormattedDate   string
	FormattedTime   string
	DurationMinutes int
}

// Message is the closed set of booking emails. Each variant carries only the
// supplementary fields its template needs; Render is a total match over the
// set and rejects anything else.
type Message interface {
	kind() Kind
}

// Confirmation is sent right after a booking is confirmed
type Confirmation struct {
	Session
	BookingRef      string // short id shown in the details card
	ConfirmationURL string
	ContactEmail    string
}

// Reminder is sent ahead of the session; HoursUntil selects the urgency
// treatment (1 = short lead, 24 = long lead)
type Reminder struct {
	Session
	HoursUntil int
	MeetingURL string
}

// Cancellation is sent when a booking is cancelled
type Cancellation struct {
	Session
	Reason string
}

// Reschedule is sent when a booking moves to a new slot
type Reschedule struct {
	Session
	ConfirmationURL string
}

func (Confirmation) kind() Kind { return KindConfirmation }
func (Cancellation) kind() Kind { return KindCancellation }
func (Reschedule) kind() Kind   { return KindReschedule }

func (r Reminder) kind() Kind {
	if r.HoursUntil == 1 {
		return KindReminder1h
	}
	return KindReminder24h
}
