package domain

import (
	"context"
	"time"
)

// Booking lifecycle statuses
const (
	BookingPendingPayment = "pending_payment"
	BookingConfirmed      = "confirmed"
	BookingCompleted      = "completed"
	BookingCancelled      = "cancelled"
	BookingNoShow         = "no_show"
)

// Booking represents a scheduled consulting session
type Booking struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	ServiceTypeID       string     `json:"service_type_id"`
	QualificationID     *string    `json:"qualification_id,omitempty"`
	ScheduledDate       string     `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime       string     `json:"scheduled_time"` // HH:MM or HH:MM:SS
	DurationMinutes     int        `json:"duration_minutes"`
	Timezone            string     `json:"timezone"`
	BookingStatus       string     `json:"booking_status"`
	PaymentStatus       string     `json:"payment_status"`
	AmountCents         int        `json:"amount_cents"`
	DiscountCode        *string    `json:"discount_code,omitempty"`
	DiscountAmountCents int        `json:"discount_amount_cents"`
	FinalAmountCents    int        `json:"final_amount_cents"`
	ParticipantName     *string    `json:"participant_name,omitempty"`
	ParticipantEmail    *string    `json:"participant_email,omitempty"`
	ParticipantPhone    *string    `json:"participant_phone,omitempty"`
	ParticipantCompany  *string    `json:"participant_company,omitempty"`
	MeetingURL          *string    `json:"meeting_url,omitempty"`
	CancellationReason  *string    `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// ServiceType describes a bookable consulting offering
type ServiceType struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
	IsActive        bool   `json:"is_active"`
}

// ContactProfile is the registered profile linked to a booking's user
type ContactProfile struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// BookingDetail is the fully joined view the notification flow reads in a
// single round trip: booking + service type + contact profile.
type BookingDetail struct {
	Booking
	Service ServiceType    `json:"service"`
	Profile ContactProfile `json:"profile"`
}

// RecipientEmail resolves the effective recipient address. A participant
// supplied address takes precedence over the profile address; empty string
// means no usable address exists.
func (b *BookingDetail) RecipientEmail() string {
	if b.ParticipantEmail != nil && *b.ParticipantEmail != "" {
		return *b.ParticipantEmail
	}
	if b.Profile.Email != nil {
		return *b.Profile.Email
	}
	return ""
}

// RecipientName resolves the display name with the same precedence,
// falling back to a generic salutation.
func (b *BookingDetail) RecipientName() string {
	if b.ParticipantName != nil && *b.ParticipantName != "" {
		return *b.ParticipantName
	}
	if b.Profile.FullName != nil && *b.Profile.FullName != "" {
		return *b.Profile.FullName
	}
	return "Cliente"
}

// QualificationData captures the pre-booking qualification answers
type QualificationData struct {
	Challenge          string `json:"challenge" binding:"required"`
	Budget             string `json:"budget" binding:"required"`
	Urgency            string `json:"urgency" binding:"required"`
	HasWebsite         bool   `json:"hasWebsite"`
	HasActiveCampaigns bool   `json:"hasActiveCampaigns"`
	CompanyName        string `json:"companyName"`
	CompanySize        string `json:"companySize"`
	AdditionalNotes    string `json:"additionalNotes"`
}

// QualificationResponse is the persisted qualification record
type QualificationResponse struct {
	ID               string
	UserID           string
	SessionID        string
	QualificationData
	LeadQualityScore int
	RecommendedID    string
	Status           string
}

// ParticipantInfo identifies the person attending the session
type ParticipantInfo struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,valid_phone"`
	Company string `json:"company" binding:"omitempty,max=100"`
}

// CreateBookingRequest is the input for booking creation
type CreateBookingRequest struct {
	ServiceTypeID string            `json:"serviceTypeId" binding:"required,uuid"`
	ScheduledDate string            `json:"scheduledDate" binding:"required,datetime=2006-01-02"`
	ScheduledTime string            `json:"scheduledTime" binding:"required,valid_clock"`
	Qualification QualificationData `json:"qualificationData" binding:"required"`
	DiscountCode  string            `json:"discountCode" binding:"omitempty,max=40"`
	Participant   ParticipantInfo   `json:"participantInfo" binding:"required"`
}

// BookingSummary is the creation response payload
type BookingSummary struct {
	ID       string              `json:"id"`
	Service  BookingServiceInfo  `json:"consultoria"`
	Schedule BookingScheduleInfo `json:"schedule"`
	Status   string              `json:"status"`
	Discount *AppliedDiscount    `json:"discount"`
}

type BookingServiceInfo struct {
	Name          string  `json:"name"`
	Duration      int     `json:"duration"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
}

type BookingScheduleInfo struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type AppliedDiscount struct {
	Code  string  `json:"code"`
	Type  string  `json:"type"`
	Saved float64 `json:"saved"`
}

// BookingPage is the pagination envelope for listings
type BookingPage struct {
	Bookings []BookingDetail `json:"bookings"`
	Total    int64           `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
	HasMore  bool            `json:"hasMore"`
}

// BookingRepository accesses bookings and their reference data
type BookingRepository interface {
	// GetDetailByID returns the joined view or ErrNotFound
	GetDetailByID(ctx context.Context, id string) (*BookingDetail, error)
	// HasActiveConflict reports whether a confirmed or pending booking
	// already occupies the service/date/time slot
	HasActiveConflict(ctx context.Context, serviceTypeID, date, clock string) (bool, error)
	Create(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]BookingDetail, int64, error)
	CreateQualification(ctx context.Context, q *QualificationResponse) error
}

// ServiceRepository reads consulting service descriptors
type ServiceRepository interface {
	// GetActiveByID returns the service or ErrNotFound when missing/inactive
	GetActiveByID(ctx context.Context, id string) (*ServiceType, error)
}

// BookingUsecase drives booking creation and listing
type BookingUsecase interface {
	Create(ctx context.Context, userID string, req *CreateBookingRequest) (*BookingSummary, error)
	ListByUser(ctx context.Context, userID, status string, limit, offset int) (*BookingPage, error)
}
