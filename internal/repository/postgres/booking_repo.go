package postgres

import (
	"context"
	"errors"
	"time"

	"go-consulting-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingRepo struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) domain.BookingRepository {
	return &bookingRepo{db: db}
}

// GetDetailByID fetches the booking joined with its service type and the
// owner's contact profile in one round trip.
func (r *bookingRepo) GetDetailByID(ctx context.Context, id string) (*domain.BookingDetail, error) {
	query := `
		SELECT
			b.id, b.user_id, b.service_type_id, b.scheduled_date, b.scheduled_time,
			b.duration_minutes, b.timezone, b.booking_status, b.payment_status,
			b.amount_cents, b.discount_code, b.discount_amount_cents, b.final_amount_cents,
			b.participant_name, b.participant_email, b.participant_phone, b.participant_company,
			b.meeting_url, b.cancellation_reason, b.created_at,
			st.id, st.slug, st.name, COALESCE(st.description, ''), st.duration_minutes, st.price_cents, st.is_active,
			up.full_name, up.email, up.phone
		FROM bookings b
		JOIN service_types st ON b.service_type_id = st.id
		LEFT JOIN user_profiles up ON b.user_id = up.user_id
		WHERE b.id = $1`

	var d domain.BookingDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UserID, &d.ServiceTypeID, &d.ScheduledDate, &d.ScheduledTime,
		&d.DurationMinutes, &d.Timezone, &d.BookingStatus, &d.PaymentStatus,
		&d.AmountCents, &d.DiscountCode, &d.DiscountAmountCents, &d.FinalAmountCents,
		&d.ParticipantName, &d.ParticipantEmail, &d.ParticipantPhone, &d.ParticipantCompany,
		&d.MeetingURL, &d.CancellationReason, &d.CreatedAt,
		&d.Service.ID, &d.Service.Slug, &d.Service.Name, &d.Service.Description,
		&d.Service.DurationMinutes, &d.Service.PriceCents, &d.Service.IsActive,
		&d.Profile.FullName, &d.Profile.Email, &d.Profile.Phone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *bookingRepo) HasActiveConflict(ctx context.Context, serviceTypeID, date, clock string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE service_type_id = $1 AND scheduled_date = $2 AND scheduled_time = $3
			AND booking_status IN ('confirmed', 'pending_payment')
		)`
	var exists bool
	err := r.db.QueryRow(ctx, query, serviceTypeID, date, clock).Scan(&exists)
	return exists, err
}

func (r *bookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now().UTC()
	query := `
		INSERT INTO bookings (
			id, user_id, service_type_id, qualification_id,
			scheduled_date, scheduled_time, duration_minutes, timezone,
			booking_status, payment_status,
			amount_cents, discount_code, discount_amount_cents, final_amount_cents,
			participant_name, participant_email, participant_phone, participant_company,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.UserID, b.ServiceTypeID, b.QualificationID,
		b.ScheduledDate, b.ScheduledTime, b.DurationMinutes, b.Timezone,
		b.BookingStatus, b.PaymentStatus,
		b.AmountCents, b.DiscountCode, b.DiscountAmountCents, b.FinalAmountCents,
		b.ParticipantName, b.ParticipantEmail, b.ParticipantPhone, b.ParticipantCompany,
		b.CreatedAt,
	)
	return err
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.BookingDetail, int64, error) {
	query := `
		SELECT
			b.id, b.user_id, b.service_type_id, b.scheduled_date, b.scheduled_time,
			b.duration_minutes, b.timezone, b.booking_status, b.payment_status,
			b.amount_cents, b.discount_code, b.discount_amount_cents, b.final_amount_cents,
			b.participant_name, b.participant_email, b.participant_phone, b.participant_company,
			b.meeting_url, b.cancellation_reason, b.created_at,
			st.id, st.slug, st.name, COALESCE(st.description, ''), st.duration_minutes, st.price_cents, st.is_active
		FROM bookings b
		JOIN service_types st ON b.service_type_id = st.id
		WHERE b.user_id = $1 AND ($2 = '' OR b.booking_status = $2)
		ORDER BY b.scheduled_date DESC, b.scheduled_time DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.BookingDetail
	for rows.Next() {
		var d domain.BookingDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.ServiceTypeID, &d.ScheduledDate, &d.ScheduledTime,
			&d.DurationMinutes, &d.Timezone, &d.BookingStatus, &d.PaymentStatus,
			&d.AmountCents, &d.DiscountCode, &d.DiscountAmountCents, &d.FinalAmountCents,
			&d.ParticipantName, &d.ParticipantEmail, &d.ParticipantPhone, &d.ParticipantCompany,
			&d.MeetingURL, &d.CancellationReason, &d.CreatedAt,
			&d.Service.ID, &d.Service.Slug, &d.Service.Name, &d.Service.Description,
			&d.Service.DurationMinutes, &d.Service.PriceCents, &d.Service.IsActive,
		); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND ($2 = '' OR booking_status = $2)`
	if err := r.db.QueryRow(ctx, countQuery, userID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *bookingRepo) CreateQualification(ctx context.Context, q *domain.QualificationResponse) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.SessionID == "" {
		q.SessionID = uuid.NewString()
	}
	query := `
		INSERT INTO qualification_responses (
			id, user_id, session_id, primary_challenge, monthly_budget_range, urgency,
			has_existing_site, has_active_campaigns, company_name, company_size,
			additional_info, lead_quality_score, recommended_service_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		q.ID, q.UserID, q.SessionID, q.Challenge, q.Budget, q.Urgency,
		q.HasWebsite, q.HasActiveCampaigns, q.CompanyName, q.CompanySize,
		q.AdditionalNotes, q.LeadQualityScore, q.RecommendedID, q.Status,
	)
	return err
}
