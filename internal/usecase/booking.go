package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/metrics"
)

const defaultTimezone = "America/Sao_Paulo"

type bookingUsecase struct {
	bookings  domain.BookingRepository
	services  domain.ServiceRepository
	discounts domain.DiscountRepository
	analytics domain.AnalyticsSink
}

// NewBookingUsecase wires booking creation and listing
func NewBookingUsecase(
	bookings domain.BookingRepository,
	services domain.ServiceRepository,
	discounts domain.DiscountRepository,
	analytics domain.AnalyticsSink,
) domain.BookingUsecase {
	return &bookingUsecase{
		bookings:  bookings,
		services:  services,
		discounts: discounts,
		analytics: analytics,
	}
}

func (uc *bookingUsecase) Create(ctx context.Context, userID string, req *domain.CreateBookingRequest) (*domain.BookingSummary, error) {
	service, err := uc.services.GetActiveByID(ctx, req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("service type not found")
		}
		return nil, apperror.New(500, "failed to load service type", err)
	}

	conflict, err := uc.bookings.HasActiveConflict(ctx, req.ServiceTypeID, req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return nil, apperror.New(500, "failed to check availability", err)
	}
	if conflict {
		return nil, apperror.Conflict("Time slot not available")
	}

	price := service.PriceCents
	var (
		applied        *domain.DiscountCode
		discountAmount int
	)
	if req.DiscountCode != "" {
		applied, discountAmount = uc.resolveDiscount(ctx, req.DiscountCode, service.ID, price)
	}
	finalAmount := price - discountAmount

	qualification := &domain.QualificationResponse{
		UserID:            userID,
		QualificationData: req.Qualification,
		LeadQualityScore:  qualityScore(&req.Qualification),
		RecommendedID:     service.ID,
		Status:            "completed",
	}
	if err := uc.bookings.CreateQualification(ctx, qualification); err != nil {
		return nil, apperror.New(500, "failed to save qualification", err)
	}

	status := domain.BookingPendingPayment
	paymentStatus := "pending"
	if finalAmount == 0 {
		status = domain.BookingConfirmed
		paymentStatus = "not_required"
	}

	booking := &domain.Booking{
		UserID:              userID,
		ServiceTypeID:       service.ID,
		QualificationID:     &qualification.ID,
		ScheduledDate:       req.ScheduledDate,
		ScheduledTime:       req.ScheduledTime,
		DurationMinutes:     service.DurationMinutes,
		Timezone:            defaultTimezone,
		BookingStatus:       status,
		PaymentStatus:       paymentStatus,
		AmountCents:         price,
		DiscountAmountCents: discountAmount,
		FinalAmountCents:    finalAmount,
		ParticipantName:     optional(req.Participant.Name),
		ParticipantEmail:    optional(strings.ToLower(req.Participant.Email)),
		ParticipantPhone:    optional(req.Participant.Phone),
		ParticipantCompany:  optional(req.Participant.Company),
	}
	if applied != nil {
		booking.DiscountCode = &applied.Code
	}

	if err := uc.bookings.Create(ctx, booking); err != nil {
		return nil, apperror.New(500, "failed to create booking", fmt.Errorf("insert booking: %w", err))
	}

	if applied != nil {
		if err := uc.discounts.IncrementUse(ctx, applied.ID); err != nil {
			logger.Log.Warn("failed to bump discount usage", "code", applied.Code, "error", err)
		}
	}

	uc.trackCreation(booking, service, userID)
	metrics.BookingsCreated.Inc()

	summary := &domain.BookingSummary{
		ID: booking.ID,
		Service: domain.BookingServiceInfo{
			Name:          service.Name,
			Duration:      service.DurationMinutes,
			OriginalPrice: float64(price) / 100,
			FinalPrice:    float64(finalAmount) / 100,
		},
		Schedule: domain.BookingScheduleInfo{
			Date: booking.ScheduledDate,
			Time: booking.ScheduledTime,
		},
		Status: booking.BookingStatus,
	}
	if applied != nil {
		summary.Discount = &domain.AppliedDiscount{
			Code:  applied.Code,
			Type:  applied.DiscountType,
			Saved: float64(discountAmount) / 100,
		}
	}
	return summary, nil
}

// resolveDiscount applies the code when it checks out. An unknown,
// expired, or inapplicable code never blocks the booking; it is skipped
// and the session is charged at full price.
func (uc *bookingUsecase) resolveDiscount(ctx context.Context, code, serviceTypeID string, priceCents int) (*domain.DiscountCode, int) {
	discount, err := uc.discounts.GetActiveByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Log.Warn("discount lookup failed", "code", code, "error", err)
		}
		return nil, 0
	}
	if !discount.ValidFor(serviceTypeID, priceCents, time.Now().UTC()) {
		return nil, 0
	}
	return discount, discount.Apply(priceCents)
}

func (uc *bookingUsecase) trackCreation(booking *domain.Booking, service *domain.ServiceType, userID string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("analytics logging panicked", "panic", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.analytics.Insert(ctx, &domain.AnalyticsEvent{
			EventType: domain.EventBookingCreated,
			UserID:    &userID,
			EventData: map[string]interface{}{
				"booking_id":     booking.ID,
				"service_type":   service.Slug,
				"scheduled_date": booking.ScheduledDate,
				"scheduled_time": booking.ScheduledTime,
				"amount_cents":   booking.FinalAmountCents,
				"has_discount":   booking.DiscountCode != nil,
			},
		}); err != nil {
			logger.Log.Warn("failed to record analytics event",
				"event", domain.EventBookingCreated, "booking_id", booking.ID, "error", err)
		}
	}()
}

func (uc *bookingUsecase) ListByUser(ctx context.Context, userID, status string, limit, offset int) (*domain.BookingPage, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	bookings, total, err := uc.bookings.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, apperror.New(500, "failed to list bookings", err)
	}
	if bookings == nil {
		bookings = []domain.BookingDetail{}
	}

	return &domain.BookingPage{
		Bookings: bookings,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
		HasMore:  int64(offset+len(bookings)) < total,
	}, nil
}
