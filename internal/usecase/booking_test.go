package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/internal/usecase"
	"go-consulting-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingUC(bookings *MockBookingRepo, services *MockServiceRepo, discounts *MockDiscountRepo, analytics *MockAnalyticsSink) domain.BookingUsecase {
	return usecase.NewBookingUsecase(bookings, services, discounts, analytics)
}

func serviceType() *domain.ServiceType {
	return &domain.ServiceType{
		ID:              "svc-1",
		Slug:            "auditoria-growth",
		Name:            "Auditoria de Growth",
		DurationMinutes: 60,
		PriceCents:      50000,
		IsActive:        true,
	}
}

func createRequest() *domain.CreateBookingRequest {
	return &domain.CreateBookingRequest{
		ServiceTypeID: "svc-1",
		ScheduledDate: "2026-09-15",
		ScheduledTime: "10:00",
		Qualification: domain.QualificationData{
			Challenge:          "high_cpa",
			Budget:             "5k_to_10k",
			Urgency:            "within_week",
			HasWebsite:         true,
			HasActiveCampaigns: true,
			CompanySize:        "small",
		},
		Participant: domain.ParticipantInfo{
			Name:  "Carlos Mota",
			Email: "Carlos@Empresa.com",
		},
	}
}

func TestCreateBooking(t *testing.T) {
	bookings := new(MockBookingRepo)
	services := new(MockServiceRepo)
	discounts := new(MockDiscountRepo)
	analytics := new(MockAnalyticsSink)
	uc := newBookingUC(bookings, services, discounts, analytics)

	services.On("GetActiveByID", mock.Anything, "svc-1").Return(serviceType(), nil)
	bookings.On("HasActiveConflict", mock.Anything, "svc-1", "2026-09-15", "10:00").Return(false, nil)

	var savedQualification *domain.QualificationResponse
	bookings.On("CreateQualification", mock.Anything, mock.AnythingOfType("*domain.QualificationResponse")).
		Return(nil).
		Run(func(args mock.Arguments) {
			savedQualification = args.Get(1).(*domain.QualificationResponse)
			savedQualification.ID = "qual-1"
		})

	var savedBooking *domain.Booking
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(nil).
		Run(func(args mock.Arguments) {
			savedBooking = args.Get(1).(*domain.Booking)
			savedBooking.ID = "book-1"
		})
	logged := expectAnalytics(analytics, nil)

	summary, err := uc.Create(context.Background(), "user-1", createRequest())

	require.NoError(t, err)
	assert.Equal(t, "book-1", summary.ID)
	assert.Equal(t, "Auditoria de Growth", summary.Service.Name)
	assert.Equal(t, 500.0, summary.Service.OriginalPrice)
	assert.Equal(t, 500.0, summary.Service.FinalPrice)
	assert.Equal(t, domain.BookingPendingPayment, summary.Status)
	assert.Nil(t, summary.Discount)

	require.NotNil(t, savedQualification)
	// 30 (budget) + 20 (urgency) + 20 (challenge) + 5 + 5 + 7 (small)
	assert.Equal(t, 87, savedQualification.LeadQualityScore)
	assert.Equal(t, "completed", savedQualification.Status)

	require.NotNil(t, savedBooking)
	assert.Equal(t, "user-1", savedBooking.UserID)
	assert.Equal(t, "America/Sao_Paulo", savedBooking.Timezone)
	require.NotNil(t, savedBooking.QualificationID)
	assert.Equal(t, "qual-1", *savedBooking.QualificationID)
	require.NotNil(t, savedBooking.ParticipantEmail)
	assert.Equal(t, "carlos@empresa.com", *savedBooking.ParticipantEmail)

	ev := waitForEvent(t, logged)
	assert.Equal(t, domain.EventBookingCreated, ev.EventType)
	assert.Equal(t, "book-1", ev.EventData["booking_id"])

	discounts.AssertNotCalled(t, "GetActiveByCode")
}

func TestCreateBookingSlotConflict(t *testing.T) {
	bookings := new(MockBookingRepo)
	services := new(MockServiceRepo)
	discounts := new(MockDiscountRepo)
	analytics := new(MockAnalyticsSink)
	uc := newBookingUC(bookings, services, discounts, analytics)

	services.On("GetActiveByID", mock.Anything, "svc-1").Return(serviceType(), nil)
	bookings.On("HasActiveConflict", mock.Anything, "svc-1", "2026-09-15", "10:00").Return(true, nil)

	_, err := uc.Create(context.Background(), "user-1", createRequest())

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "Time slot not available", appErr.Message)

	bookings.AssertNotCalled(t, "Create")
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	bookings := new(MockBookingRepo)
	services := new(MockServiceRepo)
	discounts := new(MockDiscountRepo)
	analytics := new(MockAnalyticsSink)
	uc := newBookingUC(bookings, services, discounts, analytics)

	services.On("GetActiveByID", mock.Anything, "svc-1").Return(nil, domain.ErrNotFound)

	_, err := uc.Create(context.Background(), "user-1", createRequest())

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreateBookingWithDiscount(t *testing.T) {
	t.Run("percentage code reduces the final amount", func(t *testing.T) {
		bookings := new(MockBookingRepo)
		services := new(MockServiceRepo)
		discounts := new(MockDiscountRepo)
		analytics := new(MockAnalyticsSink)
		uc := newBookingUC(bookings, services, discounts, analytics)

		services.On("GetActiveByID", mock.Anything, "svc-1").Return(serviceType(), nil)
		bookings.On("HasActiveConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		bookings.On("CreateQualification", mock.Anything, mock.Anything).Return(nil)
		bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
		expectAnalytics(analytics, nil)

		code := &domain.DiscountCode{
			ID:            "disc-1",
			Code:          "PROMO20",
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: 20,
			IsActive:      true,
			ValidFrom:     time.Now().Add(-time.Hour),
		}
		discounts.On("GetActiveByCode", mock.Anything, "PROMO20").Return(code, nil)
		discounts.On("IncrementUse", mock.Anything, "disc-1").Return(nil)

		req := createRequest()
		req.DiscountCode = "PROMO20"

		summary, err := uc.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		assert.Equal(t, 500.0, summary.Service.OriginalPrice)
		assert.Equal(t, 400.0, summary.Service.FinalPrice)
		require.NotNil(t, summary.Discount)
		assert.Equal(t, "PROMO20", summary.Discount.Code)
		assert.Equal(t, 100.0, summary.Discount.Saved)
		discounts.AssertCalled(t, "IncrementUse", mock.Anything, "disc-1")
	})

	t.Run("expired code is skipped, booking proceeds at full price", func(t *testing.T) {
		bookings := new(MockBookingRepo)
		services := new(MockServiceRepo)
		discounts := new(MockDiscountRepo)
		analytics := new(MockAnalyticsSink)
		uc := newBookingUC(bookings, services, discounts, analytics)

		services.On("GetActiveByID", mock.Anything, "svc-1").Return(serviceType(), nil)
		bookings.On("HasActiveConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		bookings.On("CreateQualification", mock.Anything, mock.Anything).Return(nil)
		bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
		expectAnalytics(analytics, nil)

		expired := time.Now().Add(-time.Hour)
		code := &domain.DiscountCode{
			ID:            "disc-2",
			Code:          "OLD",
			DiscountType:  domain.DiscountFixed,
			DiscountValue: 1000,
			IsActive:      true,
			ValidFrom:     time.Now().Add(-48 * time.Hour),
			ValidUntil:    &expired,
		}
		discounts.On("GetActiveByCode", mock.Anything, "OLD").Return(code, nil)

		req := createRequest()
		req.DiscountCode = "OLD"

		summary, err := uc.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		assert.Equal(t, 500.0, summary.Service.FinalPrice)
		assert.Nil(t, summary.Discount)
		discounts.AssertNotCalled(t, "IncrementUse")
	})

	t.Run("unknown code is skipped, booking proceeds at full price", func(t *testing.T) {
		bookings := new(MockBookingRepo)
		services := new(MockServiceRepo)
		discounts := new(MockDiscountRepo)
		analytics := new(MockAnalyticsSink)
		uc := newBookingUC(bookings, services, discounts, analytics)

		services.On("GetActiveByID", mock.Anything, "svc-1").Return(serviceType(), nil)
		bookings.On("HasActiveConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		bookings.On("CreateQualification", mock.Anything, mock.Anything).Return(nil)
		bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
		expectAnalytics(analytics, nil)
		discounts.On("GetActiveByCode", mock.Anything, "NOPE").Return(nil, domain.ErrNotFound)

		req := createRequest()
		req.DiscountCode = "NOPE"

		summary, err := uc.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		assert.Equal(t, 500.0, summary.Service.FinalPrice)
		assert.Nil(t, summary.Discount)
		discounts.AssertNotCalled(t, "IncrementUse")
	})
}

func TestListBookings(t *testing.T) {
	bookings := new(MockBookingRepo)
	services := new(MockServiceRepo)
	discounts := new(MockDiscountRepo)
	analytics := new(MockAnalyticsSink)
	uc := newBookingUC(bookings, services, discounts, analytics)

	t.Run("clamps limit to the default", func(t *testing.T) {
		bookings.On("ListByUser", mock.Anything, "user-1", "", 10, 0).
			Return([]domain.BookingDetail{}, int64(0), nil).Once()

		page, err := uc.ListByUser(context.Background(), "user-1", "", 0, -5)

		require.NoError(t, err)
		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, 0, page.Offset)
		assert.False(t, page.HasMore)
		assert.NotNil(t, page.Bookings)
	})

	t.Run("reports hasMore from total", func(t *testing.T) {
		details := make([]domain.BookingDetail, 10)
		bookings.On("ListByUser", mock.Anything, "user-1", "confirmed", 10, 0).
			Return(details, int64(25), nil).Once()

		page, err := uc.ListByUser(context.Background(), "user-1", "confirmed", 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(25), page.Total)
		assert.True(t, page.HasMore)
	})
}
