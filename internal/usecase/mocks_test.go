package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/email"
	"go-consulting-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetDetailByID(ctx context.Context, id string) (*domain.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) HasActiveConflict(ctx context.Context, serviceTypeID, date, clock string) (bool, error) {
	args := m.Called(ctx, serviceTypeID, date, clock)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.BookingDetail, int64, error) {
	args := m.Called(ctx, userID, status, limit, offset)
	var details []domain.BookingDetail
	if args.Get(0) != nil {
		details = args.Get(0).([]domain.BookingDetail)
	}
	return details, args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepo) CreateQualification(ctx context.Context, q *domain.QualificationResponse) error {
	return m.Called(ctx, q).Error(0)
}

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) GetActiveByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

type MockLeadRepo struct {
	mock.Mock
}

func (m *MockLeadRepo) Insert(ctx context.Context, lead *domain.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockLeadRepo) UpdateScore(ctx context.Context, id string, score int) error {
	return m.Called(ctx, id, score).Error(0)
}

func (m *MockLeadRepo) GetCampaign(ctx context.Context, id, slug string) (*domain.Campaign, error) {
	args := m.Called(ctx, id, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockLeadRepo) IncrementCampaignLeads(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockDiscountRepo struct {
	mock.Mock
}

func (m *MockDiscountRepo) GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountCode), args.Error(1)
}

func (m *MockDiscountRepo) IncrementUse(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAnalyticsSink struct {
	mock.Mock
}

func (m *MockAnalyticsSink) Insert(ctx context.Context, event *domain.AnalyticsEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}
