package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-consulting-backend/internal/delivery/http/middleware"
	v1 "go-consulting-backend/internal/delivery/http/v1"
	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

type MockNotificationUC struct {
	mock.Mock
}

func (m *MockNotificationUC) SendBookingEmail(ctx context.Context, req *domain.SendBookingEmailRequest) (*domain.SendBookingEmailResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SendBookingEmailResult), args.Error(1)
}

func setupRouter(uc domain.NotificationUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewNotificationHandler(r.Group("/v1"), uc)
	return r
}

func postNotification(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotificationEndpointSuccess(t *testing.T) {
	uc := new(MockNotificationUC)
	uc.On("SendBookingEmail", mock.Anything, mock.AnythingOfType("*domain.SendBookingEmailRequest")).
		Return(&domain.SendBookingEmailResult{
			ProviderMessageID: "msg-123",
			SentTo:            "maria@example.com",
			Kind:              "confirmation",
		}, nil)

	w := postNotification(setupRouter(uc),
		`{"bookingId":"b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b","notificationKind":"confirmation"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "msg-123", body["providerMessageId"])
	assert.Equal(t, "maria@example.com", body["sentTo"])
	assert.Equal(t, "confirmation", body["notificationKind"])
}

func TestNotificationEndpointValidation(t *testing.T) {
	uc := new(MockNotificationUC)
	r := setupRouter(uc)

	t.Run("missing fields are all enumerated", func(t *testing.T) {
		w := postNotification(r, `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid request data", body["error"])

		details, ok := body["details"].([]interface{})
		require.True(t, ok)
		assert.Len(t, details, 2)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		w := postNotification(r,
			`{"bookingId":"b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b","notificationKind":"welcome"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		w := postNotification(r, `{`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	uc.AssertNotCalled(t, "SendBookingEmail")
}

func TestNotificationEndpointErrors(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		uc := new(MockNotificationUC)
		uc.On("SendBookingEmail", mock.Anything, mock.Anything).
			Return(nil, apperror.NotFound("not found"))

		w := postNotification(setupRouter(uc),
			`{"bookingId":"b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b","notificationKind":"confirmation"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
	})

	t.Run("no recipient address", func(t *testing.T) {
		uc := new(MockNotificationUC)
		uc.On("SendBookingEmail", mock.Anything, mock.Anything).
			Return(nil, apperror.BadRequest("no recipient address"))

		w := postNotification(setupRouter(uc),
			`{"bookingId":"b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b","notificationKind":"confirmation"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"no recipient address"}`, w.Body.String())
	})

	t.Run("provider failure carries details", func(t *testing.T) {
		uc := new(MockNotificationUC)
		uc.On("SendBookingEmail", mock.Anything, mock.Anything).
			Return(nil, apperror.New(http.StatusInternalServerError, "failed to send email", nil).
				WithDetails(map[string]string{"provider": "rate limited"}))

		w := postNotification(setupRouter(uc),
			`{"bookingId":"b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b","notificationKind":"confirmation"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "failed to send email", body["error"])
		providerDetails, ok := body["providerDetails"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "rate limited", providerDetails["provider"])
	})
}
