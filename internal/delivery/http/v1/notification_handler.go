package v1

import (
	"net/http"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

// NewNotificationHandler registers the booking notification routes
func NewNotificationHandler(public *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{
		notificationUC: notificationUC,
	}

	public.POST("/notifications/booking", handler.SendBookingEmail)
}

// SendBookingEmail godoc
// @Summary      Send Booking Notification Email
// @Description  Renders and dispatches a transactional email for a booking.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        notification  body      domain.SendBookingEmailRequest  true  "Notification Request"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /notifications/booking [post]
func (h *NotificationHandler) SendBookingEmail(c *gin.Context) {
	var req domain.SendBookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			c.Error(apperror.BadRequest("invalid request data").WithDetails(validation.FormatValidationErrors(verrs)))
			return
		}
		c.Error(apperror.BadRequest("invalid request data"))
		return
	}

	result, err := h.notificationUC.SendBookingEmail(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"providerMessageId": result.ProviderMessageID,
		"sentTo":            result.SentTo,
		"notificationKind":  result.Kind,
	})
}
