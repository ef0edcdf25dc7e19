package v1

import (
	"net/http"
	"strconv"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type BookingHandler struct {
	bookingUC domain.BookingUsecase
}

// NewBookingHandler registers the booking routes (authentication required)
func NewBookingHandler(protected *gin.RouterGroup, bookingUC domain.BookingUsecase) {
	handler := &BookingHandler{
		bookingUC: bookingUC,
	}

	protected.POST("/bookings", handler.CreateBooking)
	protected.GET("/bookings", handler.ListBookings)
}

// CreateBooking godoc
// @Summary      Create Booking
// @Description  Schedules a consulting session for the authenticated user.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        booking  body      domain.CreateBookingRequest  true  "Booking Request"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("authentication required"))
		return
	}

	var req domain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			c.Error(apperror.BadRequest("invalid request data").WithDetails(validation.FormatValidationErrors(verrs)))
			return
		}
		c.Error(apperror.BadRequest("invalid request data"))
		return
	}

	summary, err := h.bookingUC.Create(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": summary,
	})
}

// ListBookings godoc
// @Summary      List Bookings
// @Description  Lists the authenticated user's bookings, newest first.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by booking status"
// @Param        limit   query     int     false  "Page size (default 10, max 50)"
// @Param        offset  query     int     false  "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("authentication required"))
		return
	}

	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.bookingUC.ListByUser(c.Request.Context(), userID, status, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": page.Bookings,
		"pagination": gin.H{
			"total":   page.Total,
			"limit":   page.Limit,
			"offset":  page.Offset,
			"hasMore": page.HasMore,
		},
	})
}
