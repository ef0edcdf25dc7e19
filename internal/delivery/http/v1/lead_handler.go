package v1

import (
	"net/http"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type LeadHandler struct {
	leadUC domain.LeadUsecase
}

// NewLeadHandler registers the lead capture routes (public, no auth required)
func NewLeadHandler(public *gin.RouterGroup, leadUC domain.LeadUsecase) {
	handler := &LeadHandler{
		leadUC: leadUC,
	}

	public.POST("/leads", handler.CaptureLead)
}

// CaptureLead godoc
// @Summary      Capture Landing Page Lead
// @Description  Persists a lead from a landing-page form and triggers follow-up emails.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      domain.LeadCaptureRequest  true  "Lead Form Data"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /leads [post]
func (h *LeadHandler) CaptureLead(c *gin.Context) {
	var req domain.LeadCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			c.Error(apperror.BadRequest("invalid request data").WithDetails(validation.FormatValidationErrors(verrs)))
			return
		}
		c.Error(apperror.BadRequest("invalid request data"))
		return
	}

	meta := domain.ClientMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	lead, err := h.leadUC.Capture(c.Request.Context(), &req, meta)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"leadId":  lead.ID,
		"message": "Recebemos seu interesse! Entraremos em contato em breve.",
	})
}
