package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/innovators-conclave/backend/pkg/logger"
)

func (h *Handler) initEmailRoutes(api *gin.RouterGroup) {
	api.POST("/send-email", h.sendEmail)
}

// @Summary Send brochure email
// @Tags Email
// @Description Sends the welcome email with the event brochure attached
// @Accept json
// @Produce json
// @Param input body emailOnlyRequest true "recipient"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /send-email [post]
func (h *Handler) sendEmail(c *gin.Context) {
	var req emailOnlyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.services.Emails.SendWelcomeEmail(c.Request.Context(), req.Email); err != nil {
		logger.Error("welcome email send failed", zap.Error(err), zap.String("email", req.Email))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to send email")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Email sent successfully"})
}
