package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Emergency check-in
// @Description Queue a "I'm safe" check-in event for emergency contacts.
// @Tags Emergency
// @Accept json
// @Produce json
// @Success 200 {object} EmergencyActionResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency/check-in [post]
func (h *Handler) emergencyCheckIn(c *gin.Context) {
	log := h.logger.WithField("method", "emergencyCheckIn")

	referenceID, err := h.emergency.CheckIn(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to process check-in in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to send check-in"})
		return
	}

	c.JSON(http.StatusOK, EmergencyActionResponse{
		Message:     "Check-in sent successfully",
		ReferenceID: referenceID.String(),
	})
}

// @Summary Report an incident
// @Description Queue a user-submitted incident report event.
// @Tags Emergency
// @Accept json
// @Produce json
// @Param report body ReportIncidentRequest true "Incident report"
// @Success 200 {object} EmergencyActionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency/report [post]
func (h *Handler) emergencyReport(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "emergencyReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid report data", err)
		return
	}

	referenceID, err := h.emergency.ReportIncident(c.Request.Context(),
		input.Type, input.Description, input.Location, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to process incident report in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to report incident"})
		return
	}

	c.JSON(http.StatusOK, EmergencyActionResponse{
		Message:     "Incident reported successfully",
		ReferenceID: referenceID.String(),
	})
}
