package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new alert
// @Description Create a new hazard alert.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid alert data", err)
		return
	}

	model := CreateAlertRequestToModel(input)
	if err := h.alertService.CreateAlert(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create alert in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to create alert"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(model))
}

// @Summary Get all alerts
// @Description Get all alerts ordered newest first.
// @Tags Alerts
// @Accept json
// @Produce json
// @Success 200 {array} AlertResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.alertService.ListAlerts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get active alerts
// @Description Get effectively active alerts ordered by severity rank.
// @Tags Alerts
// @Accept json
// @Produce json
// @Success 200 {array} AlertResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/active [get]
func (h *Handler) listActiveAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveAlerts")

	alerts, err := h.alertService.ListActiveAlerts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch active alerts"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Invalid alert ID"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "Alert not found", "failed to fetch alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Update an existing alert
// @Description Apply a partial update to an alert by ID.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param alert body UpdateAlertRequest true "Alert update request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Invalid alert ID or request body"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{id} [patch]
func (h *Handler) updateAlert(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "updateAlert").WithField("id", id)

	var input UpdateAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid alert data", err)
		return
	}

	alert, err := h.alertService.UpdateAlert(c.Request.Context(), id, UpdateAlertRequestToPatch(input))
	if err != nil {
		respondServiceError(c, log, err, "Alert not found", "failed to update alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Delete an alert
// @Description Delete an alert by its ID.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid alert ID"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id)

	deleted, err := h.alertService.DeleteAlert(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to delete alert in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to delete alert"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Alert not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
