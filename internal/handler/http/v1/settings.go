package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_alert_system/internal/models"
)

// @Summary Get user settings
// @Description Get the singleton user settings row. Returns null if settings were never saved.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} UserSettingsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	log := h.logger.WithField("method", "getSettings")

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		// Отсутствие строки настроек - не ошибка: клиент получает 200 с null
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.WithError(err).Error("Failed to get user settings from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch user settings"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserSettingsResponse(settings))
}

// @Summary Update user settings
// @Description Upsert the singleton user settings row: created with defaults on first call, patched in place afterwards.
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body UpdateUserSettingsRequest true "Settings update request"
// @Success 200 {object} UserSettingsResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [patch]
func (h *Handler) updateSettings(c *gin.Context) {
	var input UpdateUserSettingsRequest
	log := h.logger.WithField("method", "updateSettings")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid settings data", err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), UpdateUserSettingsRequestToPatch(input))
	if err != nil {
		log.WithError(err).Error("Failed to update user settings in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserSettingsResponse(settings))
}
