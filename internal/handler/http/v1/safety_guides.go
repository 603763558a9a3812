package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get safety guides
// @Description Get safety guides ordered by ascending priority, optionally filtered by exact category.
// @Tags SafetyGuides
// @Accept json
// @Produce json
// @Param category query string false "Category filter (exact match)"
// @Success 200 {array} SafetyGuideResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /safety-guides [get]
func (h *Handler) listSafetyGuides(c *gin.Context) {
	log := h.logger.WithField("method", "listSafetyGuides")
	category := c.Query("category")

	guides, err := h.guideService.ListSafetyGuides(c.Request.Context(), category)
	if err != nil {
		log.WithError(err).Error("Failed to list safety guides from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch safety guides"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSafetyGuideResponses(guides))
}

// @Summary Get safety guide by ID
// @Description Get a single safety guide by its ID.
// @Tags SafetyGuides
// @Accept json
// @Produce json
// @Param id path int true "Safety guide ID"
// @Success 200 {object} SafetyGuideResponse
// @Failure 400 {object} ErrorResponse "Invalid safety guide ID"
// @Failure 404 {object} ErrorResponse "Safety guide not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /safety-guides/{id} [get]
func (h *Handler) getSafetyGuide(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid safety guide ID"})
		return
	}
	log := h.logger.WithField("method", "getSafetyGuide").WithField("id", id)

	guide, err := h.guideService.GetSafetyGuide(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "Safety guide not found", "failed to fetch safety guide")
		return
	}
	c.JSON(http.StatusOK, ModelToSafetyGuideResponse(guide))
}

// @Summary Create a new safety guide
// @Description Create a new safety guide. Guides are immutable after creation.
// @Tags SafetyGuides
// @Accept json
// @Produce json
// @Param guide body CreateSafetyGuideRequest true "Safety guide creation request"
// @Success 201 {object} SafetyGuideResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /safety-guides [post]
func (h *Handler) createSafetyGuide(c *gin.Context) {
	var input CreateSafetyGuideRequest
	log := h.logger.WithField("method", "createSafetyGuide")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid safety guide data", err)
		return
	}

	model := CreateSafetyGuideRequestToModel(input)
	if err := h.guideService.CreateSafetyGuide(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create safety guide in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to create safety guide"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSafetyGuideResponse(model))
}
