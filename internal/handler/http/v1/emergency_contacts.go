package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get emergency contacts
// @Description Get all emergency contacts, defaults first, then alphabetical by name.
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Success 200 {array} EmergencyContactResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-contacts [get]
func (h *Handler) listEmergencyContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencyContacts")

	contacts, err := h.contactService.ListContacts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list emergency contacts from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch emergency contacts"})
		return
	}

	c.JSON(http.StatusOK, ModelsToEmergencyContactResponses(contacts))
}

// @Summary Get emergency contact by ID
// @Description Get a single emergency contact by its ID.
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} EmergencyContactResponse
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-contacts/{id} [get]
func (h *Handler) getEmergencyContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "getEmergencyContact").WithField("id", id)

	contact, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "Emergency contact not found", "failed to fetch emergency contact")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyContactResponse(contact))
}

// @Summary Create a new emergency contact
// @Description Create a new emergency contact.
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Param contact body CreateEmergencyContactRequest true "Contact creation request"
// @Success 201 {object} EmergencyContactResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-contacts [post]
func (h *Handler) createEmergencyContact(c *gin.Context) {
	var input CreateEmergencyContactRequest
	log := h.logger.WithField("method", "createEmergencyContact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid contact data", err)
		return
	}

	model := CreateEmergencyContactRequestToModel(input)
	if err := h.contactService.CreateContact(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create emergency contact in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to create emergency contact"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyContactResponse(model))
}

// @Summary Update an existing emergency contact
// @Description Apply a partial update to an emergency contact by ID.
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param contact body UpdateEmergencyContactRequest true "Contact update request"
// @Success 200 {object} EmergencyContactResponse
// @Failure 400 {object} ErrorResponse "Invalid contact ID or request body"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-contacts/{id} [patch]
func (h *Handler) updateEmergencyContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "updateEmergencyContact").WithField("id", id)

	var input UpdateEmergencyContactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, "invalid contact data", err)
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), id, UpdateEmergencyContactRequestToPatch(input))
	if err != nil {
		respondServiceError(c, log, err, "Emergency contact not found", "failed to update emergency contact")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyContactResponse(contact))
}

// @Summary Delete an emergency contact
// @Description Delete an emergency contact by its ID.
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-contacts/{id} [delete]
func (h *Handler) deleteEmergencyContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "deleteEmergencyContact").WithField("id", id)

	deleted, err := h.contactService.DeleteContact(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to delete emergency contact in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to delete emergency contact"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Emergency contact not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
