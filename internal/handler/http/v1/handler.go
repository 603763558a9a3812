package v1

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService    service.AlertService
	guideService    service.SafetyGuideService
	contactService  service.EmergencyContactService
	settingsService service.UserSettingsService
	emergency       service.EmergencyService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(
	alertService service.AlertService,
	guideService service.SafetyGuideService,
	contactService service.EmergencyContactService,
	settingsService service.UserSettingsService,
	emergency service.EmergencyService,
	logger *logrus.Logger,
) *Handler {
	validate := validator.New()
	// В ошибках валидации поля называются по json-тегу, как их видит клиент
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		alertService:    alertService,
		guideService:    guideService,
		contactService:  contactService,
		settingsService: settingsService,
		emergency:       emergency,
		logger:          logger,
		validate:        validate,
	}
}

// parseID разбирает целочисленный path-параметр id
func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// respondValidationError отдает 400 со структурированным списком ошибок полей
func respondValidationError(c *gin.Context, message string, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
		return
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldErr.Field(),
			Message: validationMessage(fieldErr),
		})
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Errors: fieldErrors})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "min":
		return "must not be empty"
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return "failed validation: " + fieldErr.Tag()
	}
}

// respondServiceError отображает ошибку сервиса в 404 или 500
func respondServiceError(c *gin.Context, log *logrus.Entry, err error, notFoundMessage, internalMessage string) {
	if errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Warn("Requested record not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Message: notFoundMessage})
		return
	}
	log.WithError(err).Error("Unexpected service failure")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: internalMessage})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
