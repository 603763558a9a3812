package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления алертами (CRUD + выборка действующих)
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/active", h.listActiveAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("", h.createAlert)
		alerts.PATCH("/:id", h.updateAlert)
		alerts.DELETE("/:id", h.deleteAlert)
	}

	// Инструкции по безопасности: update/delete нет намеренно,
	// гайды создаются один раз и дальше только читаются
	guides := api.Group("/safety-guides")
	{
		guides.GET("", h.listSafetyGuides)
		guides.GET("/:id", h.getSafetyGuide)
		guides.POST("", h.createSafetyGuide)
	}

	// Экстренные контакты (CRUD)
	contacts := api.Group("/emergency-contacts")
	{
		contacts.GET("", h.listEmergencyContacts)
		contacts.GET("/:id", h.getEmergencyContact)
		contacts.POST("", h.createEmergencyContact)
		contacts.PATCH("/:id", h.updateEmergencyContact)
		contacts.DELETE("/:id", h.deleteEmergencyContact)
	}

	// Настройки пользователя (единственная строка, upsert на PATCH)
	api.GET("/settings", h.getSettings)
	api.PATCH("/settings", h.updateSettings)

	// Экстренные действия
	api.POST("/emergency/check-in", h.emergencyCheckIn)
	api.POST("/emergency/report", h.emergencyReport)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
