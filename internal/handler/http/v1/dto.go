package v1

import (
	"time"
)

// CreateAlertRequest DTO для создания алерта
// @Description DTO для создания алерта
type CreateAlertRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Severity    string     `json:"severity" validate:"required,oneof=critical warning watch info"`
	Type        string     `json:"type" validate:"required"`
	Location    string     `json:"location" validate:"required"`
	Latitude    *string    `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *string    `json:"longitude" validate:"omitempty,longitude"`
	IsActive    *bool      `json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	ImageURL    *string    `json:"imageUrl"`
	ActionURL   *string    `json:"actionUrl"`
}

// UpdateAlertRequest DTO для частичного обновления алерта.
// Нулевой указатель означает "поле не менять"; id и timestamp неизменяемы
// и в запросе не принимаются.
// @Description DTO для частичного обновления алерта
type UpdateAlertRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	Severity    *string    `json:"severity" validate:"omitempty,oneof=critical warning watch info"`
	Type        *string    `json:"type" validate:"omitempty,min=1"`
	Location    *string    `json:"location" validate:"omitempty,min=1"`
	Latitude    *string    `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *string    `json:"longitude" validate:"omitempty,longitude"`
	IsActive    *bool      `json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	ImageURL    *string    `json:"imageUrl"`
	ActionURL   *string    `json:"actionUrl"`
}

// AlertResponse DTO для ответа с информацией об алерте
// @Description DTO для ответа с информацией об алерте
type AlertResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Type        string     `json:"type"`
	Location    string     `json:"location"`
	Latitude    *string    `json:"latitude"`
	Longitude   *string    `json:"longitude"`
	IsActive    bool       `json:"isActive"`
	Timestamp   time.Time  `json:"timestamp"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	ImageURL    *string    `json:"imageUrl"`
	ActionURL   *string    `json:"actionUrl"`
}

// CreateSafetyGuideRequest DTO для создания инструкции по безопасности
// @Description DTO для создания инструкции по безопасности
type CreateSafetyGuideRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	ImageURL    *string `json:"imageUrl"`
	Priority    *int    `json:"priority"`
}

// SafetyGuideResponse DTO для ответа с инструкцией
// @Description DTO для ответа с инструкцией
type SafetyGuideResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"imageUrl"`
	Priority    int     `json:"priority"`
}

// CreateEmergencyContactRequest DTO для создания экстренного контакта
// @Description DTO для создания экстренного контакта
type CreateEmergencyContactRequest struct {
	Name        string  `json:"name" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=emergency medical personal"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"isDefault"`
}

// UpdateEmergencyContactRequest DTO для частичного обновления контакта
// @Description DTO для частичного обновления контакта
type UpdateEmergencyContactRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Phone       *string `json:"phone" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=emergency medical personal"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"isDefault"`
}

// EmergencyContactResponse DTO для ответа с контактом
// @Description DTO для ответа с контактом
type EmergencyContactResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	IsDefault   bool    `json:"isDefault"`
}

// UpdateUserSettingsRequest DTO для upsert настроек пользователя
// @Description DTO для upsert настроек пользователя
type UpdateUserSettingsRequest struct {
	Location             *string `json:"location"`
	Latitude             *string `json:"latitude" validate:"omitempty,latitude"`
	Longitude            *string `json:"longitude" validate:"omitempty,longitude"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	DarkMode             *bool   `json:"darkMode"`
	EmergencyContactID   *int64  `json:"emergencyContactId"`
}

// UserSettingsResponse DTO для ответа с настройками
// @Description DTO для ответа с настройками
type UserSettingsResponse struct {
	ID                   int64   `json:"id"`
	Location             *string `json:"location"`
	Latitude             *string `json:"latitude"`
	Longitude            *string `json:"longitude"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
	DarkMode             bool    `json:"darkMode"`
	EmergencyContactID   *int64  `json:"emergencyContactId"`
}

// ReportIncidentRequest DTO для сообщения об инциденте
// @Description DTO для сообщения об инциденте
type ReportIncidentRequest struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Latitude    *string `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *string `json:"longitude" validate:"omitempty,longitude"`
}

// EmergencyActionResponse DTO для подтверждения экстренного действия
// @Description DTO для подтверждения экстренного действия
type EmergencyActionResponse struct {
	Message     string `json:"message"`
	ReferenceID string `json:"referenceId"`
}

// FieldError - одна ошибка валидации поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse - общий ответ с ошибкой
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
