package models

// ContactType - тип экстренного контакта
type ContactType string

const (
	ContactTypeEmergency ContactType = "emergency"
	ContactTypeMedical   ContactType = "medical"
	ContactTypePersonal  ContactType = "personal"
)

// EmergencyContact представляет экстренный контакт пользователя
type EmergencyContact struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Type        ContactType `json:"type"`
	Description *string     `json:"description"`
	IsDefault   bool        `json:"isDefault"`
}

// EmergencyContactPatch - частичное обновление контакта
type EmergencyContactPatch struct {
	Name        *string
	Phone       *string
	Type        *ContactType
	Description *string
	IsDefault   *bool
}
