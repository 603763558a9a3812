package models

// UserSettingsID - фиксированный первичный ключ единственной строки настроек.
// Уникальность ключа закрывает гонку "двойной вставки" при конкурентном upsert.
const UserSettingsID int64 = 1

// UserSettings представляет настройки пользователя (в бд не более одной строки)
type UserSettings struct {
	ID                   int64   `json:"id"`
	Location             *string `json:"location"`
	Latitude             *string `json:"latitude"`
	Longitude            *string `json:"longitude"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
	DarkMode             bool    `json:"darkMode"`
	EmergencyContactID   *int64  `json:"emergencyContactId"`
}

// UserSettingsPatch - частичное обновление настроек. При отсутствии строки
// непереданные поля заполняются значениями по умолчанию:
// notificationsEnabled=true, darkMode=false, остальные NULL.
type UserSettingsPatch struct {
	Location             *string
	Latitude             *string
	Longitude            *string
	NotificationsEnabled *bool
	DarkMode             *bool
	EmergencyContactID   *int64
}
