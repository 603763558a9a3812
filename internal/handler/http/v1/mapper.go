package v1

import "github.com/shenikar/disaster_alert_system/internal/models"

// CreateAlertRequestToModel преобразует DTO создания в доменную модель.
// Непереданный isActive по умолчанию true.
func CreateAlertRequestToModel(dto CreateAlertRequest) *models.Alert {
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	return &models.Alert{
		Title:       dto.Title,
		Description: dto.Description,
		Severity:    models.AlertSeverity(dto.Severity),
		Type:        dto.Type,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		IsActive:    isActive,
		ExpiresAt:   dto.ExpiresAt,
		ImageURL:    dto.ImageURL,
		ActionURL:   dto.ActionURL,
	}
}

// UpdateAlertRequestToPatch преобразует DTO обновления в патч модели
func UpdateAlertRequestToPatch(dto UpdateAlertRequest) *models.AlertPatch {
	patch := &models.AlertPatch{
		Title:       dto.Title,
		Description: dto.Description,
		Type:        dto.Type,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		IsActive:    dto.IsActive,
		ExpiresAt:   dto.ExpiresAt,
		ImageURL:    dto.ImageURL,
		ActionURL:   dto.ActionURL,
	}
	if dto.Severity != nil {
		severity := models.AlertSeverity(*dto.Severity)
		patch.Severity = &severity
	}
	return patch
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Severity:    string(model.Severity),
		Type:        model.Type,
		Location:    model.Location,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		IsActive:    model.IsActive,
		Timestamp:   model.Timestamp,
		ExpiresAt:   model.ExpiresAt,
		ImageURL:    model.ImageURL,
		ActionURL:   model.ActionURL,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// CreateSafetyGuideRequestToModel преобразует DTO создания в доменную модель.
// Непереданный priority по умолчанию 0.
func CreateSafetyGuideRequestToModel(dto CreateSafetyGuideRequest) *models.SafetyGuide {
	priority := 0
	if dto.Priority != nil {
		priority = *dto.Priority
	}
	return &models.SafetyGuide{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Content:     dto.Content,
		ImageURL:    dto.ImageURL,
		Priority:    priority,
	}
}

// ModelToSafetyGuideResponse преобразует доменную модель в DTO для ответа
func ModelToSafetyGuideResponse(model *models.SafetyGuide) *SafetyGuideResponse {
	return &SafetyGuideResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Category:    model.Category,
		Content:     model.Content,
		ImageURL:    model.ImageURL,
		Priority:    model.Priority,
	}
}

// ModelsToSafetyGuideResponses преобразует слайс моделей в слайс DTO
func ModelsToSafetyGuideResponses(guides []*models.SafetyGuide) []*SafetyGuideResponse {
	responses := make([]*SafetyGuideResponse, len(guides))
	for i, guide := range guides {
		responses[i] = ModelToSafetyGuideResponse(guide)
	}
	return responses
}

// CreateEmergencyContactRequestToModel преобразует DTO создания в доменную модель
func CreateEmergencyContactRequestToModel(dto CreateEmergencyContactRequest) *models.EmergencyContact {
	isDefault := false
	if dto.IsDefault != nil {
		isDefault = *dto.IsDefault
	}
	return &models.EmergencyContact{
		Name:        dto.Name,
		Phone:       dto.Phone,
		Type:        models.ContactType(dto.Type),
		Description: dto.Description,
		IsDefault:   isDefault,
	}
}

// UpdateEmergencyContactRequestToPatch преобразует DTO обновления в патч модели
func UpdateEmergencyContactRequestToPatch(dto UpdateEmergencyContactRequest) *models.EmergencyContactPatch {
	patch := &models.EmergencyContactPatch{
		Name:        dto.Name,
		Phone:       dto.Phone,
		Description: dto.Description,
		IsDefault:   dto.IsDefault,
	}
	if dto.Type != nil {
		contactType := models.ContactType(*dto.Type)
		patch.Type = &contactType
	}
	return patch
}

// ModelToEmergencyContactResponse преобразует доменную модель в DTO для ответа
func ModelToEmergencyContactResponse(model *models.EmergencyContact) *EmergencyContactResponse {
	return &EmergencyContactResponse{
		ID:          model.ID,
		Name:        model.Name,
		Phone:       model.Phone,
		Type:        string(model.Type),
		Description: model.Description,
		IsDefault:   model.IsDefault,
	}
}

// ModelsToEmergencyContactResponses преобразует слайс моделей в слайс DTO
func ModelsToEmergencyContactResponses(contacts []*models.EmergencyContact) []*EmergencyContactResponse {
	responses := make([]*EmergencyContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ModelToEmergencyContactResponse(contact)
	}
	return responses
}

// UpdateUserSettingsRequestToPatch преобразует DTO настроек в патч модели
func UpdateUserSettingsRequestToPatch(dto UpdateUserSettingsRequest) *models.UserSettingsPatch {
	return &models.UserSettingsPatch{
		Location:             dto.Location,
		Latitude:             dto.Latitude,
		Longitude:            dto.Longitude,
		NotificationsEnabled: dto.NotificationsEnabled,
		DarkMode:             dto.DarkMode,
		EmergencyContactID:   dto.EmergencyContactID,
	}
}

// ModelToUserSettingsResponse преобразует доменную модель в DTO для ответа
func ModelToUserSettingsResponse(model *models.UserSettings) *UserSettingsResponse {
	return &UserSettingsResponse{
		ID:                   model.ID,
		Location:             model.Location,
		Latitude:             model.Latitude,
		Longitude:            model.Longitude,
		NotificationsEnabled: model.NotificationsEnabled,
		DarkMode:             model.DarkMode,
		EmergencyContactID:   model.EmergencyContactID,
	}
}
