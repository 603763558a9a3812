package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks собирает моки всех сервисов, которые принимает Handler
type testMocks struct {
	alerts    *mocks.MockAlertService
	guides    *mocks.MockSafetyGuideService
	contacts  *mocks.MockEmergencyContactService
	settings  *mocks.MockUserSettingsService
	emergency *mocks.MockEmergencyService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		alerts:    mocks.NewMockAlertService(ctrl),
		guides:    mocks.NewMockSafetyGuideService(ctrl),
		contacts:  mocks.NewMockEmergencyContactService(ctrl),
		settings:  mocks.NewMockUserSettingsService(ctrl),
		emergency: mocks.NewMockEmergencyService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(m.alerts, m.guides, m.contacts, m.settings, m.emergency, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAlertEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateAlertRequest{
		Title:       "Flash Flood Warning",
		Description: "River levels rising rapidly",
		Severity:    "warning",
		Type:        "flood",
		Location:    "Riverside District",
	}

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = 11
			a.Timestamp = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, reqBody.Title, resp.Title)
	// isActive не передан — по умолчанию true
	assert.True(t, resp.IsActive)
}

func TestCreateAlertEndpoint_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/alerts", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateAlertEndpoint_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateAlertRequest{ // Отсутствует Title, серьезность вне списка
		Description: "Description",
		Severity:    "catastrophic",
		Type:        "fire",
		Location:    "Somewhere",
	}

	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "invalid alert data", resp.Message)
	require.Len(t, resp.Errors, 2)
	// Поля названы по json-тегу, как их видит клиент
	assert.Equal(t, "title", resp.Errors[0].Field)
	assert.Equal(t, "field is required", resp.Errors[0].Message)
	assert.Equal(t, "severity", resp.Errors[1].Field)
	assert.Equal(t, "must be one of: critical warning watch info", resp.Errors[1].Message)
}

func TestGetAlertEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	expectedAlert := &models.Alert{
		ID:       42,
		Title:    "Wildfire Alert",
		Severity: models.SeverityCritical,
		IsActive: true,
	}

	m.alerts.EXPECT().GetAlert(gomock.Any(), int64(42)).Return(expectedAlert, nil).Times(1)

	w := makeRequest(router, "GET", "/api/alerts/42", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, expectedAlert.Title, resp.Title)
}

func TestGetAlertEndpoint_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().GetAlert(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/alerts/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid alert ID")
}

func TestGetAlertEndpoint_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not get alert: %w", models.ErrNotFound)

	m.alerts.EXPECT().GetAlert(gomock.Any(), int64(999999)).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/alerts/999999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Alert not found", resp.Message)
}

func TestGetAlertEndpoint_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)
	serviceError := errors.New("database error")

	m.alerts.EXPECT().GetAlert(gomock.Any(), int64(42)).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/alerts/42", nil)

	// Ошибка без сентинела ErrNotFound — 500, не 404
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to fetch alert")
}

func TestListActiveAlertsEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	expectedAlerts := []*models.Alert{
		{ID: 3, Title: "Critical first", Severity: models.SeverityCritical, IsActive: true},
		{ID: 1, Title: "Info last", Severity: models.SeverityInfo, IsActive: true},
	}

	m.alerts.EXPECT().ListActiveAlerts(gomock.Any()).Return(expectedAlerts, nil).Times(1)

	w := makeRequest(router, "GET", "/api/alerts/active", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	// Порядок сервиса сохраняется как есть
	assert.Equal(t, int64(3), resp[0].ID)
	assert.Equal(t, int64(1), resp[1].ID)
}

func TestUpdateAlertEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	updatedAlert := &models.Alert{
		ID:       5,
		Title:    "Downgraded",
		Severity: models.SeverityInfo,
		IsActive: false,
	}

	m.alerts.EXPECT().
		UpdateAlert(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch *models.AlertPatch) (*models.Alert, error) {
			// В патч попадают только переданные поля
			require.NotNil(t, patch.IsActive)
			assert.False(t, *patch.IsActive)
			require.NotNil(t, patch.Severity)
			assert.Equal(t, models.SeverityInfo, *patch.Severity)
			assert.Nil(t, patch.Title)
			return updatedAlert, nil
		}).Times(1)

	w := makeRequest(router, "PATCH", "/api/alerts/5", bytes.NewBufferString(`{"isActive": false, "severity": "info"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.False(t, resp.IsActive)
}

func TestUpdateAlertEndpoint_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not update alert: %w", models.ErrNotFound)

	m.alerts.EXPECT().UpdateAlert(gomock.Any(), int64(404), gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "PATCH", "/api/alerts/404", bytes.NewBufferString(`{"title": "whatever"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Alert not found")
}

func TestDeleteAlertEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().DeleteAlert(gomock.Any(), int64(5)).Return(true, nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/alerts/5", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteAlertEndpoint_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	// Репозиторий сообщает "нечего удалять" через false, не через ошибку
	m.alerts.EXPECT().DeleteAlert(gomock.Any(), int64(999999)).Return(false, nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/alerts/999999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Alert not found")
}

func TestListSafetyGuidesEndpoint_All(t *testing.T) {
	m, router := newTestHandler(t)
	expectedGuides := []*models.SafetyGuide{
		{ID: 1, Title: "Earthquake Safety", Category: "earthquake", Priority: 1},
		{ID: 2, Title: "Flood Safety", Category: "flood", Priority: 2},
	}

	// Без query-параметра категория пустая
	m.guides.EXPECT().ListSafetyGuides(gomock.Any(), "").Return(expectedGuides, nil).Times(1)

	w := makeRequest(router, "GET", "/api/safety-guides", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SafetyGuideResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestListSafetyGuidesEndpoint_ByCategory(t *testing.T) {
	m, router := newTestHandler(t)
	expectedGuides := []*models.SafetyGuide{
		{ID: 1, Title: "Earthquake Safety", Category: "earthquake", Priority: 1},
	}

	m.guides.EXPECT().ListSafetyGuides(gomock.Any(), "earthquake").Return(expectedGuides, nil).Times(1)

	w := makeRequest(router, "GET", "/api/safety-guides?category=earthquake", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SafetyGuideResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "earthquake", resp[0].Category)
}

func TestCreateSafetyGuideEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateSafetyGuideRequest{
		Title:       "Tornado Safety",
		Description: "What to do during a tornado",
		Category:    "tornado",
		Content:     "Seek shelter in a basement or interior room.",
	}

	m.guides.EXPECT().
		CreateSafetyGuide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.SafetyGuide) error {
			g.ID = 4
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/safety-guides", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SafetyGuideResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	// Приоритет не передан — по умолчанию 0
	assert.Equal(t, 0, resp.Priority)
}

func TestCreateEmergencyContactEndpoint_InvalidType(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateEmergencyContactRequest{
		Name:  "City Hotline",
		Phone: "112",
		Type:  "hotline", // Вне допустимого списка
	}

	m.contacts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergency-contacts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be one of: emergency medical personal")
}

func TestDeleteEmergencyContactEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.contacts.EXPECT().DeleteContact(gomock.Any(), int64(3)).Return(true, nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/emergency-contacts/3", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetSettingsEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	location := "Portland"
	expectedSettings := &models.UserSettings{
		ID:                   models.UserSettingsID,
		Location:             &location,
		NotificationsEnabled: true,
	}

	m.settings.EXPECT().GetSettings(gomock.Any()).Return(expectedSettings, nil).Times(1)

	w := makeRequest(router, "GET", "/api/settings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserSettingsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.UserSettingsID, resp.ID)
	require.NotNil(t, resp.Location)
	assert.Equal(t, location, *resp.Location)
}

func TestGetSettingsEndpoint_NeverSaved(t *testing.T) {
	m, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not get user settings: %w", models.ErrNotFound)

	m.settings.EXPECT().GetSettings(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/settings", nil)

	// Строки еще нет — это 200 с null, а не 404
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestUpdateSettingsEndpoint_FirstCallDefaults(t *testing.T) {
	m, router := newTestHandler(t)
	expectedSettings := &models.UserSettings{
		ID:                   models.UserSettingsID,
		NotificationsEnabled: false, // Переданное значение
		DarkMode:             false, // Значение по умолчанию
	}

	m.settings.EXPECT().
		UpdateSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch *models.UserSettingsPatch) (*models.UserSettings, error) {
			require.NotNil(t, patch.NotificationsEnabled)
			assert.False(t, *patch.NotificationsEnabled)
			assert.Nil(t, patch.DarkMode)
			return expectedSettings, nil
		}).Times(1)

	w := makeRequest(router, "PATCH", "/api/settings", bytes.NewBufferString(`{"notificationsEnabled": false}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserSettingsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.UserSettingsID, resp.ID)
	assert.False(t, resp.NotificationsEnabled)
	assert.False(t, resp.DarkMode)
}

func TestEmergencyCheckInEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	referenceID := uuid.New()

	m.emergency.EXPECT().CheckIn(gomock.Any()).Return(referenceID, nil).Times(1)

	w := makeRequest(router, "POST", "/api/emergency/check-in", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyActionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Check-in sent successfully", resp.Message)
	assert.Equal(t, referenceID.String(), resp.ReferenceID)
}

func TestEmergencyReportEndpoint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	referenceID := uuid.New()
	reqBody := ReportIncidentRequest{
		Type:        "fire",
		Description: "Smoke visible from highway",
		Location:    "Industrial district",
	}

	m.emergency.EXPECT().
		ReportIncident(gomock.Any(), reqBody.Type, reqBody.Description, reqBody.Location, nil, nil).
		Return(referenceID, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergency/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyActionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Incident reported successfully", resp.Message)
	assert.Equal(t, referenceID.String(), resp.ReferenceID)
}

func TestEmergencyReportEndpoint_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)
	serviceError := errors.New("publisher unavailable")

	m.emergency.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, serviceError).
		Times(1)

	w := makeRequest(router, "POST", "/api/emergency/report", bytes.NewBufferString(`{"type": "fire"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to report incident")
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
