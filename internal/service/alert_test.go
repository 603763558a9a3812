package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (AlertService, *mocks.MockAlertRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAlertService(repoMock, logger)
	return service, repoMock
}

func TestCreateAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	alertToCreate := &models.Alert{
		Title:    "Наводнение в низине",
		Severity: models.SeverityWarning,
		Type:     "flood",
		Location: "Прибрежный район",
		IsActive: true,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, alertToCreate).
		DoAndReturn(func(ctx context.Context, a *models.Alert) error {
			// Симулируем, что БД присвоила ID и метку времени
			a.ID = 7
			a.Timestamp = time.Now()
			return nil
		}).Times(1)

	// Действие
	err := service.CreateAlert(ctx, alertToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), alertToCreate.ID)
	assert.False(t, alertToCreate.Timestamp.IsZero())
}

func TestCreateAlert_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	alertToCreate := &models.Alert{Title: "Сломанный", Severity: models.SeverityInfo}
	repoError := fmt.Errorf("бд недоступна")

	// Ожидания
	repoMock.EXPECT().Create(ctx, alertToCreate).Return(repoError).Times(1)

	// Действие
	err := service.CreateAlert(ctx, alertToCreate)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestGetAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	expectedAlert := &models.Alert{
		ID:       42,
		Title:    "Лесной пожар",
		Severity: models.SeverityCritical,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(42)).Return(expectedAlert, nil).Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, 42)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedAlert, alert)
}

func TestGetAlert_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, int64(999999)).
		Return(nil, fmt.Errorf("alert 999999: %w", models.ErrNotFound)).
		Times(1)

	// Действие
	alert, err := service.GetAlert(ctx, 999999)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorContains(t, err, "could not get alert")
	// Сентинел должен быть доступен через цепочку оберток
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListAlerts_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	expectedAlerts := []*models.Alert{
		{ID: 2, Title: "Новый"},
		{ID: 1, Title: "Старый"},
	}

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(expectedAlerts, nil).Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedAlerts, alerts)
}

func TestListActiveAlerts_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	expectedAlerts := []*models.Alert{
		{ID: 3, Severity: models.SeverityCritical, IsActive: true},
		{ID: 1, Severity: models.SeverityInfo, IsActive: true},
	}

	// Ожидания
	repoMock.EXPECT().ListActive(ctx).Return(expectedAlerts, nil).Times(1)

	// Действие
	alerts, err := service.ListActiveAlerts(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedAlerts, alerts)
}

func TestListActiveAlerts_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	repoError := fmt.Errorf(`unknown alert severity "catastrophic"`)

	// Ожидания
	repoMock.EXPECT().ListActive(ctx).Return(nil, repoError).Times(1)

	// Действие
	alerts, err := service.ListActiveAlerts(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alerts)
	assert.ErrorContains(t, err, "could not list active alerts")
}

func TestUpdateAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	isActive := false
	patch := &models.AlertPatch{IsActive: &isActive}
	updatedAlert := &models.Alert{ID: 5, Title: "Погашенный", IsActive: false}

	// Ожидания
	repoMock.EXPECT().Update(ctx, int64(5), patch).Return(updatedAlert, nil).Times(1)

	// Действие
	alert, err := service.UpdateAlert(ctx, 5, patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updatedAlert, alert)
}

func TestUpdateAlert_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	patch := &models.AlertPatch{}

	// Ожидания
	repoMock.EXPECT().
		Update(ctx, int64(404), patch).
		Return(nil, fmt.Errorf("alert 404: %w", models.ErrNotFound)).
		Times(1)

	// Действие
	alert, err := service.UpdateAlert(ctx, 404, patch)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, int64(5)).Return(true, nil).Times(1)

	// Действие
	deleted, err := service.DeleteAlert(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteAlert_Missing(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	// Удаление отсутствующей записи — не ошибка, репозиторий возвращает false
	repoMock.EXPECT().Delete(ctx, int64(999999)).Return(false, nil).Times(1)

	// Действие
	deleted, err := service.DeleteAlert(ctx, 999999)

	// Проверки
	require.NoError(t, err)
	assert.False(t, deleted)
}
