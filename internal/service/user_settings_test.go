package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSettingsService(t *testing.T) (UserSettingsService, *mocks.MockUserSettingsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserSettingsRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewUserSettingsService(repoMock, logger)
	return service, repoMock
}

func TestGetSettings_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserSettingsService(t)
	ctx := context.Background()
	location := "Хабаровск"
	expectedSettings := &models.UserSettings{
		ID:                   models.UserSettingsID,
		Location:             &location,
		NotificationsEnabled: true,
	}

	// Ожидания
	repoMock.EXPECT().Get(ctx).Return(expectedSettings, nil).Times(1)

	// Действие
	settings, err := service.GetSettings(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedSettings, settings)
}

func TestGetSettings_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserSettingsService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Get(ctx).
		Return(nil, fmt.Errorf("user settings: %w", models.ErrNotFound)).
		Times(1)

	// Действие
	settings, err := service.GetSettings(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, settings)
	// Хендлер различает "еще нет строки" по сентинелу
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateSettings_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserSettingsService(t)
	ctx := context.Background()
	notifications := false
	patch := &models.UserSettingsPatch{NotificationsEnabled: &notifications}
	expectedSettings := &models.UserSettings{
		ID:                   models.UserSettingsID,
		NotificationsEnabled: false,
		DarkMode:             false,
	}

	// Ожидания
	repoMock.EXPECT().Upsert(ctx, patch).Return(expectedSettings, nil).Times(1)

	// Действие
	settings, err := service.UpdateSettings(ctx, patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedSettings, settings)
}

func TestUpdateSettings_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserSettingsService(t)
	ctx := context.Background()
	patch := &models.UserSettingsPatch{}
	repoError := fmt.Errorf("бд недоступна")

	// Ожидания
	repoMock.EXPECT().Upsert(ctx, patch).Return(nil, repoError).Times(1)

	// Действие
	settings, err := service.UpdateSettings(ctx, patch)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, settings)
	assert.ErrorContains(t, err, "could not update user settings")
}
