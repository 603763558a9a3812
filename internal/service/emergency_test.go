package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_alert_system/internal/webhook"
	webhook_mocks "github.com/shenikar/disaster_alert_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEmergencyService(t *testing.T) (EmergencyService, *webhook_mocks.MockEmergencyEventPublisher) {
	ctrl := gomock.NewController(t)
	publisherMock := webhook_mocks.NewMockEmergencyEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewEmergencyService(publisherMock, logger)
	return service, publisherMock
}

func TestCheckIn_PublishesEvent(t *testing.T) {
	// Подготовка
	service, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.EmergencyEvent) {
			assert.Equal(t, webhook.EventKindCheckIn, event.Kind)
			assert.NotEqual(t, uuid.Nil, event.ReferenceID)
			assert.False(t, event.Timestamp.IsZero())
		}).Return(nil).Times(1)

	// Действие
	referenceID, err := service.CheckIn(ctx)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, referenceID)
}

func TestCheckIn_PublishFailureStillSucceeds(t *testing.T) {
	// Подготовка
	service, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	// Очередь недоступна — клиент все равно получает подтверждение
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis недоступен")).
		Times(1)

	// Действие
	referenceID, err := service.CheckIn(ctx)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, referenceID)
}

func TestReportIncident_PublishesEvent(t *testing.T) {
	// Подготовка
	service, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()
	lat, lon := "48.4827", "135.0838"

	// Ожидания
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.EmergencyEvent) {
			assert.Equal(t, webhook.EventKindIncidentReport, event.Kind)
			assert.Equal(t, "fire", event.Type)
			assert.Equal(t, "Возгорание на складе", event.Description)
			assert.Equal(t, "Промзона", event.Location)
			require.NotNil(t, event.Latitude)
			assert.Equal(t, lat, *event.Latitude)
			require.NotNil(t, event.Longitude)
			assert.Equal(t, lon, *event.Longitude)
		}).Return(nil).Times(1)

	// Действие
	referenceID, err := service.ReportIncident(ctx, "fire", "Возгорание на складе", "Промзона", &lat, &lon)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, referenceID)
}

func TestReportIncident_UniqueReferenceIDs(t *testing.T) {
	// Подготовка
	service, publisherMock := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	first, err := service.ReportIncident(ctx, "flood", "", "", nil, nil)
	require.NoError(t, err)
	second, err := service.ReportIncident(ctx, "flood", "", "", nil, nil)
	require.NoError(t, err)

	// Проверки
	assert.NotEqual(t, first, second)
}
