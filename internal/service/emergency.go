package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_alert_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EmergencyService определяет контракт для экстренных действий пользователя.
// Действия не пишут в бд: событие ставится в очередь вебхуков, а клиент
// сразу получает подтверждение с референсным id.
type EmergencyService interface {
	CheckIn(ctx context.Context) (uuid.UUID, error)
	ReportIncident(ctx context.Context, incidentType, description, location string, latitude, longitude *string) (uuid.UUID, error)
}

type emergencyService struct {
	publisher webhook.EmergencyEventPublisher
	logger    *logrus.Logger
}

func NewEmergencyService(publisher webhook.EmergencyEventPublisher, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		publisher: publisher,
		logger:    logger,
	}
}

// CheckIn ставит в очередь событие "я в безопасности".
// Сбой публикации не считается ошибкой запроса: подтверждение уходит всегда.
func (s *emergencyService) CheckIn(ctx context.Context) (uuid.UUID, error) {
	referenceID := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "CheckIn",
		"reference_id": referenceID,
	})
	log.Info("Processing emergency check-in")

	event := webhook.EmergencyEvent{
		Kind:        webhook.EventKindCheckIn,
		ReferenceID: referenceID,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish check-in event")
	}

	return referenceID, nil
}

// ReportIncident ставит в очередь сообщение об инциденте от пользователя
func (s *emergencyService) ReportIncident(ctx context.Context, incidentType, description, location string, latitude, longitude *string) (uuid.UUID, error) {
	referenceID := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service":       "emergency",
		"method":        "ReportIncident",
		"reference_id":  referenceID,
		"incident_type": incidentType,
	})
	log.Info("Processing incident report")

	event := webhook.EmergencyEvent{
		Kind:        webhook.EventKindIncidentReport,
		ReferenceID: referenceID,
		Type:        incidentType,
		Description: description,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident report event")
	}

	return referenceID, nil
}
