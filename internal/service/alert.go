package service

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд алертов
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id int64) (*models.Alert, error)
	ListAll(ctx context.Context) ([]*models.Alert, error)
	ListActive(ctx context.Context) ([]*models.Alert, error)
	Update(ctx context.Context, id int64, patch *models.AlertPatch) (*models.Alert, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AlertService определяет контракт для бизнес-логики управления алертами
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlert(ctx context.Context, id int64) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]*models.Alert, error)
	ListActiveAlerts(ctx context.Context) ([]*models.Alert, error)
	UpdateAlert(ctx context.Context, id int64, patch *models.AlertPatch) (*models.Alert, error)
	DeleteAlert(ctx context.Context, id int64) (bool, error)
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		logger: logger,
	}
}

// CreateAlert создает алерт
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CreateAlert",
		"title":    alert.Title,
		"severity": alert.Severity,
	})
	log.Info("Attempting to create a new alert")

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// GetAlert получает алерт по ID
func (s *alertService) GetAlert(ctx context.Context, id int64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
	})
	log.Info("Fetching alert by ID")

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	log.Info("Alert fetched successfully")
	return alert, nil
}

// ListAlerts возвращает все алерты от новых к старым
func (s *alertService) ListAlerts(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAlerts",
	})
	log.Info("Listing alerts")

	alerts, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// ListActiveAlerts возвращает действующие алерты по рангу серьезности
func (s *alertService) ListActiveAlerts(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListActiveAlerts",
	})
	log.Info("Listing active alerts")

	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts from repository")
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Active alerts listed successfully")
	return alerts, nil
}

// UpdateAlert применяет частичное обновление к существующему алерту
func (s *alertService) UpdateAlert(ctx context.Context, id int64, patch *models.AlertPatch) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": id,
	})
	log.Info("Attempting to update alert")

	alert, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}

	log.Info("Alert updated successfully")
	return alert, nil
}

// DeleteAlert удаляет алерт, возвращает false если записи не было
func (s *alertService) DeleteAlert(ctx context.Context, id int64) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeleteAlert",
		"alert_id": id,
	})
	log.Info("Attempting to delete alert")

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete alert in repository")
		return false, fmt.Errorf("service: could not delete alert: %w", err)
	}

	log.WithField("deleted", deleted).Info("Alert delete completed")
	return deleted, nil
}
