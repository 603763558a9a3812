package service

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// UserSettingsRepository определяет контракт для работы с единственной
// строкой настроек пользователя
type UserSettingsRepository interface {
	Get(ctx context.Context) (*models.UserSettings, error)
	Upsert(ctx context.Context, patch *models.UserSettingsPatch) (*models.UserSettings, error)
}

// UserSettingsService определяет контракт для бизнес-логики настроек
type UserSettingsService interface {
	GetSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, patch *models.UserSettingsPatch) (*models.UserSettings, error)
}

type userSettingsService struct {
	repo   UserSettingsRepository
	logger *logrus.Logger
}

func NewUserSettingsService(repo UserSettingsRepository, logger *logrus.Logger) UserSettingsService {
	return &userSettingsService{
		repo:   repo,
		logger: logger,
	}
}

// GetSettings возвращает настройки или models.ErrNotFound, если их еще нет
func (s *userSettingsService) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user_settings",
		"method":  "GetSettings",
	})
	log.Info("Fetching user settings")

	settings, err := s.repo.Get(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to get user settings from repository")
		return nil, fmt.Errorf("service: could not get user settings: %w", err)
	}

	log.Info("User settings fetched successfully")
	return settings, nil
}

// UpdateSettings применяет upsert: создает строку с умолчаниями при первом
// обращении, иначе патчит существующую. Всегда возвращает итоговую запись.
func (s *userSettingsService) UpdateSettings(ctx context.Context, patch *models.UserSettingsPatch) (*models.UserSettings, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user_settings",
		"method":  "UpdateSettings",
	})
	log.Info("Attempting to update user settings")

	settings, err := s.repo.Upsert(ctx, patch)
	if err != nil {
		log.WithError(err).Error("Failed to upsert user settings in repository")
		return nil, fmt.Errorf("service: could not update user settings: %w", err)
	}

	log.Info("User settings updated successfully")
	return settings, nil
}
