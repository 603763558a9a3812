package service

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SafetyGuideRepository определяет контракт для работы с бд инструкций.
// Обновления и удаления нет: гайды заводятся один раз и не редактируются.
type SafetyGuideRepository interface {
	Create(ctx context.Context, guide *models.SafetyGuide) error
	GetByID(ctx context.Context, id int64) (*models.SafetyGuide, error)
	ListAll(ctx context.Context) ([]*models.SafetyGuide, error)
	ListByCategory(ctx context.Context, category string) ([]*models.SafetyGuide, error)
}

// SafetyGuideService определяет контракт для бизнес-логики инструкций
type SafetyGuideService interface {
	CreateSafetyGuide(ctx context.Context, guide *models.SafetyGuide) error
	GetSafetyGuide(ctx context.Context, id int64) (*models.SafetyGuide, error)
	ListSafetyGuides(ctx context.Context, category string) ([]*models.SafetyGuide, error)
}

type safetyGuideService struct {
	repo   SafetyGuideRepository
	logger *logrus.Logger
}

func NewSafetyGuideService(repo SafetyGuideRepository, logger *logrus.Logger) SafetyGuideService {
	return &safetyGuideService{
		repo:   repo,
		logger: logger,
	}
}

// CreateSafetyGuide создает инструкцию
func (s *safetyGuideService) CreateSafetyGuide(ctx context.Context, guide *models.SafetyGuide) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safety_guide",
		"method":   "CreateSafetyGuide",
		"title":    guide.Title,
		"category": guide.Category,
	})
	log.Info("Attempting to create a new safety guide")

	if err := s.repo.Create(ctx, guide); err != nil {
		log.WithError(err).Error("Failed to create safety guide in repository")
		return fmt.Errorf("service: could not create safety guide: %w", err)
	}

	log.WithField("guide_id", guide.ID).Info("Safety guide created successfully")
	return nil
}

// GetSafetyGuide получает инструкцию по ID
func (s *safetyGuideService) GetSafetyGuide(ctx context.Context, id int64) (*models.SafetyGuide, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safety_guide",
		"method":   "GetSafetyGuide",
		"guide_id": id,
	})
	log.Info("Fetching safety guide by ID")

	guide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get safety guide from repository")
		return nil, fmt.Errorf("service: could not get safety guide: %w", err)
	}

	log.Info("Safety guide fetched successfully")
	return guide, nil
}

// ListSafetyGuides возвращает инструкции по возрастанию приоритета.
// Непустая category ограничивает выборку точным совпадением категории.
func (s *safetyGuideService) ListSafetyGuides(ctx context.Context, category string) ([]*models.SafetyGuide, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safety_guide",
		"method":   "ListSafetyGuides",
		"category": category,
	})
	log.Info("Listing safety guides")

	var guides []*models.SafetyGuide
	var err error
	if category != "" {
		guides, err = s.repo.ListByCategory(ctx, category)
	} else {
		guides, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list safety guides from repository")
		return nil, fmt.Errorf("service: could not list safety guides: %w", err)
	}

	log.WithField("count", len(guides)).Info("Safety guides listed successfully")
	return guides, nil
}
