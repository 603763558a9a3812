package service

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// EmergencyContactRepository определяет контракт для работы с бд контактов
type EmergencyContactRepository interface {
	Create(ctx context.Context, contact *models.EmergencyContact) error
	GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error)
	ListAll(ctx context.Context) ([]*models.EmergencyContact, error)
	Update(ctx context.Context, id int64, patch *models.EmergencyContactPatch) (*models.EmergencyContact, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EmergencyContactService определяет контракт для бизнес-логики контактов
type EmergencyContactService interface {
	CreateContact(ctx context.Context, contact *models.EmergencyContact) error
	GetContact(ctx context.Context, id int64) (*models.EmergencyContact, error)
	ListContacts(ctx context.Context) ([]*models.EmergencyContact, error)
	UpdateContact(ctx context.Context, id int64, patch *models.EmergencyContactPatch) (*models.EmergencyContact, error)
	DeleteContact(ctx context.Context, id int64) (bool, error)
}

type emergencyContactService struct {
	repo   EmergencyContactRepository
	logger *logrus.Logger
}

func NewEmergencyContactService(repo EmergencyContactRepository, logger *logrus.Logger) EmergencyContactService {
	return &emergencyContactService{
		repo:   repo,
		logger: logger,
	}
}

// CreateContact создает экстренный контакт
func (s *emergencyContactService) CreateContact(ctx context.Context, contact *models.EmergencyContact) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency_contact",
		"method":  "CreateContact",
		"name":    contact.Name,
	})
	log.Info("Attempting to create a new emergency contact")

	if err := s.repo.Create(ctx, contact); err != nil {
		log.WithError(err).Error("Failed to create emergency contact in repository")
		return fmt.Errorf("service: could not create emergency contact: %w", err)
	}

	log.WithField("contact_id", contact.ID).Info("Emergency contact created successfully")
	return nil
}

// GetContact получает контакт по ID
func (s *emergencyContactService) GetContact(ctx context.Context, id int64) (*models.EmergencyContact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency_contact",
		"method":     "GetContact",
		"contact_id": id,
	})
	log.Info("Fetching emergency contact by ID")

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency contact from repository")
		return nil, fmt.Errorf("service: could not get emergency contact: %w", err)
	}

	log.Info("Emergency contact fetched successfully")
	return contact, nil
}

// ListContacts возвращает контакты: дефолтные первыми, далее по алфавиту
func (s *emergencyContactService) ListContacts(ctx context.Context) ([]*models.EmergencyContact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency_contact",
		"method":  "ListContacts",
	})
	log.Info("Listing emergency contacts")

	contacts, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list emergency contacts from repository")
		return nil, fmt.Errorf("service: could not list emergency contacts: %w", err)
	}

	log.WithField("count", len(contacts)).Info("Emergency contacts listed successfully")
	return contacts, nil
}

// UpdateContact применяет частичное обновление к контакту
func (s *emergencyContactService) UpdateContact(ctx context.Context, id int64, patch *models.EmergencyContactPatch) (*models.EmergencyContact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency_contact",
		"method":     "UpdateContact",
		"contact_id": id,
	})
	log.Info("Attempting to update emergency contact")

	contact, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update emergency contact in repository")
		return nil, fmt.Errorf("service: could not update emergency contact: %w", err)
	}

	log.Info("Emergency contact updated successfully")
	return contact, nil
}

// DeleteContact удаляет контакт, возвращает false если записи не было
func (s *emergencyContactService) DeleteContact(ctx context.Context, id int64) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency_contact",
		"method":     "DeleteContact",
		"contact_id": id,
	})
	log.Info("Attempting to delete emergency contact")

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete emergency contact in repository")
		return false, fmt.Errorf("service: could not delete emergency contact: %w", err)
	}

	log.WithField("deleted", deleted).Info("Emergency contact delete completed")
	return deleted, nil
}
