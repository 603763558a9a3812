package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service"
)

const emergencyContactColumns = `
	id,
	name,
	phone,
	type,
	description,
	is_default`

type EmergencyContactRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyContactRepository(db *pgxpool.Pool) service.EmergencyContactRepository {
	return &EmergencyContactRepository{db: db}
}

func scanEmergencyContact(row pgx.Row) (*models.EmergencyContact, error) {
	contact := &models.EmergencyContact{}
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Phone,
		&contact.Type,
		&contact.Description,
		&contact.IsDefault,
	)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// Create создает новый экстренный контакт в бд
func (r *EmergencyContactRepository) Create(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		INSERT INTO emergency_contacts (name, phone, type, description, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		contact.Name,
		contact.Phone,
		contact.Type,
		contact.Description,
		contact.IsDefault,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("failed to create emergency contact: %w", err)
	}
	return nil
}

// GetByID возвращает контакт по его id или models.ErrNotFound
func (r *EmergencyContactRepository) GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error) {
	query := fmt.Sprintf(`SELECT %s FROM emergency_contacts WHERE id = $1;`, emergencyContactColumns)
	contact, err := scanEmergencyContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency contact with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency contact by id: %w", err)
	}
	return contact, nil
}

// ListAll возвращает все контакты: сначала контакты по умолчанию,
// внутри каждой группы - по алфавиту (вторичный ключ для стабильности порядка)
func (r *EmergencyContactRepository) ListAll(ctx context.Context) ([]*models.EmergencyContact, error) {
	query := fmt.Sprintf(`SELECT %s FROM emergency_contacts ORDER BY is_default DESC, name ASC;`, emergencyContactColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.EmergencyContact, 0)
	for rows.Next() {
		contact, err := scanEmergencyContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return contacts, nil
}

// Update применяет частичный патч к контакту и возвращает обновленную запись
func (r *EmergencyContactRepository) Update(ctx context.Context, id int64, patch *models.EmergencyContactPatch) (*models.EmergencyContact, error) {
	set := make([]string, 0)
	args := make([]any, 0)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.IsDefault != nil {
		add("is_default", *patch.IsDefault)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE emergency_contacts SET %s WHERE id = $%d RETURNING %s;`,
		strings.Join(set, ", "), len(args), emergencyContactColumns)

	contact, err := scanEmergencyContact(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency contact with id %d not found for update: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update emergency contact: %w", err)
	}
	return contact, nil
}

// Delete удаляет контакт и сообщает, была ли удалена строка
func (r *EmergencyContactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergency_contacts WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete emergency contact: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
