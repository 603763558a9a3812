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

const userSettingsColumns = `
	id,
	location,
	latitude,
	longitude,
	notifications_enabled,
	dark_mode,
	emergency_contact_id`

type UserSettingsRepository struct {
	db *pgxpool.Pool
}

func NewUserSettingsRepository(db *pgxpool.Pool) service.UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

func scanUserSettings(row pgx.Row) (*models.UserSettings, error) {
	settings := &models.UserSettings{}
	err := row.Scan(
		&settings.ID,
		&settings.Location,
		&settings.Latitude,
		&settings.Longitude,
		&settings.NotificationsEnabled,
		&settings.DarkMode,
		&settings.EmergencyContactID,
	)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Get возвращает единственную строку настроек или models.ErrNotFound,
// если настройки еще ни разу не сохранялись
func (r *UserSettingsRepository) Get(ctx context.Context) (*models.UserSettings, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_settings WHERE id = $1;`, userSettingsColumns)
	settings, err := scanUserSettings(r.db.QueryRow(ctx, query, models.UserSettingsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user settings: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings, nil
}

// Upsert сохраняет частичное обновление настроек одним запросом.
// При отсутствии строки она создается: непереданные поля получают значения
// по умолчанию. При наличии - обновляются только переданные поля.
// Фиксированный первичный ключ и ON CONFLICT закрывают гонку двойной вставки.
func (r *UserSettingsRepository) Upsert(ctx context.Context, patch *models.UserSettingsPatch) (*models.UserSettings, error) {
	// Значения для вставки: умолчания, перекрытые переданными полями
	location := patch.Location
	latitude := patch.Latitude
	longitude := patch.Longitude
	notifications := true
	if patch.NotificationsEnabled != nil {
		notifications = *patch.NotificationsEnabled
	}
	darkMode := false
	if patch.DarkMode != nil {
		darkMode = *patch.DarkMode
	}
	contactID := patch.EmergencyContactID

	// Обновляются только переданные поля
	set := make([]string, 0)
	if patch.Location != nil {
		set = append(set, "location = EXCLUDED.location")
	}
	if patch.Latitude != nil {
		set = append(set, "latitude = EXCLUDED.latitude")
	}
	if patch.Longitude != nil {
		set = append(set, "longitude = EXCLUDED.longitude")
	}
	if patch.NotificationsEnabled != nil {
		set = append(set, "notifications_enabled = EXCLUDED.notifications_enabled")
	}
	if patch.DarkMode != nil {
		set = append(set, "dark_mode = EXCLUDED.dark_mode")
	}
	if patch.EmergencyContactID != nil {
		set = append(set, "emergency_contact_id = EXCLUDED.emergency_contact_id")
	}
	if len(set) == 0 {
		// Пустой патч: DO UPDATE все равно нужен, чтобы RETURNING вернул строку
		set = append(set, "id = EXCLUDED.id")
	}

	query := fmt.Sprintf(`
		INSERT INTO user_settings (id, location, latitude, longitude, notifications_enabled, dark_mode, emergency_contact_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET %s
		RETURNING %s;
	`, strings.Join(set, ", "), userSettingsColumns)

	settings, err := scanUserSettings(r.db.QueryRow(ctx, query,
		models.UserSettingsID,
		location,
		latitude,
		longitude,
		notifications,
		darkMode,
		contactID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return settings, nil
}
