package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service"
)

const alertColumns = `
	id,
	title,
	description,
	severity,
	type,
	location,
	latitude,
	longitude,
	is_active,
	timestamp,
	expires_at,
	image_url,
	action_url`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.Title,
		&alert.Description,
		&alert.Severity,
		&alert.Type,
		&alert.Location,
		&alert.Latitude,
		&alert.Longitude,
		&alert.IsActive,
		&alert.Timestamp,
		&alert.ExpiresAt,
		&alert.ImageURL,
		&alert.ActionURL,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create создает новую запись об алерте в бд.
// ID и timestamp присваивает база, модель дополняется сгенерированными полями.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (title, description, severity, type, location, latitude, longitude, is_active, expires_at, image_url, action_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, timestamp;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Title,
		alert.Description,
		alert.Severity,
		alert.Type,
		alert.Location,
		alert.Latitude,
		alert.Longitude,
		alert.IsActive,
		alert.ExpiresAt,
		alert.ImageURL,
		alert.ActionURL,
	).Scan(&alert.ID, &alert.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает алерт по его id или models.ErrNotFound
func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts WHERE id = $1;`, alertColumns)
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// ListAll возвращает все алерты, отсортированные от новых к старым
func (r *AlertRepository) ListAll(ctx context.Context) ([]*models.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts ORDER BY timestamp DESC;`, alertColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// ListActive возвращает действующие алерты, отсортированные по серьезности.
// Истечение срока вычисляется на момент чтения, хранимый флаг не трогается.
func (r *AlertRepository) ListActive(ctx context.Context) ([]*models.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts WHERE is_active = TRUE;`, alertColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row in ListActive: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListActive: %w", err)
	}

	active := filterEffectivelyActive(alerts, time.Now())
	if err := sortBySeverityRank(active); err != nil {
		return nil, fmt.Errorf("failed to rank active alerts: %w", err)
	}
	return active, nil
}

// Update применяет частичный патч к алерту и возвращает обновленную запись.
// Пустой патч возвращает запись без изменений (timestamp не переназначается).
func (r *AlertRepository) Update(ctx context.Context, id int64, patch *models.AlertPatch) (*models.Alert, error) {
	set := make([]string, 0)
	args := make([]any, 0)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Severity != nil {
		add("severity", *patch.Severity)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Latitude != nil {
		add("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		add("longitude", *patch.Longitude)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.ExpiresAt != nil {
		add("expires_at", *patch.ExpiresAt)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.ActionURL != nil {
		add("action_url", *patch.ActionURL)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE alerts SET %s WHERE id = $%d RETURNING %s;`,
		strings.Join(set, ", "), len(args), alertColumns)

	alert, err := scanAlert(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %d not found for update: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}
	return alert, nil
}

// Delete удаляет алерт и сообщает, была ли удалена строка.
// Повторный вызов для того же id возвращает false без ошибки.
func (r *AlertRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete alert: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// filterEffectivelyActive отбирает алерты, действующие на момент now,
// сохраняя порядок, в котором их вернула бд
func filterEffectivelyActive(alerts []*models.Alert, now time.Time) []*models.Alert {
	active := make([]*models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.EffectivelyActive(now) {
			active = append(active, alert)
		}
	}
	return active
}

// sortBySeverityRank сортирует алерты по возрастанию ранга серьезности.
// Сортировка стабильная: равные ранги сохраняют исходный порядок.
// Неизвестная серьезность - ошибка, а не ранг по умолчанию.
func sortBySeverityRank(alerts []*models.Alert) error {
	ranks := make(map[*models.Alert]int, len(alerts))
	for _, alert := range alerts {
		rank, err := models.SeverityRank(alert.Severity)
		if err != nil {
			return err
		}
		ranks[alert] = rank
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return ranks[alerts[i]] < ranks[alerts[j]]
	})
	return nil
}
