package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/shenikar/disaster_alert_system/internal/service"
)

const safetyGuideColumns = `
	id,
	title,
	description,
	category,
	content,
	image_url,
	priority`

type SafetyGuideRepository struct {
	db *pgxpool.Pool
}

func NewSafetyGuideRepository(db *pgxpool.Pool) service.SafetyGuideRepository {
	return &SafetyGuideRepository{db: db}
}

func scanSafetyGuide(row pgx.Row) (*models.SafetyGuide, error) {
	guide := &models.SafetyGuide{}
	err := row.Scan(
		&guide.ID,
		&guide.Title,
		&guide.Description,
		&guide.Category,
		&guide.Content,
		&guide.ImageURL,
		&guide.Priority,
	)
	if err != nil {
		return nil, err
	}
	return guide, nil
}

// Create создает новую инструкцию по безопасности в бд
func (r *SafetyGuideRepository) Create(ctx context.Context, guide *models.SafetyGuide) error {
	query := `
		INSERT INTO safety_guides (title, description, category, content, image_url, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		guide.Title,
		guide.Description,
		guide.Category,
		guide.Content,
		guide.ImageURL,
		guide.Priority,
	).Scan(&guide.ID)
	if err != nil {
		return fmt.Errorf("failed to create safety guide: %w", err)
	}
	return nil
}

// GetByID возвращает инструкцию по ее id или models.ErrNotFound
func (r *SafetyGuideRepository) GetByID(ctx context.Context, id int64) (*models.SafetyGuide, error) {
	query := fmt.Sprintf(`SELECT %s FROM safety_guides WHERE id = $1;`, safetyGuideColumns)
	guide, err := scanSafetyGuide(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("safety guide with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get safety guide by id: %w", err)
	}
	return guide, nil
}

// ListAll возвращает все инструкции по возрастанию приоритета
// (меньшее значение показывается раньше)
func (r *SafetyGuideRepository) ListAll(ctx context.Context) ([]*models.SafetyGuide, error) {
	query := fmt.Sprintf(`SELECT %s FROM safety_guides ORDER BY priority ASC;`, safetyGuideColumns)
	return r.queryGuides(ctx, query)
}

// ListByCategory возвращает инструкции указанной категории по возрастанию
// приоритета. Сравнение категории точное, без нормализации регистра.
func (r *SafetyGuideRepository) ListByCategory(ctx context.Context, category string) ([]*models.SafetyGuide, error) {
	query := fmt.Sprintf(`SELECT %s FROM safety_guides WHERE category = $1 ORDER BY priority ASC;`, safetyGuideColumns)
	return r.queryGuides(ctx, query, category)
}

func (r *SafetyGuideRepository) queryGuides(ctx context.Context, query string, args ...any) ([]*models.SafetyGuide, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list safety guides: %w", err)
	}
	defer rows.Close()

	guides := make([]*models.SafetyGuide, 0)
	for rows.Next() {
		guide, err := scanSafetyGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safety guide row: %w", err)
		}
		guides = append(guides, guide)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return guides, nil
}
