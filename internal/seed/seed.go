package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// EnsureDefaultData наполняет пустую базу стартовым набором данных.
// Предусловие - "нет ни одного алерта": если хоть одна строка есть,
// шаг ничего не делает, поэтому его можно безопасно вызывать при каждом старте.
func EnsureDefaultData(ctx context.Context, db *pgxpool.Pool, log *logrus.Logger) error {
	var hasAlerts bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM alerts);`).Scan(&hasAlerts); err != nil {
		return fmt.Errorf("failed to check for existing alerts: %w", err)
	}
	if hasAlerts {
		log.Info("Default data already present, skipping seed")
		return nil
	}

	log.Info("Seeding default data...")

	if err := seedAlerts(ctx, db); err != nil {
		return err
	}
	if err := seedSafetyGuides(ctx, db); err != nil {
		return err
	}
	personalContactID, err := seedEmergencyContacts(ctx, db)
	if err != nil {
		return err
	}
	if err := seedUserSettings(ctx, db, personalContactID); err != nil {
		return err
	}

	log.Info("Default data seeded successfully")
	return nil
}

func seedAlerts(ctx context.Context, db *pgxpool.Pool) error {
	query := `
		INSERT INTO alerts (title, description, severity, type, location, latitude, longitude, is_active, expires_at, image_url, action_url)
		VALUES
			('Wildfire Evacuation Order',
			 'Immediate evacuation required for zones A-C. Follow designated evacuation routes.',
			 'critical', 'wildfire', 'San Francisco Bay Area', '37.7749', '-122.4194', TRUE,
			 NOW() + INTERVAL '24 hours',
			 'https://images.unsplash.com/photo-1504639725590-34d0984388bd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200',
			 '/evacuation-routes'),
			('Severe Wind Advisory',
			 'Wind speeds up to 65 mph expected. Secure outdoor items and avoid travel.',
			 'warning', 'storm', 'San Francisco Bay Area', '37.7749', '-122.4194', TRUE,
			 NOW() + INTERVAL '6 hours',
			 'https://images.unsplash.com/photo-1605727216801-e27ce1d0cc28?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200',
			 '/safety-tips'),
			('Flood Watch',
			 'Heavy rainfall may cause flooding in low-lying areas. Monitor conditions.',
			 'watch', 'flood', 'San Francisco Bay Area', '37.7749', '-122.4194', TRUE,
			 NOW() + INTERVAL '12 hours',
			 'https://images.unsplash.com/photo-1547036967-23d11aacaee0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200',
			 '/monitor');
	`
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to seed alerts: %w", err)
	}
	return nil
}

func seedSafetyGuides(ctx context.Context, db *pgxpool.Pool) error {
	query := `
		INSERT INTO safety_guides (title, description, category, content, image_url, priority)
		VALUES
			('Emergency Kit Essentials', '72-hour supply checklist', 'general',
			 'Essential items for emergency preparedness including water, food, medications, flashlight, radio, batteries, first aid kit, and important documents.',
			 'https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=80&h=80', 1),
			('Earthquake Safety', 'Drop, cover, and hold on', 'earthquake',
			 'During an earthquake: Drop to your hands and knees, take cover under a sturdy desk or table, and hold on until shaking stops.',
			 'https://images.unsplash.com/photo-1551601651-2a8555f1a136?ixlib=rb-4.0.3&auto=format&fit=crop&w=80&h=80', 2),
			('Evacuation Planning', 'Routes and meeting points', 'general',
			 'Plan multiple evacuation routes from your home and workplace. Designate meeting points for family members.',
			 'https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=80&h=80', 3);
	`
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to seed safety guides: %w", err)
	}
	return nil
}

// seedEmergencyContacts возвращает id персонального контакта,
// на который ссылаются стартовые настройки
func seedEmergencyContacts(ctx context.Context, db *pgxpool.Pool) (int64, error) {
	query := `
		INSERT INTO emergency_contacts (name, phone, type, description, is_default)
		VALUES
			('Emergency Services', '911', 'emergency', 'Fire, Police, Medical Emergency', TRUE),
			('Poison Control', '1-800-222-1222', 'medical', '24/7 poison information and treatment advice', TRUE);
	`
	if _, err := db.Exec(ctx, query); err != nil {
		return 0, fmt.Errorf("failed to seed emergency contacts: %w", err)
	}

	var personalID int64
	err := db.QueryRow(ctx, `
		INSERT INTO emergency_contacts (name, phone, type, description, is_default)
		VALUES ('Emergency Contact', '(555) 123-4567', 'personal', 'Mom', FALSE)
		RETURNING id;
	`).Scan(&personalID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed personal contact: %w", err)
	}
	return personalID, nil
}

func seedUserSettings(ctx context.Context, db *pgxpool.Pool, personalContactID int64) error {
	query := `
		INSERT INTO user_settings (id, location, latitude, longitude, notifications_enabled, dark_mode, emergency_contact_id)
		VALUES (1, 'San Francisco, CA', '37.7749', '-122.4194', TRUE, FALSE, $1)
		ON CONFLICT (id) DO NOTHING;
	`
	if _, err := db.Exec(ctx, query, personalContactID); err != nil {
		return fmt.Errorf("failed to seed user settings: %w", err)
	}
	return nil
}
