package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
)

// SettingRepository handles database operations for the site settings
type SettingRepository struct {
	db *pgxpool.Pool
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{db: db}
}

// List returns every settings row. Clients read the first entry; an empty
// slice means the site has not been configured yet.
func (r *SettingRepository) List(ctx context.Context) ([]models.SystemSetting, error) {
	query := `
		SELECT id, name, email, contact, cover_img, about_content, created_at
		FROM system_settings
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying settings: %w", err)
	}
	defer rows.Close()

	settings := []models.SystemSetting{}
	for rows.Next() {
		var s models.SystemSetting
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Contact, &s.CoverImg, &s.AboutContent, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning settings row: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", err)
	}

	return settings, nil
}
