package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
)

// GalleryRepository handles database operations for gallery photos
type GalleryRepository struct {
	db *pgxpool.Pool
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List returns every gallery photo, newest first
func (r *GalleryRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	query := `
		SELECT id, image_path, about, created_at
		FROM gallery_items
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying gallery: %w", err)
	}
	defer rows.Close()

	items := []models.GalleryItem{}
	for rows.Next() {
		var item models.GalleryItem
		if err := rows.Scan(&item.ID, &item.ImagePath, &item.About, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning gallery row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery rows: %w", err)
	}

	return items, nil
}
