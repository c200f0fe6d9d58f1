package models

import "time"

// GalleryItem is a photo shown on the public gallery page.
type GalleryItem struct {
	ID        int64     `json:"_id"`
	ImagePath string    `json:"image_path"`
	About     string    `json:"about"`
	CreatedAt time.Time `json:"created_at"`
}
