package models

import "time"

// SystemSetting holds the site-wide branding and contact details. The first
// row is consumed as the singleton settings record.
type SystemSetting struct {
	ID           int64     `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact"`
	CoverImg     string    `json:"cover_img,omitempty"`
	AboutContent string    `json:"about_content,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
