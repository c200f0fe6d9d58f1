package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
)

type statsStore interface {
	GetCounts(ctx context.Context, now time.Time) (*dto.CountsResponse, error)
}

type galleryStore interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
}

type settingStore interface {
	List(ctx context.Context) ([]models.SystemSetting, error)
}

// SiteService serves the dashboard counts, the gallery and the site
// settings.
type SiteService struct {
	statsStore   statsStore
	galleryStore galleryStore
	settingStore settingStore
	logger       zerolog.Logger
}

// NewSiteService creates a new SiteService
func NewSiteService(statsStore statsStore, galleryStore galleryStore, settingStore settingStore, logger zerolog.Logger) *SiteService {
	return &SiteService{
		statsStore:   statsStore,
		galleryStore: galleryStore,
		settingStore: settingStore,
		logger:       logger,
	}
}

// Counts recomputes the dashboard totals
func (s *SiteService) Counts(ctx context.Context) (*dto.CountsResponse, error) {
	return s.statsStore.GetCounts(ctx, time.Now())
}

// Gallery returns every photo, newest first
func (s *SiteService) Gallery(ctx context.Context) ([]models.GalleryItem, error) {
	return s.galleryStore.List(ctx)
}

// Settings returns the settings rows; clients consume the first entry
func (s *SiteService) Settings(ctx context.Context) ([]models.SystemSetting, error) {
	return s.settingStore.List(ctx)
}
