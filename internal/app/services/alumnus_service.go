package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

type alumnusStore interface {
	ListWithCourse(ctx context.Context) ([]dto.AlumnusListItem, error)
	GetByID(ctx context.Context, id int64) (*models.AlumnusBio, error)
	Create(ctx context.Context, bio *models.AlumnusBio) (*models.AlumnusBio, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAlumnusRequest) (*models.AlumnusBio, error)
	SetStatus(ctx context.Context, id int64, status int) error
	Delete(ctx context.Context, id int64) error
	UpdateAccount(ctx context.Context, req *dto.UpdateAccountRequest, avatarPath, passwordHash string) error
}

type avatarStorage interface {
	Save(fileHeader *multipart.FileHeader, subPath string) (string, error)
}

// AlumnusService handles the alumni directory
type AlumnusService struct {
	alumnusStore alumnusStore
	storage      avatarStorage
	logger       zerolog.Logger
}

// NewAlumnusService creates a new AlumnusService
func NewAlumnusService(alumnusStore alumnusStore, storage avatarStorage, logger zerolog.Logger) *AlumnusService {
	return &AlumnusService{alumnusStore: alumnusStore, storage: storage, logger: logger}
}

// List returns the directory with course names resolved where possible
func (s *AlumnusService) List(ctx context.Context) ([]dto.AlumnusListItem, error) {
	return s.alumnusStore.ListWithCourse(ctx)
}

// Get returns one directory profile by id
func (s *AlumnusService) Get(ctx context.Context, id int64) (*models.AlumnusBio, error) {
	return s.alumnusStore.GetByID(ctx, id)
}

// Create adds a profile through the admin panel, already verified
func (s *AlumnusService) Create(ctx context.Context, req *dto.CreateAlumnusRequest) (*models.AlumnusBio, error) {
	if req.Name == "" || req.Email == "" {
		return nil, apperrors.NewValidationError("Name and email are required")
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}

	bio := &models.AlumnusBio{
		Name:        req.Name,
		Email:       req.Email,
		Gender:      req.Gender,
		Batch:       req.Batch,
		CourseID:    req.CourseID,
		ConnectedTo: req.ConnectedTo,
		Status:      models.AlumnusVerified,
	}

	created, err := s.alumnusStore.Create(ctx, bio)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("alumnus_id", created.ID).Msg("Alumnus profile created")
	return created, nil
}

// Update edits a directory profile
func (s *AlumnusService) Update(ctx context.Context, id int64, req *dto.UpdateAlumnusRequest) (*models.AlumnusBio, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	return s.alumnusStore.Update(ctx, id, req)
}

// SetStatus flips the verified flag on a profile
func (s *AlumnusService) SetStatus(ctx context.Context, req *dto.SetAlumnusStatusRequest) error {
	if err := s.alumnusStore.SetStatus(ctx, req.AlumnusID, req.Status); err != nil {
		return err
	}
	s.logger.Info().Int64("alumnus_id", req.AlumnusID).Int("status", req.Status).Msg("Alumnus status changed")
	return nil
}

// Delete removes a profile from the directory
func (s *AlumnusService) Delete(ctx context.Context, id int64) error {
	return s.alumnusStore.Delete(ctx, id)
}

// UpdateAccount applies a self-service profile edit in one transaction:
// bio fields, optional avatar upload, the mirrored login name and email,
// and an optional password change.
func (s *AlumnusService) UpdateAccount(ctx context.Context, req *dto.UpdateAccountRequest, avatar *multipart.FileHeader) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	passwordHash := ""
	if req.Password != "" {
		if err := validatePassword(req.Password); err != nil {
			return err
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		passwordHash = hash
	}

	avatarPath, err := s.storage.Save(avatar, "avatars")
	if err != nil {
		return fmt.Errorf("error saving avatar: %w", err)
	}

	if err := s.alumnusStore.UpdateAccount(ctx, req, avatarPath, passwordHash); err != nil {
		return err
	}

	s.logger.Info().Int64("alumnus_id", req.AlumnusID).Msg("Account updated")
	return nil
}
