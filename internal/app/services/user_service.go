package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

type userStore interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, name, email string, role models.UserRole, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles admin-side account management
type UserService struct {
	userStore userStore
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore userStore, logger zerolog.Logger) *UserService {
	return &UserService{userStore: userStore, logger: logger}
}

// List returns every account, password hashes excluded by serialization
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userStore.GetAll(ctx)
}

// Get returns one account by id
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// Update edits an account. An empty password keeps the stored hash; a
// non-empty one is validated and re-hashed. Name and email changes on an
// alumnus account are mirrored onto its directory profile by the store.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	role := models.UserRole(req.Role)
	if !role.Valid() {
		return fmt.Errorf("%w: unknown user type %q", apperrors.ErrValidationFailed, req.Role)
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

	if err := s.userStore.Update(ctx, id, req.Name, req.Email, role, passwordHash); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("User updated")
	return nil
}

// Delete removes an account together with its directory profile when the
// account is an alumnus.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("User deleted")
	return nil
}
