package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// authUserStore is the slice of the user repository the auth flow needs.
type authUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	CreateAlumnusAccount(ctx context.Context, user *models.User, bio *models.AlumnusBio) (int64, int64, error)
}

// AuthService handles signup, login and admin registration
type AuthService struct {
	userStore  authUserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore authUserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrValidationFailed, minPasswordLength)
	}
	return nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password produce the same failure payload, so the response
// never reveals which half was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	failure := &dto.LoginResponse{
		LoginStatus: false,
		Error:       "Wrong email or password!",
	}

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return failure, nil
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return failure, nil
	}

	token, _, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		LoginStatus: true,
		UserType:    string(user.Role),
		UserID:      user.ID,
		UserName:    user.Name,
		AlumnusID:   user.AlumnusID,
		Token:       token,
	}, nil
}

// Signup registers a new account. An alumnus signup writes the login record
// and its directory profile together; a duplicate email is reported by
// echoing the existing email back without a signup status.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := models.UserRole(req.UserType)
	if !role.Valid() || role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown user type %q", apperrors.ErrValidationFailed, req.UserType)
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.SignupResponse{Email: req.Email}, nil
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     role,
	}

	var userID int64
	if role == models.RoleAlumnus {
		bio := &models.AlumnusBio{
			Name:     req.Name,
			Email:    req.Email,
			CourseID: req.CourseID,
			Status:   models.AlumnusUnverified,
		}
		userID, _, err = s.userStore.CreateAlumnusAccount(ctx, user, bio)
	} else {
		userID, err = s.userStore.Create(ctx, user)
	}
	if err != nil {
		if isDuplicate(err) {
			return &dto.SignupResponse{Email: req.Email}, nil
		}
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Str("role", string(role)).Msg("Account created")

	return &dto.SignupResponse{
		Message:      "Account created successfully",
		UserID:       userID,
		SignupStatus: true,
	}, nil
}

// RegisterAdmin creates an admin-role account
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (*dto.AdminRegisterResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.AdminRegisterResponse{
			RegisterStatus: false,
			Error:          "Email already exists",
		}, nil
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	userID, err := s.userStore.Create(ctx, &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		if isDuplicate(err) {
			return &dto.AdminRegisterResponse{RegisterStatus: false, Error: "Email already exists"}, nil
		}
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Msg("Admin account created")

	return &dto.AdminRegisterResponse{
		Message:        "Admin registered successfully",
		UserID:         userID,
		RegisterStatus: true,
	}, nil
}
