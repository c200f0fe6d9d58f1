// Package seed creates the default records a fresh installation needs: one
// admin account and the site settings row.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/emre/alumnihub/internal/app/models"
	appRepos "github.com/emre/alumnihub/internal/app/repositories"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

const (
	defaultAdminEmail = "admin@alumnihub.app"
	defaultSiteName   = "AlumniHub"
)

// CreateDefaultData inserts the default admin and settings row when they do
// not exist yet. Failures are reported but never abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	settingRepo := appRepos.NewSettingRepository(dbPool)

	var finalErr error

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
		if password == "" {
			password = "admin123"
			lgr.Warn().Msg("ADMIN_DEFAULT_PASSWORD not set, using built-in default; change it after first login")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			id, err := userRepo.Create(ctx, &appModels.User{
				Name:     "Administrator",
				Email:    defaultAdminEmail,
				Password: hash,
				Role:     appModels.RoleAdmin,
			})
			if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating default admin account")
				finalErr = errors.Join(finalErr, err)
			} else if err == nil {
				lgr.Info().Int64("user_id", id).Msg("Default admin account created")
			}
		}
	}

	settings, err := settingRepo.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking site settings")
		finalErr = errors.Join(finalErr, err)
	} else if len(settings) == 0 {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO system_settings (name, email, contact) VALUES ($1, $2, $3)`,
			defaultSiteName, defaultAdminEmail, "")
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default site settings")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Msg("Default site settings created")
		}
	}

	return finalErr
}
