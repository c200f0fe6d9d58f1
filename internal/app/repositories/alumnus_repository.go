package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/db"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/dberrors"
)

// AlumnusRepository handles database operations for directory profiles
type AlumnusRepository struct {
	db *pgxpool.Pool
}

// NewAlumnusRepository creates a new AlumnusRepository
func NewAlumnusRepository(db *pgxpool.Pool) *AlumnusRepository {
	return &AlumnusRepository{db: db}
}

// ListWithCourse returns every bio left-joined with its course, sorted by
// name ascending. Bios whose course reference does not resolve are still
// returned with a null course.
func (r *AlumnusRepository) ListWithCourse(ctx context.Context) ([]dto.AlumnusListItem, error) {
	query := `
		SELECT a.id, a.name, a.gender, a.batch, a.course_id, a.email,
			a.connected_to, a.avatar, a.status, a.created_at, c.name AS course
		FROM alumnus_bios a
		LEFT JOIN courses c ON c.id = a.course_id
		ORDER BY a.name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying alumni list: %w", err)
	}
	defer rows.Close()

	items := []dto.AlumnusListItem{}
	for rows.Next() {
		var item dto.AlumnusListItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Gender,
			&item.Batch,
			&item.CourseID,
			&item.Email,
			&item.ConnectedTo,
			&item.Avatar,
			&item.Status,
			&item.DateCreated,
			&item.Course,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning alumni row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alumni rows: %w", err)
	}

	return items, nil
}

// GetByID retrieves one bio by id
func (r *AlumnusRepository) GetByID(ctx context.Context, id int64) (*models.AlumnusBio, error) {
	query := `
		SELECT id, name, email, course_id, batch, gender, connected_to, avatar, status, created_at
		FROM alumnus_bios
		WHERE id = $1
	`

	var bio models.AlumnusBio
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bio.ID,
		&bio.Name,
		&bio.Email,
		&bio.CourseID,
		&bio.Batch,
		&bio.Gender,
		&bio.ConnectedTo,
		&bio.Avatar,
		&bio.Status,
		&bio.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumnusNotFound
		}
		return nil, fmt.Errorf("error scanning alumnus bio: %w", err)
	}

	return &bio, nil
}

// EmailExists reports whether a bio with the given email exists
func (r *AlumnusRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM alumnus_bios WHERE email = $1)`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking bio email existence: %w", err)
	}
	return exists, nil
}

// ListEmails returns every bio email for notification fan-out
func (r *AlumnusRepository) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT email FROM alumnus_bios`)
	if err != nil {
		return nil, fmt.Errorf("error querying alumni emails: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("error scanning email row: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating email rows: %w", err)
	}

	return emails, nil
}

// Create inserts a bio and returns it with the generated id
func (r *AlumnusRepository) Create(ctx context.Context, bio *models.AlumnusBio) (*models.AlumnusBio, error) {
	query := `
		INSERT INTO alumnus_bios (name, email, course_id, batch, gender, connected_to, avatar, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		bio.Name, bio.Email, bio.CourseID, bio.Batch, bio.Gender,
		bio.ConnectedTo, bio.Avatar, bio.Status).Scan(&bio.ID, &bio.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error inserting alumnus bio: %w", err)
	}

	return bio, nil
}

// Update rewrites a bio's profile fields. A nil status keeps the stored
// verification flag.
func (r *AlumnusRepository) Update(ctx context.Context, id int64, req *dto.UpdateAlumnusRequest) (*models.AlumnusBio, error) {
	query := `
		UPDATE alumnus_bios
		SET name = $1, email = $2, gender = $3, batch = $4, connected_to = $5,
			course_id = COALESCE($6, course_id),
			status = COALESCE($7, status)
		WHERE id = $8
	`

	result, err := r.db.Exec(ctx, query,
		req.Name, req.Email, req.Gender, req.Batch, req.ConnectedTo,
		req.CourseID, req.Status, id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error updating alumnus bio: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrAlumnusNotFound
	}

	return r.GetByID(ctx, id)
}

// SetStatus sets the verification flag
func (r *AlumnusRepository) SetStatus(ctx context.Context, id int64, status int) error {
	result, err := r.db.Exec(ctx, `UPDATE alumnus_bios SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating alumnus status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAlumnusNotFound
	}
	return nil
}

// Delete removes a bio. The login record, if any, keeps a dangling
// reference; only user deletion cascades the other way.
func (r *AlumnusRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM alumnus_bios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting alumnus bio: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAlumnusNotFound
	}
	return nil
}

// UpdateAccount applies a self-service profile update: bio fields, the
// optional avatar, the user's name/email mirror and the optional password
// hash, all in one transaction.
func (r *AlumnusRepository) UpdateAccount(ctx context.Context, req *dto.UpdateAccountRequest, avatarPath, passwordHash string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		bioQuery := `
			UPDATE alumnus_bios
			SET name = $1, email = $2, gender = $3, batch = $4,
				connected_to = COALESCE(NULLIF($5, ''), connected_to),
				course_id = COALESCE($6, course_id)
			WHERE id = $7
		`
		result, err := tx.Exec(ctx, bioQuery,
			req.Name, req.Email, req.Gender, req.Batch, req.ConnectedTo,
			req.CourseID, req.AlumnusID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating alumnus bio: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrAlumnusNotFound
		}

		if avatarPath != "" {
			if _, err := tx.Exec(ctx, `UPDATE alumnus_bios SET avatar = $1 WHERE id = $2`, avatarPath, req.AlumnusID); err != nil {
				return fmt.Errorf("error updating avatar: %w", err)
			}
		}

		userQuery := `UPDATE users SET name = $1, email = $2 WHERE id = $3`
		args := []interface{}{req.Name, req.Email, req.UserID}
		if passwordHash != "" {
			userQuery = `UPDATE users SET name = $1, email = $2, password = $3 WHERE id = $4`
			args = []interface{}{req.Name, req.Email, passwordHash, req.UserID}
		}

		result, err = tx.Exec(ctx, userQuery, args...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating user record: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}
