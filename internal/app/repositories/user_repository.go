package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/db"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/dberrors"
)

// UserRepository handles database operations for login accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password, role, alumnus_id, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.AlumnusID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// EmailExists reports whether a user with the given email exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all users sorted by name ascending
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.AlumnusID,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Create inserts a user and returns the generated id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password, role, alumnus_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role, user.AlumnusID).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error inserting user: %w", err)
	}

	return id, nil
}

// CreateAlumnusAccount creates the directory profile and the login record
// in a single transaction, so a failed second insert never leaves an orphan
// bio behind.
func (r *UserRepository) CreateAlumnusAccount(ctx context.Context, user *models.User, bio *models.AlumnusBio) (int64, int64, error) {
	var userID, bioID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		bioQuery := `
			INSERT INTO alumnus_bios (name, email, course_id, batch, gender, connected_to, avatar, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		err := tx.QueryRow(ctx, bioQuery,
			bio.Name, bio.Email, bio.CourseID, bio.Batch, bio.Gender,
			bio.ConnectedTo, bio.Avatar, bio.Status).Scan(&bioID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error inserting alumnus bio: %w", err)
		}

		userQuery := `
			INSERT INTO users (name, email, password, role, alumnus_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err = tx.QueryRow(ctx, userQuery,
			user.Name, user.Email, user.Password, user.Role, bioID).Scan(&userID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error inserting user: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return userID, bioID, nil
}

// Update rewrites a user's editable fields and mirrors name/email onto the
// linked alumnus bio in the same transaction. An empty passwordHash keeps
// the stored hash.
func (r *UserRepository) Update(ctx context.Context, id int64, name, email string, role models.UserRole, passwordHash string) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `UPDATE users SET name = $1, email = $2, role = $3 WHERE id = $4`
		args := []interface{}{name, email, role, id}
		if passwordHash != "" {
			query = `UPDATE users SET name = $1, email = $2, role = $3, password = $4 WHERE id = $5`
			args = []interface{}{name, email, role, passwordHash, id}
		}

		result, err := tx.Exec(ctx, query, args...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating user: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		if user.Role == models.RoleAlumnus && user.AlumnusID != nil {
			_, err := tx.Exec(ctx,
				`UPDATE alumnus_bios SET name = $1, email = $2 WHERE id = $3`,
				name, email, *user.AlumnusID)
			if err != nil {
				return fmt.Errorf("error mirroring user update onto alumnus bio: %w", err)
			}
		}

		return nil
	})
}

// Delete removes a user; alumnus-role users cascade to their linked bio
// inside the same transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if user.Role == models.RoleAlumnus && user.AlumnusID != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM alumnus_bios WHERE id = $1`, *user.AlumnusID); err != nil {
				return fmt.Errorf("error deleting linked alumnus bio: %w", err)
			}
		}

		result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}
