package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/db"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

// CareerRepository handles database operations for job postings
type CareerRepository struct {
	db *pgxpool.Pool
}

// NewCareerRepository creates a new CareerRepository
func NewCareerRepository(db *pgxpool.Pool) *CareerRepository {
	return &CareerRepository{db: db}
}

// List returns every posting joined with its poster's name, newest first
func (r *CareerRepository) List(ctx context.Context) ([]dto.JobItem, error) {
	query := `
		SELECT c.id, c.company, c.job_title, c.location, c.description,
			c.user_id, COALESCE(u.name, '') AS name, c.created_at
		FROM careers c
		LEFT JOIN users u ON u.id = c.user_id
		ORDER BY c.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying careers: %w", err)
	}
	defer rows.Close()

	items := []dto.JobItem{}
	for rows.Next() {
		var item dto.JobItem
		err := rows.Scan(
			&item.ID,
			&item.Company,
			&item.JobTitle,
			&item.Location,
			&item.Description,
			&item.UserID,
			&item.Name,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning career row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating career rows: %w", err)
	}

	return items, nil
}

// ListWithPoster returns postings shaped for the job board, newest first.
// Postings whose poster was deleted keep an empty postedBy.
func (r *CareerRepository) ListWithPoster(ctx context.Context) ([]dto.JobListItem, error) {
	query := `
		SELECT c.id, c.company, c.job_title, c.location, c.description,
			u.id, COALESCE(u.name, '') AS name, c.created_at
		FROM careers c
		LEFT JOIN users u ON u.id = c.user_id
		ORDER BY c.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying job board: %w", err)
	}
	defer rows.Close()

	items := []dto.JobListItem{}
	for rows.Next() {
		var item dto.JobListItem
		err := rows.Scan(
			&item.ID,
			&item.Company,
			&item.Title,
			&item.Location,
			&item.Description,
			&item.PostedBy.ID,
			&item.PostedBy.Name,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning job board row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job board rows: %w", err)
	}

	return items, nil
}

// CreateWithNotifications inserts a posting together with one outbox email
// per recipient. Either the posting and every notification row commit, or
// none of them do.
func (r *CareerRepository) CreateWithNotifications(ctx context.Context, career *models.Career, emails []models.OutboxEmail) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertCareer := `
			INSERT INTO careers (company, job_title, location, description, user_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := tx.QueryRow(ctx, insertCareer,
			career.Company, career.JobTitle, career.Location, career.Description, career.UserID).Scan(&id)
		if err != nil {
			return fmt.Errorf("error inserting career: %w", err)
		}

		insertOutbox := `
			INSERT INTO email_outbox (recipient, subject, body, status)
			VALUES ($1, $2, $3, $4)
		`
		for _, email := range emails {
			_, err := tx.Exec(ctx, insertOutbox,
				email.Recipient, email.Subject, email.Body, models.OutboxPending)
			if err != nil {
				return fmt.Errorf("error enqueueing notification: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites a posting by id
func (r *CareerRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) error {
	query := `
		UPDATE careers
		SET company = $1, job_title = $2, location = $3, description = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query,
		req.Company, req.JobTitle, req.Location, req.Description, req.ID)
	if err != nil {
		return fmt.Errorf("error updating career: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete removes a posting by id
func (r *CareerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM careers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting career: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}
