package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
)

// OutboxRepository handles the queued notification emails drained by the
// notifier worker.
type OutboxRepository struct {
	db *pgxpool.Pool
}

// NewOutboxRepository creates a new OutboxRepository
func NewOutboxRepository(db *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{db: db}
}

// FetchPending returns up to limit pending emails, oldest first
func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]models.OutboxEmail, error) {
	query := `
		SELECT id, recipient, subject, body, status, attempts,
			COALESCE(last_error, ''), created_at, sent_at
		FROM email_outbox
		WHERE status = $1
		ORDER BY id ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, models.OutboxPending, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying outbox: %w", err)
	}
	defer rows.Close()

	emails := []models.OutboxEmail{}
	for rows.Next() {
		var e models.OutboxEmail
		err := rows.Scan(
			&e.ID,
			&e.Recipient,
			&e.Subject,
			&e.Body,
			&e.Status,
			&e.Attempts,
			&e.LastError,
			&e.CreatedAt,
			&e.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning outbox row: %w", err)
		}
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outbox rows: %w", err)
	}

	return emails, nil
}

// MarkSent records a successful delivery
func (r *OutboxRepository) MarkSent(ctx context.Context, id int64) error {
	query := `
		UPDATE email_outbox
		SET status = $1, sent_at = now(), last_error = NULL
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, models.OutboxSent, id); err != nil {
		return fmt.Errorf("error marking outbox email sent: %w", err)
	}
	return nil
}

// MarkFailed records a delivery failure. The row stays pending until it has
// been attempted maxAttempts times, then moves to failed and is no longer
// retried.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id int64, sendErr string, maxAttempts int) error {
	query := `
		UPDATE email_outbox
		SET attempts = attempts + 1,
			last_error = $1,
			status = CASE WHEN attempts + 1 >= $2 THEN $3 ELSE $4 END
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, sendErr, maxAttempts, models.OutboxFailed, models.OutboxPending, id)
	if err != nil {
		return fmt.Errorf("error marking outbox email failed: %w", err)
	}
	return nil
}

// CountPending reports how many emails are waiting for delivery
func (r *OutboxRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM email_outbox WHERE status = $1`, models.OutboxPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending outbox emails: %w", err)
	}
	return count, nil
}
