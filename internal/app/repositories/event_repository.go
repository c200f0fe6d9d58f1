package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/db"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

// EventRepository handles database operations for events and participation
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// ListWithCommitCount returns every event with its participation count,
// newest schedule first. Events nobody joined yet count zero.
func (r *EventRepository) ListWithCommitCount(ctx context.Context) ([]dto.EventListItem, error) {
	query := `
		SELECT e.id, e.title, e.description, e.schedule, e.banner, e.created_at,
			COUNT(ec.id) AS commits_count
		FROM events e
		LEFT JOIN event_commits ec ON ec.event_id = e.id
		GROUP BY e.id
		ORDER BY e.schedule DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	items := []dto.EventListItem{}
	for rows.Next() {
		var item dto.EventListItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Schedule,
			&item.Banner,
			&item.CreatedAt,
			&item.CommitsCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return items, nil
}

// ListUpcoming returns events scheduled at or after now, soonest first
func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	query := `
		SELECT id, title, description, schedule, banner, user_id, created_at
		FROM events
		WHERE schedule >= $1
		ORDER BY schedule ASC
	`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("error querying upcoming events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Schedule,
			&event.Banner,
			&event.UserID,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning upcoming event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upcoming event rows: %w", err)
	}

	return events, nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, title, description, schedule, banner, user_id, created_at
		FROM events
		WHERE id = $1
	`

	var event models.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Schedule,
		&event.Banner,
		&event.UserID,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error scanning event: %w", err)
	}

	return &event, nil
}

// Create inserts an event and returns the generated id
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, description, schedule, banner, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Schedule, event.Banner, event.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting event: %w", err)
	}

	return id, nil
}

// Update partially rewrites an event and returns the stored row
func (r *EventRepository) Update(ctx context.Context, req *dto.UpdateEventRequest) (*models.Event, error) {
	query := `
		UPDATE events
		SET title = COALESCE(NULLIF($1, ''), title),
			description = COALESCE(NULLIF($2, ''), description),
			schedule = COALESCE($3, schedule),
			user_id = COALESCE($4, user_id)
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query, req.Title, req.Description, req.Schedule, req.UserID, req.ID)
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrEventNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// Delete removes an event and all of its participation rows in one
// transaction. Unrelated participation rows are untouched.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM event_commits WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting event commits: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting event: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrEventNotFound
		}

		return nil
	})
}

// Participate records participation once per (event, user) pair. Repeated
// calls are no-ops.
func (r *EventRepository) Participate(ctx context.Context, eventID, userID int64) error {
	query := `
		INSERT INTO event_commits (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, eventID, userID); err != nil {
		return fmt.Errorf("error inserting event commit: %w", err)
	}

	return nil
}

// HasCommit reports whether a user already participates in an event
func (r *EventRepository) HasCommit(ctx context.Context, eventID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM event_commits WHERE event_id = $1 AND user_id = $2)`
	if err := r.db.QueryRow(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking event commit: %w", err)
	}
	return exists, nil
}
