package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/emre/alumnihub/internal/app/models/dto"
)

// StatsRepository computes dashboard aggregates
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetCounts returns the dashboard totals in a single round trip. Counts are
// recomputed on every call rather than cached.
func (r *StatsRepository) GetCounts(ctx context.Context, now time.Time) (*dto.CountsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM forum_topics),
			(SELECT COUNT(*) FROM careers),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM events WHERE schedule >= $1),
			(SELECT COUNT(*) FROM alumnus_bios)
	`

	var counts dto.CountsResponse
	err := r.db.QueryRow(ctx, query, now).Scan(
		&counts.Forums,
		&counts.Jobs,
		&counts.Events,
		&counts.UpEvents,
		&counts.Alumni,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying counts: %w", err)
	}

	return &counts, nil
}
