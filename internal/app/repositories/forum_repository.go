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
)

// ForumRepository handles database operations for forum topics and comments
type ForumRepository struct {
	db *pgxpool.Pool
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{db: db}
}

// ListTopics returns every topic joined with its creator's name and comment
// count, newest topic first. A topic whose creator was deleted still lists,
// with an empty created_by.
func (r *ForumRepository) ListTopics(ctx context.Context) ([]dto.ForumListItem, error) {
	query := `
		SELECT t.id, t.title, t.description, t.user_id, t.created_at,
			COUNT(c.id) AS comments_count,
			COALESCE(u.name, '') AS created_by
		FROM forum_topics t
		LEFT JOIN forum_comments c ON c.topic_id = t.id
		LEFT JOIN users u ON u.id = t.user_id
		GROUP BY t.id, u.name
		ORDER BY t.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying forum topics: %w", err)
	}
	defer rows.Close()

	items := []dto.ForumListItem{}
	for rows.Next() {
		var item dto.ForumListItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.UserID,
			&item.DateCreated,
			&item.CommentsCount,
			&item.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning forum topic row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating forum topic rows: %w", err)
	}

	return items, nil
}

// GetTopicByID retrieves a topic by id
func (r *ForumRepository) GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error) {
	query := `
		SELECT id, title, description, user_id, created_at
		FROM forum_topics
		WHERE id = $1
	`

	var topic models.ForumTopic
	err := r.db.QueryRow(ctx, query, id).Scan(
		&topic.ID,
		&topic.Title,
		&topic.Description,
		&topic.UserID,
		&topic.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrForumNotFound
		}
		return nil, fmt.Errorf("error scanning forum topic: %w", err)
	}

	return &topic, nil
}

// CreateTopic inserts a topic and returns the generated id
func (r *ForumRepository) CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error) {
	query := `
		INSERT INTO forum_topics (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, topic.Title, topic.Description, topic.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting forum topic: %w", err)
	}

	return id, nil
}

// UpdateTopic rewrites a topic's title and description
func (r *ForumRepository) UpdateTopic(ctx context.Context, id int64, title, description string) error {
	query := `UPDATE forum_topics SET title = $1, description = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, title, description, id)
	if err != nil {
		return fmt.Errorf("error updating forum topic: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrForumNotFound
	}

	return nil
}

// DeleteTopic removes a topic and its comments in one transaction
func (r *ForumRepository) DeleteTopic(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM forum_comments WHERE topic_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting topic comments: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM forum_topics WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting forum topic: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrForumNotFound
		}

		return nil
	})
}

// ListComments returns the comments of one topic joined with their authors'
// names, oldest first.
func (r *ForumRepository) ListComments(ctx context.Context, topicID int64) ([]dto.CommentItem, error) {
	query := `
		SELECT c.id, c.topic_id, c.comment, c.user_id, c.created_at,
			COALESCE(u.name, '') AS name
		FROM forum_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.topic_id = $1
		ORDER BY c.id ASC
	`

	rows, err := r.db.Query(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	items := []dto.CommentItem{}
	for rows.Next() {
		var item dto.CommentItem
		err := rows.Scan(
			&item.ID,
			&item.TopicID,
			&item.Comment,
			&item.UserID,
			&item.DateCreated,
			&item.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return items, nil
}

// CreateComment inserts a comment and returns the generated id
func (r *ForumRepository) CreateComment(ctx context.Context, comment *models.ForumComment) (int64, error) {
	query := `
		INSERT INTO forum_comments (topic_id, comment, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, comment.TopicID, comment.Comment, comment.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting comment: %w", err)
	}

	return id, nil
}

// UpdateComment rewrites a comment's text
func (r *ForumRepository) UpdateComment(ctx context.Context, id int64, text string) error {
	result, err := r.db.Exec(ctx, `UPDATE forum_comments SET comment = $1 WHERE id = $2`, text, id)
	if err != nil {
		return fmt.Errorf("error updating comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}

// DeleteComment removes a single comment
func (r *ForumRepository) DeleteComment(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM forum_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}
