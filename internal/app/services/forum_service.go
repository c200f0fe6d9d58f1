package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
)

type forumStore interface {
	ListTopics(ctx context.Context) ([]dto.ForumListItem, error)
	GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error)
	CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error)
	UpdateTopic(ctx context.Context, id int64, title, description string) error
	DeleteTopic(ctx context.Context, id int64) error
	ListComments(ctx context.Context, topicID int64) ([]dto.CommentItem, error)
	CreateComment(ctx context.Context, comment *models.ForumComment) (int64, error)
	UpdateComment(ctx context.Context, id int64, text string) error
	DeleteComment(ctx context.Context, id int64) error
}

// ForumService handles discussion topics and comments
type ForumService struct {
	forumStore forumStore
	logger     zerolog.Logger
}

// NewForumService creates a new ForumService
func NewForumService(forumStore forumStore, logger zerolog.Logger) *ForumService {
	return &ForumService{forumStore: forumStore, logger: logger}
}

// ListTopics returns every topic with comment counts and creator names
func (s *ForumService) ListTopics(ctx context.Context) ([]dto.ForumListItem, error) {
	return s.forumStore.ListTopics(ctx)
}

// CreateTopic opens a new topic
func (s *ForumService) CreateTopic(ctx context.Context, req *dto.CreateForumRequest) (int64, error) {
	topic := &models.ForumTopic{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	}

	id, err := s.forumStore.CreateTopic(ctx, topic)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("topic_id", id).Int64("user_id", req.UserID).Msg("Forum topic created")
	return id, nil
}

// UpdateTopic edits a topic's title and description
func (s *ForumService) UpdateTopic(ctx context.Context, req *dto.UpdateForumRequest) error {
	return s.forumStore.UpdateTopic(ctx, req.ID, req.Title, req.Description)
}

// DeleteTopic removes a topic and all of its comments
func (s *ForumService) DeleteTopic(ctx context.Context, id int64) error {
	if err := s.forumStore.DeleteTopic(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("topic_id", id).Msg("Forum topic deleted")
	return nil
}

// ListComments returns the comments of a topic, oldest first
func (s *ForumService) ListComments(ctx context.Context, topicID int64) ([]dto.CommentItem, error) {
	return s.forumStore.ListComments(ctx, topicID)
}

// AddComment posts a comment under an existing topic
func (s *ForumService) AddComment(ctx context.Context, req *dto.AddCommentRequest) (int64, error) {
	if _, err := s.forumStore.GetTopicByID(ctx, req.TopicID); err != nil {
		return 0, err
	}

	comment := &models.ForumComment{
		TopicID: req.TopicID,
		Comment: req.Comment,
		UserID:  req.UserID,
	}

	return s.forumStore.CreateComment(ctx, comment)
}

// UpdateComment edits a comment's text
func (s *ForumService) UpdateComment(ctx context.Context, id int64, text string) error {
	return s.forumStore.UpdateComment(ctx, id, text)
}

// DeleteComment removes a single comment
func (s *ForumService) DeleteComment(ctx context.Context, id int64) error {
	return s.forumStore.DeleteComment(ctx, id)
}
