package dto

import "time"

// CreateForumRequest opens a new topic; the legacy creator field is "userId".
type CreateForumRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	UserID      int64  `json:"userId" binding:"required"`
}

// UpdateForumRequest edits a topic's title and description
type UpdateForumRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ForumListItem is one row of the forum listing: the topic joined with its
// creator's name and comment count.
type ForumListItem struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	UserID        int64     `json:"user_id"`
	DateCreated   time.Time `json:"date_created"`
	CommentsCount int64     `json:"comments_count"`
	CreatedBy     string    `json:"created_by,omitempty"`
}

// TopicCommentsRequest asks for the comments of one topic
type TopicCommentsRequest struct {
	TopicID int64 `json:"topic_id" binding:"required"`
}

// CommentItem is one comment joined with its author's name
type CommentItem struct {
	ID          int64     `json:"id"`
	TopicID     int64     `json:"topic_id"`
	Comment     string    `json:"comment"`
	UserID      int64     `json:"user_id"`
	DateCreated time.Time `json:"date_created"`
	Name        string    `json:"name,omitempty"`
}

// AddCommentRequest posts a comment; the legacy body field is "c".
type AddCommentRequest struct {
	Comment string `json:"c" binding:"required"`
	UserID  int64  `json:"user_id" binding:"required"`
	TopicID int64  `json:"topic_id" binding:"required"`
}

// UpdateCommentRequest edits a comment's text
type UpdateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}
