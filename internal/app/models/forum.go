package models

import "time"

// ForumTopic is a discussion thread opened by a user.
type ForumTopic struct {
	ID          int64     `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ForumComment is a reply inside a topic.
type ForumComment struct {
	ID        int64     `json:"_id"`
	TopicID   int64     `json:"topic_id"`
	Comment   string    `json:"comment"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
