package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/middleware"
)

// ForumController handles discussion topics and comments endpoints
type ForumController struct {
	forumService *services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService *services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// ListTopics returns every topic with comment counts and creator names
func (c *ForumController) ListTopics(ctx *gin.Context) {
	topics, err := c.forumService.ListTopics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// CreateTopic opens a new topic
func (c *ForumController) CreateTopic(ctx *gin.Context) {
	var req dto.CreateForumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid topic data"))
		return
	}

	id, err := c.forumService.CreateTopic(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Topic created successfully", "id": id})
}

// UpdateTopic edits a topic's title and description
func (c *ForumController) UpdateTopic(ctx *gin.Context) {
	var req dto.UpdateForumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid topic data"))
		return
	}

	if err := c.forumService.UpdateTopic(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Topic updated successfully"})
}

// DeleteTopic removes a topic with all of its comments
func (c *ForumController) DeleteTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.forumService.DeleteTopic(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Topic deleted successfully"})
}

// TopicComments lists the comments of one topic
func (c *ForumController) TopicComments(ctx *gin.Context) {
	var req dto.TopicCommentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid topic id"))
		return
	}

	comments, err := c.forumService.ListComments(ctx, req.TopicID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// AddComment posts a comment under a topic
func (c *ForumController) AddComment(ctx *gin.Context) {
	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid comment data"))
		return
	}

	id, err := c.forumService.AddComment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully", "id": id})
}

// UpdateComment edits a comment's text
func (c *ForumController) UpdateComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid comment data"))
		return
	}

	if err := c.forumService.UpdateComment(ctx, id, req.Comment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment updated successfully"})
}

// DeleteComment removes one comment
func (c *ForumController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.forumService.DeleteComment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
}
