package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/middleware"
)

// EventController handles event and participation endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents returns every event with participation counts
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// UpcomingEvents returns events not yet past, soonest first. No upcoming
// events answers with the message payload older clients key off of.
func (c *EventController) UpcomingEvents(ctx *gin.Context) {
	events, err := c.eventService.Upcoming(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if len(events) == 0 {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Still there are no upcoming Events"})
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateEvent adds an event
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event data"))
		return
	}

	id, err := c.eventService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Event added successfully", "id": id})
}

// UpdateEvent partially edits an event
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event data"))
		return
	}

	updated, err := c.eventService.Update(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteEvent removes an event and its participation rows
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}

// Participate records that a user joins an event; joining twice is a no-op
// that still succeeds.
func (c *EventController) Participate(ctx *gin.Context) {
	var req dto.ParticipateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid participation data"))
		return
	}

	if err := c.eventService.Participate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Participation recorded"})
}

// CheckCommit reports whether a user already joined an event
func (c *EventController) CheckCommit(ctx *gin.Context) {
	var req dto.ParticipateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid participation data"))
		return
	}

	exists, err := c.eventService.HasCommit(ctx, req.EventID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventCommitResponse{EventCommit: exists})
}
