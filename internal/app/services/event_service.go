package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
)

type eventStore interface {
	ListWithCommitCount(ctx context.Context) ([]dto.EventListItem, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) (int64, error)
	Update(ctx context.Context, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, eventID, userID int64) error
	HasCommit(ctx context.Context, eventID, userID int64) (bool, error)
}

// EventService handles events and participation
type EventService struct {
	eventStore eventStore
	logger     zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventStore eventStore, logger zerolog.Logger) *EventService {
	return &EventService{eventStore: eventStore, logger: logger}
}

// List returns every event with participation counts, latest schedule first
func (s *EventService) List(ctx context.Context) ([]dto.EventListItem, error) {
	return s.eventStore.ListWithCommitCount(ctx)
}

// Upcoming returns events not yet past, soonest first
func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	return s.eventStore.ListUpcoming(ctx, time.Now())
}

// Create adds an event
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (int64, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Schedule:    req.Schedule,
		UserID:      req.UserID,
	}

	id, err := s.eventStore.Create(ctx, event)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("event_id", id).Time("schedule", req.Schedule).Msg("Event created")
	return id, nil
}

// Update partially edits an event
func (s *EventService) Update(ctx context.Context, req *dto.UpdateEventRequest) (*models.Event, error) {
	return s.eventStore.Update(ctx, req)
}

// Delete removes an event and its participation records
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.eventStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("event_id", id).Msg("Event deleted")
	return nil
}

// Participate records that a user joins an event. Joining twice leaves a
// single record and still succeeds.
func (s *EventService) Participate(ctx context.Context, req *dto.ParticipateRequest) error {
	if _, err := s.eventStore.GetByID(ctx, req.EventID); err != nil {
		return err
	}
	return s.eventStore.Participate(ctx, req.EventID, req.UserID)
}

// HasCommit reports whether a user already joined an event
func (s *EventService) HasCommit(ctx context.Context, eventID, userID int64) (bool, error) {
	return s.eventStore.HasCommit(ctx, eventID, userID)
}
