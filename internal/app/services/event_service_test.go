package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

func createTestEvent(t *testing.T, service *EventService, schedule time.Time) int64 {
	t.Helper()
	id, err := service.Create(context.Background(), &dto.CreateEventRequest{
		Title:       "Reunion",
		Description: "Annual reunion",
		Schedule:    schedule,
		UserID:      1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return id
}

func TestParticipateTwiceKeepsOneRecord(t *testing.T) {
	store := newMockEventStore()
	service := NewEventService(store, zerolog.Nop())
	eventID := createTestEvent(t, service, time.Now().Add(24*time.Hour))

	req := &dto.ParticipateRequest{EventID: eventID, UserID: 7}
	for i := 0; i < 2; i++ {
		if err := service.Participate(context.Background(), req); err != nil {
			t.Fatalf("Participate() call %d error = %v", i+1, err)
		}
	}

	if len(store.commits) != 1 {
		t.Errorf("stored %d participation records, want 1", len(store.commits))
	}

	joined, err := service.HasCommit(context.Background(), eventID, 7)
	if err != nil {
		t.Fatalf("HasCommit() error = %v", err)
	}
	if !joined {
		t.Error("HasCommit() = false after participating")
	}
}

func TestParticipateUnknownEvent(t *testing.T) {
	service := NewEventService(newMockEventStore(), zerolog.Nop())

	err := service.Participate(context.Background(), &dto.ParticipateRequest{EventID: 99, UserID: 1})
	if !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("Participate() error = %v, want event not found", err)
	}
}

func TestDeleteEventRemovesItsCommitsOnly(t *testing.T) {
	store := newMockEventStore()
	service := NewEventService(store, zerolog.Nop())

	doomed := createTestEvent(t, service, time.Now().Add(time.Hour))
	kept := createTestEvent(t, service, time.Now().Add(2*time.Hour))

	ctx := context.Background()
	if err := service.Participate(ctx, &dto.ParticipateRequest{EventID: doomed, UserID: 1}); err != nil {
		t.Fatal(err)
	}
	if err := service.Participate(ctx, &dto.ParticipateRequest{EventID: kept, UserID: 1}); err != nil {
		t.Fatal(err)
	}

	if err := service.Delete(ctx, doomed); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(store.commits) != 1 {
		t.Fatalf("remaining commits = %d, want 1", len(store.commits))
	}
	stillJoined, _ := service.HasCommit(ctx, kept, 1)
	if !stillJoined {
		t.Error("unrelated participation record was removed")
	}
}

func TestUpcomingExcludesPastEvents(t *testing.T) {
	store := newMockEventStore()
	service := NewEventService(store, zerolog.Nop())

	past := createTestEvent(t, service, time.Now().Add(-time.Hour))
	future := createTestEvent(t, service, time.Now().Add(time.Hour))

	upcoming, err := service.Upcoming(context.Background())
	if err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}

	for _, event := range upcoming {
		if event.ID == past {
			t.Error("past event listed as upcoming")
		}
	}
	found := false
	for _, event := range upcoming {
		if event.ID == future {
			found = true
		}
	}
	if !found {
		t.Error("future event missing from upcoming listing")
	}
}
