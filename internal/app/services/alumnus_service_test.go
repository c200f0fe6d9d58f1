package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

func TestCreateAlumnusStartsVerified(t *testing.T) {
	store := newMockAlumnusStore()
	service := NewAlumnusService(store, &mockAvatarStorage{}, zerolog.Nop())

	created, err := service.Create(context.Background(), &dto.CreateAlumnusRequest{
		Name: "Jane", Email: "jane@example.com", Batch: "2019",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Status != models.AlumnusVerified {
		t.Errorf("status = %d, want verified (%d)", created.Status, models.AlumnusVerified)
	}
}

func TestCreateAlumnusRequiresNameAndEmail(t *testing.T) {
	store := newMockAlumnusStore()
	service := NewAlumnusService(store, &mockAvatarStorage{}, zerolog.Nop())

	_, err := service.Create(context.Background(), &dto.CreateAlumnusRequest{Email: "jane@example.com"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Create() without name: error = %v, want validation failure", err)
	}

	_, err = service.Create(context.Background(), &dto.CreateAlumnusRequest{Name: "Jane"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Create() without email: error = %v, want validation failure", err)
	}
	if len(store.bios) != 0 {
		t.Error("invalid profile reached the store")
	}
}

func TestListAlumniSortsAndResolvesCourses(t *testing.T) {
	store := newMockAlumnusStore()
	store.courses[10] = "Computer Science"
	service := NewAlumnusService(store, &mockAvatarStorage{}, zerolog.Nop())

	courseID := int64(10)
	danglingID := int64(99)
	seed := []*models.AlumnusBio{
		{Name: "Zoe", Email: "zoe@example.com", CourseID: &courseID},
		{Name: "Adam", Email: "adam@example.com"},
		{Name: "Mia", Email: "mia@example.com", CourseID: &danglingID},
	}
	for _, bio := range seed {
		if _, err := store.Create(context.Background(), bio); err != nil {
			t.Fatal(err)
		}
	}

	alumni, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(alumni) != 3 {
		t.Fatalf("len = %d, want 3", len(alumni))
	}

	for i, want := range []string{"Adam", "Mia", "Zoe"} {
		if alumni[i].Name != want {
			t.Errorf("alumni[%d].Name = %q, want %q", i, alumni[i].Name, want)
		}
	}

	if alumni[0].Course != nil {
		t.Errorf("alumnus without course resolved to %q, want null", *alumni[0].Course)
	}
	if alumni[1].Course != nil {
		t.Errorf("alumnus with removed course resolved to %q, want null", *alumni[1].Course)
	}
	if alumni[2].Course == nil || *alumni[2].Course != "Computer Science" {
		t.Error("alumnus course name not resolved")
	}
}

func TestSetStatusTogglesVerification(t *testing.T) {
	store := newMockAlumnusStore()
	service := NewAlumnusService(store, &mockAvatarStorage{}, zerolog.Nop())

	created, err := service.Create(context.Background(), &dto.CreateAlumnusRequest{
		Name: "Jane", Email: "jane@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = service.SetStatus(context.Background(), &dto.SetAlumnusStatusRequest{
		AlumnusID: created.ID, Status: models.AlumnusUnverified,
	})
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if store.bios[created.ID].Status != models.AlumnusUnverified {
		t.Error("status not updated")
	}

	if err := service.SetStatus(context.Background(), &dto.SetAlumnusStatusRequest{
		AlumnusID: 999, Status: 1,
	}); err == nil {
		t.Error("SetStatus() on missing profile succeeded")
	}
}

func TestUpdateAccountWithoutAvatarOrPassword(t *testing.T) {
	store := newMockAlumnusStore()
	storage := &mockAvatarStorage{}
	service := NewAlumnusService(store, storage, zerolog.Nop())

	created, err := service.Create(context.Background(), &dto.CreateAlumnusRequest{
		Name: "Jane", Email: "jane@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = service.UpdateAccount(context.Background(), &dto.UpdateAccountRequest{
		AlumnusID: created.ID,
		UserID:    10,
		Name:      "Jane Updated",
		Email:     "jane@example.com",
	}, nil)
	if err != nil {
		t.Fatalf("UpdateAccount() error = %v", err)
	}

	if len(store.accountUpdates) != 1 {
		t.Fatalf("recorded %d account updates, want 1", len(store.accountUpdates))
	}
	if store.lastAvatar != "" {
		t.Errorf("avatar path = %q, want empty when no file uploaded", store.lastAvatar)
	}
	if store.lastHash != "" {
		t.Errorf("password hash = %q, want empty when password untouched", store.lastHash)
	}
	if len(storage.saved) != 0 {
		t.Error("storage saved a file without an upload")
	}
}

func TestUpdateAccountRejectsShortPassword(t *testing.T) {
	store := newMockAlumnusStore()
	service := NewAlumnusService(store, &mockAvatarStorage{}, zerolog.Nop())

	created, err := service.Create(context.Background(), &dto.CreateAlumnusRequest{
		Name: "Jane", Email: "jane@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = service.UpdateAccount(context.Background(), &dto.UpdateAccountRequest{
		AlumnusID: created.ID,
		UserID:    10,
		Name:      "Jane",
		Email:     "jane@example.com",
		Password:  "abc",
	}, nil)
	if err == nil {
		t.Fatal("UpdateAccount() accepted a too-short password")
	}
	if len(store.accountUpdates) != 0 {
		t.Error("rejected update still reached the store")
	}
}
