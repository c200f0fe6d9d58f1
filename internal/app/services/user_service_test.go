package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

func seedUser(t *testing.T, store *mockUserStore, email string) int64 {
	t.Helper()
	hash, err := auth.HashPassword("original123")
	if err != nil {
		t.Fatal(err)
	}
	id, err := store.Create(context.Background(), &models.User{
		Name: "Original", Email: email, Password: hash, Role: models.RoleStudent,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	store := newMockUserStore()
	service := NewUserService(store, zerolog.Nop())
	id := seedUser(t, store, "user@example.com")
	before := store.users["user@example.com"].Password

	err := service.Update(context.Background(), id, &dto.UpdateUserRequest{
		Name: "Renamed", Email: "user@example.com", Role: "student",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	after := store.users["user@example.com"]
	if after.Password != before {
		t.Error("password hash changed on update without a new password")
	}
	if after.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", after.Name)
	}
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	store := newMockUserStore()
	service := NewUserService(store, zerolog.Nop())
	id := seedUser(t, store, "user@example.com")
	before := store.users["user@example.com"].Password

	err := service.Update(context.Background(), id, &dto.UpdateUserRequest{
		Name: "Original", Email: "user@example.com", Role: "student", Password: "newsecret",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	after := store.users["user@example.com"].Password
	if after == before {
		t.Fatal("password hash unchanged after password update")
	}
	if after == "newsecret" {
		t.Fatal("password stored in plain text")
	}
	if !auth.CheckPassword(after, "newsecret") {
		t.Error("new password does not verify against stored hash")
	}
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	store := newMockUserStore()
	service := NewUserService(store, zerolog.Nop())
	id := seedUser(t, store, "user@example.com")

	err := service.Update(context.Background(), id, &dto.UpdateUserRequest{
		Name: "X", Email: "user@example.com", Role: "superuser",
	})
	if err == nil {
		t.Error("Update() accepted unknown role")
	}
}

func TestDeleteUser(t *testing.T) {
	store := newMockUserStore()
	service := NewUserService(store, zerolog.Nop())
	id := seedUser(t, store, "user@example.com")

	if err := service.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := store.users["user@example.com"]; ok {
		t.Error("user still present after delete")
	}

	if err := service.Delete(context.Background(), id); err == nil {
		t.Error("deleting a missing user succeeded")
	}
}

func TestDeleteAlumnusUserRemovesLinkedBio(t *testing.T) {
	store := newMockUserStore()
	service := NewUserService(store, zerolog.Nop())

	userID, bioID, err := store.CreateAlumnusAccount(context.Background(),
		&models.User{Name: "Jane", Email: "jane@example.com", Role: models.RoleAlumnus},
		&models.AlumnusBio{Name: "Jane", Email: "jane@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	_, otherBioID, err := store.CreateAlumnusAccount(context.Background(),
		&models.User{Name: "John", Email: "john@example.com", Role: models.RoleAlumnus},
		&models.AlumnusBio{Name: "John", Email: "john@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	if err := service.Delete(context.Background(), userID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if store.bios[bioID] {
		t.Error("linked bio survived the account delete")
	}
	if !store.bios[otherBioID] {
		t.Error("unrelated bio removed by the account delete")
	}
	if _, ok := store.users["john@example.com"]; !ok {
		t.Error("unrelated account removed by the delete")
	}
}
