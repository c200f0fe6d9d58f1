package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	pkgauth "github.com/emre/alumnihub/internal/pkg/auth"
)

func testJWTService() *pkgauth.JWTService {
	return pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func TestSignupAlumnusCreatesUserAndBio(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store, testJWTService(), zerolog.Nop())

	resp, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Jane Graduate",
		Email:    "jane@example.com",
		Password: "secret123",
		UserType: "alumnus",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if !resp.SignupStatus {
		t.Fatalf("SignupStatus = false, want true")
	}
	if store.createdUsers != 1 || store.createdBios != 1 {
		t.Errorf("created %d users and %d bios, want exactly 1 of each",
			store.createdUsers, store.createdBios)
	}

	user := store.users["jane@example.com"]
	if user.AlumnusID == nil {
		t.Error("alumnus user has no linked bio id")
	}
	if user.Role != models.RoleAlumnus {
		t.Errorf("role = %q, want alumnus", user.Role)
	}
}

func TestSignupDuplicateEmailEchoes(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store, testJWTService(), zerolog.Nop())

	first := &dto.SignupRequest{
		Name: "First", Email: "taken@example.com", Password: "secret123", UserType: "student",
	}
	if _, err := service.Signup(context.Background(), first); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}

	resp, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name: "Second", Email: "taken@example.com", Password: "secret456", UserType: "alumnus",
	})
	if err != nil {
		t.Fatalf("second Signup() error = %v", err)
	}
	if resp.SignupStatus {
		t.Error("SignupStatus = true for duplicate email")
	}
	if resp.Email != "taken@example.com" {
		t.Errorf("Email = %q, want the existing email echoed", resp.Email)
	}
	if store.createdUsers != 1 {
		t.Errorf("createdUsers = %d, want 1", store.createdUsers)
	}
}

func TestSignupRejectsBadInput(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store, testJWTService(), zerolog.Nop())

	cases := []struct {
		name string
		req  dto.SignupRequest
	}{
		{"bad email", dto.SignupRequest{Name: "A", Email: "not-an-email", Password: "secret123", UserType: "alumnus"}},
		{"short password", dto.SignupRequest{Name: "A", Email: "a@example.com", Password: "abc", UserType: "alumnus"}},
		{"admin type", dto.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123", UserType: "admin"}},
		{"unknown type", dto.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123", UserType: "visitor"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Signup(context.Background(), &tc.req); err == nil {
				t.Error("Signup() succeeded, want validation error")
			}
		})
	}
	if store.createdUsers != 0 {
		t.Errorf("createdUsers = %d, want 0", store.createdUsers)
	}
}

func TestLoginUniformFailure(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store, testJWTService(), zerolog.Nop())

	if _, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name: "Known", Email: "known@example.com", Password: "secret123", UserType: "student",
	}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	unknown, err := service.Login(context.Background(), &dto.LoginRequest{
		Email: "unknown@example.com", Password: "whatever",
	})
	if err != nil {
		t.Fatalf("Login(unknown) error = %v", err)
	}

	wrongPassword, err := service.Login(context.Background(), &dto.LoginRequest{
		Email: "known@example.com", Password: "wrong-password",
	})
	if err != nil {
		t.Fatalf("Login(wrong password) error = %v", err)
	}

	if unknown.LoginStatus || wrongPassword.LoginStatus {
		t.Fatal("login succeeded with bad credentials")
	}
	if unknown.Error != wrongPassword.Error {
		t.Errorf("failure payloads differ: %q vs %q; both cases must look identical",
			unknown.Error, wrongPassword.Error)
	}
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	store := newMockUserStore()
	jwtService := testJWTService()
	service := NewAuthService(store, jwtService, zerolog.Nop())

	if _, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123", UserType: "alumnus",
	}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Email: "jane@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !resp.LoginStatus {
		t.Fatalf("LoginStatus = false, Error = %q", resp.Error)
	}
	if resp.AlumnusID == nil {
		t.Error("alumnus login response has no alumnus_id")
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Role != "alumnus" {
		t.Errorf("token role = %q, want alumnus", claims.Role)
	}
	if claims.UserID != resp.UserID {
		t.Errorf("token user id = %d, want %d", claims.UserID, resp.UserID)
	}
}

func TestRegisterAdminDuplicate(t *testing.T) {
	store := newMockUserStore()
	service := NewAuthService(store, testJWTService(), zerolog.Nop())

	first, err := service.RegisterAdmin(context.Background(), &dto.AdminRegisterRequest{
		Name: "Admin", Email: "admin@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("RegisterAdmin() error = %v", err)
	}
	if !first.RegisterStatus {
		t.Fatal("first registration failed")
	}

	second, err := service.RegisterAdmin(context.Background(), &dto.AdminRegisterRequest{
		Name: "Other", Email: "admin@example.com", Password: "secret456",
	})
	if err != nil {
		t.Fatalf("RegisterAdmin() duplicate error = %v", err)
	}
	if second.RegisterStatus {
		t.Error("duplicate registration reported success")
	}
	if second.Error == "" {
		t.Error("duplicate registration carries no error message")
	}
}
