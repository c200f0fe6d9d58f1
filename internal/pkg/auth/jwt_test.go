package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "alumnihub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "a@x.com", "alumnus")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int((24*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" || claims.Role != "alumnus" {
		t.Errorf("claims = %+v, want userID=42 email=a@x.com role=alumnus", claims)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "a@x.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})

	token, _, err := svc.GenerateToken(1, "a@x.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() with wrong secret succeeded, want error")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "empty header", wantErr: ErrInvalidFormat},
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret123" {
		t.Fatal("HashPassword() returned plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() = true for wrong password")
	}
}
