package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

func handleErr(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(ctx, err)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not an error payload: %v", err)
	}
	return recorder.Code, body.Error
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"custom bad request", apperrors.NewBadRequestError("Invalid alumnus ID format"), http.StatusBadRequest, "Invalid alumnus ID format"},
		{"custom validation", apperrors.NewValidationError("Name and email are required"), http.StatusBadRequest, "Name and email are required"},
		{"custom not found", apperrors.NewNotFoundError("Route not found"), http.StatusNotFound, "Route not found"},
		{"entity not found", apperrors.ErrEventNotFound, http.StatusNotFound, "event not found"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "email already exists"},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := handleErr(t, tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if message != tt.wantError {
				t.Errorf("error = %q, want %q", message, tt.wantError)
			}
		})
	}
}
