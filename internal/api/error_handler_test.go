package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/identity-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, domain.ErrInvalidInput.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("status = %d, want %d", code, tc.wantCode)
			}
			if msg != tc.wantMsg {
				t.Errorf("message = %q, want %q", msg, tc.wantMsg)
			}
		})
	}
}

// Wrapped domain errors keep their mapping: services may add context with
// fmt.Errorf("%w: ...") without changing the status code.
func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("%w: email must contain exactly one @", domain.ErrInvalidInput)
	code, _ := renderError(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
	if msg != "missing authorization header" {
		t.Fatalf("message = %q", msg)
	}
}

// Unknown errors must never leak their cause to the client.
func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("message = %q, leaked internal detail", msg)
	}
}
