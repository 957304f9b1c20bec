package shared

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	plain := NewNotFoundError("Contact not found")
	if plain.Error() != "Contact not found" {
		t.Errorf("Unexpected message: %q", plain.Error())
	}

	cause := errors.New("disk full")
	wrapped := NewInternalError(cause)
	if wrapped.Error() != "Internal server error: disk full" {
		t.Errorf("Unexpected message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Expected Unwrap to expose the cause")
	}
}

func TestGetAppErrorThroughWrapping(t *testing.T) {
	appErr := NewConflictError("Username already exists")
	wrapped := fmt.Errorf("register: %w", appErr)

	got, ok := GetAppError(wrapped)
	if !ok {
		t.Fatal("Expected AppError through fmt wrapping")
	}
	if got.StatusCode != 409 {
		t.Errorf("Expected 409, got %d", got.StatusCode)
	}

	if _, ok := GetAppError(errors.New("plain")); ok {
		t.Error("Plain errors must not match")
	}
	if _, ok := GetAppError(nil); ok {
		t.Error("nil must not match")
	}
}

func TestErrorConstructorStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NewBadRequestError(nil, "bad"), 400},
		{NewUnauthorizedError("no"), 401},
		{NewNotFoundError("gone"), 404},
		{NewConflictError("dup"), 409},
		{NewTooManyRequestsError("slow down"), 429},
		{NewInternalError(errors.New("boom")), 500},
	}
	for _, tc := range cases {
		if tc.err.StatusCode != tc.want {
			t.Errorf("Expected %d, got %d for %q", tc.want, tc.err.StatusCode, tc.err.Message)
		}
	}
}
