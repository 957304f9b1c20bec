package dto

import (
	"strings"
	"testing"
)

func TestRegisterRequestValidation(t *testing.T) {
	cases := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{"valid", RegisterRequest{Username: "alice", Password: "secret1"}, ""},
		{"missing username", RegisterRequest{Password: "secret1"}, "Username is required"},
		{"short username", RegisterRequest{Username: "al", Password: "secret1"}, "Username must be at least 3 characters"},
		{"short password", RegisterRequest{Username: "alice", Password: "abc"}, "Password must be at least 4 characters"},
		{"bad email", RegisterRequest{Username: "alice", Password: "secret1", Email: strPtr("not-an-email")}, "Invalid email format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected valid request, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if got := FirstValidationMessage(err); got != tc.wantErr {
				t.Errorf("Expected %q, got %q", tc.wantErr, got)
			}
		})
	}
}

func TestFormatValidationErrorsCollectsAllFields(t *testing.T) {
	err := RegisterRequest{}.Validate()
	if err == nil {
		t.Fatal("Expected a validation error")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 2 {
		t.Fatalf("Expected 2 field errors, got %d", len(formatted))
	}
	fields := make([]string, 0, len(formatted))
	for _, f := range formatted {
		fields = append(fields, f.Field)
	}
	joined := strings.Join(fields, ",")
	if !strings.Contains(joined, "Username") || !strings.Contains(joined, "Password") {
		t.Errorf("Expected Username and Password errors, got %s", joined)
	}
}

func TestFirstValidationMessageFallback(t *testing.T) {
	if got := FirstValidationMessage(nil); got != "Invalid request" {
		t.Errorf("Expected fallback message, got %q", got)
	}
}

func strPtr(s string) *string {
	return &s
}
