package apperr

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationWrapsSentinel(t *testing.T) {
	err := Validation("amount must be positive, got %s", "-5")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if errors.Is(err, ErrPersistence) {
		t.Error("validation error must not match ErrPersistence")
	}
	if !strings.Contains(err.Error(), "-5") {
		t.Errorf("expected reason in message, got %q", err.Error())
	}
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Persistence("write reservations", cause)
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", Validation("passwords do not match"), "validation failed: passwords do not match"},
		{"permission", Permission("location access denied"), "permission denied: location access denied"},
		{"persistence", Persistence("read credits", errors.New("io")), "Could not save or load your data. Please try again."},
		{"other", errors.New("boom"), "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("%s: UserMessage() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
