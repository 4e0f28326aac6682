package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEngineError_IsMatchesByCode(t *testing.T) {
	err := StructureError("missing field", nil).WithDetail("field", "title")
	wrapped := fmt.Errorf("extract vacancy: %w", err)

	if !errors.Is(wrapped, ErrStructure) {
		t.Fatalf("expected wrapped error to match ErrStructure")
	}
	if errors.Is(wrapped, ErrNetwork) {
		t.Errorf("structure error should not match ErrNetwork")
	}
	if CodeOf(wrapped) != ErrCodeStructure {
		t.Errorf("Expected code %s, got %s", ErrCodeStructure, CodeOf(wrapped))
	}
}

func TestEngineError_UnwrapsUnderlying(t *testing.T) {
	cause := errors.New("connection refused")
	err := NetworkError("http://example.com", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected underlying cause to be reachable")
	}
	if !strings.Contains(err.Error(), "NETWORK_ERROR") {
		t.Errorf("Expected code in message, got %q", err.Error())
	}
	if err.Details["url"] != "http://example.com" {
		t.Errorf("Expected url detail, got %v", err.Details["url"])
	}
}

func TestCodeOf_PlainError(t *testing.T) {
	if code := CodeOf(errors.New("plain")); code != "" {
		t.Errorf("Expected empty code, got %q", code)
	}
}
