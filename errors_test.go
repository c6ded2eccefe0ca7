package bytereverse

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorAliases(t *testing.T) {
	err := fmt.Errorf("reverse: %w", &Error{Kind: KindReadFailed, Path: "in.bin"})

	if !errors.Is(err, ErrReadFailed) {
		t.Error("expected errors.Is to match ErrReadFailed through the alias")
	}
	if KindOf(err) != KindReadFailed {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindReadFailed)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(e.Error(), "in.bin") {
		t.Errorf("error should contain path, got: %s", e.Error())
	}
}
