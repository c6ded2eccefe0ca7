package bytereverse

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"single byte", []byte{0x7f}},
		{"text", []byte("hello, world\n")},
		{"binary", []byte{0x00, 0x01, 0xfe, 0xff, 0x00}},
		{"large", bytes.Repeat([]byte("0123456789abcdef"), 64<<10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.bin")

			n, err := Write(path, tt.data)
			if err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if n != len(tt.data) {
				t.Errorf("Write() = %d, want %d", n, len(tt.data))
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Error("round trip mismatch")
			}
		})
	}
}

func TestWrite_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, []byte("a much longer previous content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Write(path, []byte("short")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short" {
		t.Errorf("expected truncated content %q, got %q", "short", got)
	}
}

func TestWrite_CreateFailed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.bin")

	n, err := Write(path, []byte("data"))
	if n != 0 {
		t.Errorf("expected 0 bytes written, got %d", n)
	}
	if !errors.Is(err, ErrCreateFailed) {
		t.Fatalf("expected ErrCreateFailed, got %T: %v", err, err)
	}
}

func TestWrite_EmptyBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	_, err := Write(path, nil)
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.bin")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !Exists(path) {
		t.Error("expected file to exist")
	}
	if !Exists(dir) {
		t.Error("expected directory to exist")
	}
	if Exists(filepath.Join(dir, "absent.bin")) {
		t.Error("expected missing file not to exist")
	}
}
