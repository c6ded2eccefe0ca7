package bytereverse

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

func randomBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.UintN(256))
	}
	return b
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"ABC", []byte{0x41, 0x42, 0x43}, []byte{0x43, 0x42, 0x41}},
		{"single byte", []byte{0x01}, []byte{0x01}},
		{"even length", []byte{1, 2, 3, 4}, []byte{4, 3, 2, 1}},
		{"nul bytes", []byte{0, 1, 0, 2}, []byte{2, 0, 1, 0}},
		{"empty", []byte{}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := bytes.Clone(tt.in)

			got := Reverse(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Reverse(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !bytes.Equal(tt.in, orig) {
				t.Error("Reverse modified its input")
			}
		})
	}
}

func TestReverse_Properties(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 4096, 65537} {
		src := randomBytes(n, uint64(n))
		got := Reverse(src)

		if len(got) != n {
			t.Fatalf("n=%d: length %d", n, len(got))
		}
		for i := range got {
			if got[i] != src[n-1-i] {
				t.Fatalf("n=%d: out[%d] = %#x, want %#x", n, i, got[i], src[n-1-i])
			}
		}
		if !bytes.Equal(Reverse(got), src) {
			t.Fatalf("n=%d: reversing twice did not restore the input", n)
		}
	}
}

func TestReverseInPlace(t *testing.T) {
	b := []byte("stressed")
	ReverseInPlace(b)
	if string(b) != "desserts" {
		t.Errorf("ReverseInPlace() = %q, want %q", b, "desserts")
	}

	ReverseInPlace(nil)
}

func TestReverseContext_Concurrent(t *testing.T) {
	src := randomBytes(1<<20+123, 42)

	got, err := ReverseContext(context.Background(), src, WithParallelThreshold(1024))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, Reverse(src)) {
		t.Error("concurrent reversal differs from sequential reversal")
	}
}

func TestReverseContext_BelowThreshold(t *testing.T) {
	src := []byte("ABC")

	got, err := ReverseContext(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "CBA" {
		t.Errorf("ReverseContext() = %q, want %q", got, "CBA")
	}
}

func TestReverseContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ReverseContext(ctx, randomBytes(1<<20, 7), WithParallelThreshold(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got != nil {
		t.Error("expected nil buffer on cancellation")
	}
}
