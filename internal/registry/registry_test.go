package registry

import (
	"errors"
	"fmt"
	"testing"
)

func TestAllocateID_Sequential(t *testing.T) {
	r := New(0)
	for want := 1; want <= 5; want++ {
		if got := r.AllocateID(); got != want {
			t.Errorf("AllocateID = %d, want %d", got, want)
		}
	}
}

func TestReset(t *testing.T) {
	r := New(0)
	r.AllocateID()
	r.AllocateID()
	if _, err := r.ReserveHandle(func() string { return "alice123" }); err != nil {
		t.Fatalf("ReserveHandle failed: %v", err)
	}

	r.Reset()

	if got := r.AllocateID(); got != 1 {
		t.Errorf("AllocateID after Reset = %d, want 1", got)
	}
	// The handle set is fresh, so the same handle is available again.
	h, err := r.ReserveHandle(func() string { return "alice123" })
	if err != nil || h != "alice123" {
		t.Errorf("ReserveHandle after Reset = %q, %v, want alice123", h, err)
	}
}

func TestReserveHandle_Uniqueness(t *testing.T) {
	r := New(0)
	i := 0
	candidate := func() string {
		i++
		// Repeats every candidate once before moving on.
		return fmt.Sprintf("trader%d", (i+1)/2)
	}

	seen := make(map[string]bool)
	for n := 0; n < 20; n++ {
		h, err := r.ReserveHandle(candidate)
		if err != nil {
			t.Fatalf("ReserveHandle failed at %d: %v", n, err)
		}
		if seen[h] {
			t.Fatalf("handle %q issued twice", h)
		}
		seen[h] = true
	}
}

func TestReserveHandle_Normalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "alice123", "alice123"},
		{"strips_separators", "bob.smith_99", "bobsmith99"},
		{"strips_unicode", "émile-durand", "miledurand"},
		{"truncates", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst"},
		{"mixed_case_kept", "TraderJoe", "TraderJoe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(0)
			h, err := r.ReserveHandle(func() string { return tt.raw })
			if err != nil {
				t.Fatalf("ReserveHandle(%q) failed: %v", tt.raw, err)
			}
			if h != tt.want {
				t.Errorf("ReserveHandle(%q) = %q, want %q", tt.raw, h, tt.want)
			}
		})
	}
}

func TestReserveHandle_RejectsShort(t *testing.T) {
	// A source that only produces 4-character candidates must surface an
	// exhaustion error instead of looping forever.
	r := New(25)
	calls := 0
	_, err := r.ReserveHandle(func() string {
		calls++
		return "abcd"
	})
	if !errors.Is(err, ErrHandleExhausted) {
		t.Fatalf("error = %v, want ErrHandleExhausted", err)
	}
	if calls != 25 {
		t.Errorf("candidate called %d times, want 25", calls)
	}
}

func TestReserveHandle_ExhaustedOnCollisions(t *testing.T) {
	r := New(10)
	if _, err := r.ReserveHandle(func() string { return "same1" }); err != nil {
		t.Fatalf("first ReserveHandle failed: %v", err)
	}
	_, err := r.ReserveHandle(func() string { return "same1" })
	if !errors.Is(err, ErrHandleExhausted) {
		t.Errorf("error = %v, want ErrHandleExhausted", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("a.b!c d-e_f1"); got != "abcdef1" {
		t.Errorf("Normalize = %q, want abcdef1", got)
	}
}
