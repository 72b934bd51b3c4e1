package identity

import (
	"strings"
	"testing"
	"time"
)

func TestFaker_DisplayName(t *testing.T) {
	s := NewFaker(1)
	name := s.DisplayName()
	if name == "" {
		t.Fatal("DisplayName returned empty string")
	}
	if !strings.Contains(name, " ") {
		t.Errorf("DisplayName = %q, want first and last name", name)
	}
}

func TestFaker_HandleCandidate(t *testing.T) {
	s := NewFaker(2)
	for i := 0; i < 100; i++ {
		if s.HandleCandidate() == "" {
			t.Fatal("HandleCandidate returned empty string")
		}
	}
}

func TestFaker_ContactAddress(t *testing.T) {
	s := NewFaker(3)
	addr := s.ContactAddress("TraderJoe99")
	if !strings.HasPrefix(addr, "traderjoe99@") {
		t.Errorf("ContactAddress = %q, want lowercased handle prefix", addr)
	}
	if !strings.Contains(addr[strings.Index(addr, "@"):], ".") {
		t.Errorf("ContactAddress = %q, want a domain with a TLD", addr)
	}
}

func TestFaker_BirthDate_WithinRange(t *testing.T) {
	s := NewFaker(4)
	for i := 0; i < 100; i++ {
		dob := s.BirthDate(18, 80)
		age := time.Since(dob)
		minDur := 18 * 365 * 24 * time.Hour
		maxDur := 81 * 366 * 24 * time.Hour
		if age < minDur-24*time.Hour || age > maxDur {
			t.Fatalf("BirthDate = %v (age %v), outside 18-80 years", dob, age)
		}
	}
}

func TestFaker_Deterministic(t *testing.T) {
	a, b := NewFaker(42), NewFaker(42)
	for i := 0; i < 20; i++ {
		if x, y := a.HandleCandidate(), b.HandleCandidate(); x != y {
			t.Fatalf("same seed diverged at draw %d: %q != %q", i, x, y)
		}
	}
}
