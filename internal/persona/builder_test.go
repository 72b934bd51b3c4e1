package persona

import (
	"testing"
)

func TestBuilder_BuildAll(t *testing.T) {
	b := NewBuilder(newTestGenerator(t, 7), nil)

	profiles, err := b.BuildAll(25)
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	if len(profiles) != 25 {
		t.Fatalf("got %d profiles, want 25", len(profiles))
	}

	handles := make(map[string]bool)
	for i, p := range profiles {
		if p.ID != i+1 {
			t.Errorf("profile %d: ID = %d, want %d", i, p.ID, i+1)
		}
		if handles[p.Handle] {
			t.Errorf("handle %q issued twice", p.Handle)
		}
		handles[p.Handle] = true
	}
}

func TestBuilder_FreshBatchRestartsIDs(t *testing.T) {
	b := NewBuilder(newTestGenerator(t, 8), nil)

	first, err := b.BuildAll(5)
	if err != nil {
		t.Fatalf("first BuildAll failed: %v", err)
	}
	second, err := b.BuildAll(5)
	if err != nil {
		t.Fatalf("second BuildAll failed: %v", err)
	}

	if first[4].ID != 5 || second[0].ID != 1 {
		t.Errorf("second batch ids = %d..%d, want a fresh 1-based sequence",
			second[0].ID, second[4].ID)
	}
}

func TestBuilder_PersonasLazy(t *testing.T) {
	b := NewBuilder(newTestGenerator(t, 9), nil)

	var got []Profile
	for p, err := range b.Personas(10) {
		if err != nil {
			t.Fatalf("Personas yielded error: %v", err)
		}
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	if len(got) != 3 {
		t.Fatalf("collected %d profiles after early break, want 3", len(got))
	}
}

func TestBuilder_InvalidBatchSize(t *testing.T) {
	b := NewBuilder(newTestGenerator(t, 10), nil)

	for _, n := range []int{0, -1} {
		if _, err := b.BuildAll(n); err == nil {
			t.Errorf("BuildAll(%d) succeeded, want error", n)
		}
	}
}
