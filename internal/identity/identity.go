package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source supplies human-readable identity material for one persona.
type Source interface {
	// DisplayName returns a full display name.
	DisplayName() string

	// HandleCandidate returns a raw username candidate. Callers normalize
	// and deduplicate; candidates need not be valid handles.
	HandleCandidate() string

	// ContactAddress returns an email address for the given handle.
	ContactAddress(handle string) string

	// BirthDate returns a date of birth for a person aged within
	// [minAge, maxAge] years.
	BirthDate(minAge, maxAge int) time.Time
}

// Faker is a Source backed by gofakeit. It is seedable so identity output
// can be reproduced alongside a seeded generation run.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker creates a seeded fake-identity source.
func NewFaker(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

func (s *Faker) DisplayName() string {
	return s.f.Name()
}

func (s *Faker) HandleCandidate() string {
	return s.f.Username()
}

func (s *Faker) ContactAddress(handle string) string {
	return fmt.Sprintf("%s@%s", strings.ToLower(handle), s.f.DomainName())
}

func (s *Faker) BirthDate(minAge, maxAge int) time.Time {
	now := time.Now()
	oldest := now.AddDate(-maxAge, 0, 0)
	youngest := now.AddDate(-minAge, 0, 0)
	return s.f.DateRange(oldest, youngest)
}
