package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Handle format rule: alphanumeric, length within [MinHandleLen, MaxHandleLen].
const (
	MinHandleLen = 5
	MaxHandleLen = 20

	// DefaultMaxAttempts bounds how many candidates ReserveHandle draws
	// before giving up. Collisions are rare for populations in the low
	// thousands, so hitting the cap signals a misbehaving candidate source
	// or an exhausted handle space.
	DefaultMaxAttempts = 1000
)

// ErrHandleExhausted is returned when no valid, unused handle could be
// obtained within the attempt bound.
var ErrHandleExhausted = errors.New("handle candidates exhausted")

// Registry allocates unique numeric ids and reserves unique handles for
// one population batch.
type Registry struct {
	nextID      int
	handles     map[string]struct{}
	maxAttempts int
}

// New creates a registry. maxAttempts <= 0 selects DefaultMaxAttempts.
func New(maxAttempts int) *Registry {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Registry{
		nextID:      1,
		handles:     make(map[string]struct{}),
		maxAttempts: maxAttempts,
	}
}

// Reset restarts the id sequence at 1 and forgets all reserved handles.
func (r *Registry) Reset() {
	r.nextID = 1
	r.handles = make(map[string]struct{})
}

// AllocateID returns the next numeric id. Ids are sequential from 1 and
// never reused within a batch.
func (r *Registry) AllocateID() int {
	id := r.nextID
	r.nextID++
	return id
}

// ReserveHandle draws candidates from candidate until one normalizes to a
// valid, unused handle, then marks it reserved and returns it. It returns
// ErrHandleExhausted once the attempt bound is exceeded.
func (r *Registry) ReserveHandle(candidate func() string) (string, error) {
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		handle := Normalize(candidate())
		if len(handle) < MinHandleLen {
			continue
		}
		if _, taken := r.handles[handle]; taken {
			continue
		}
		r.handles[handle] = struct{}{}
		return handle, nil
	}
	return "", fmt.Errorf("%w after %d attempts", ErrHandleExhausted, r.maxAttempts)
}

// Normalize strips non-alphanumeric characters and truncates to
// MaxHandleLen. The result may still be too short to be a valid handle.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, ch := range raw {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	handle := b.String()
	if len(handle) > MaxHandleLen {
		handle = handle[:MaxHandleLen]
	}
	return handle
}
