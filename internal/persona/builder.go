package persona

import (
	"fmt"
	"iter"
	"log/slog"
)

// Builder drives the generator N times to produce one population batch.
type Builder struct {
	gen    *Generator
	logger *slog.Logger
}

// NewBuilder creates a population builder.
func NewBuilder(gen *Generator, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{gen: gen, logger: logger}
}

// Personas returns a lazy, finite sequence of n generated profiles. The
// uniqueness registry is reset at the start, so iterating again begins a
// fresh id sequence and handle set. Generation stops at the first error.
func (b *Builder) Personas(n int) iter.Seq2[Profile, error] {
	return func(yield func(Profile, error) bool) {
		if n <= 0 {
			yield(Profile{}, fmt.Errorf("batch size must be >= 1, got %d", n))
			return
		}

		b.gen.reg.Reset()
		for i := 0; i < n; i++ {
			p, err := b.gen.Generate()
			if err != nil {
				yield(Profile{}, fmt.Errorf("generate persona %d of %d: %w", i+1, n, err))
				return
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

// BuildAll generates a full batch of n profiles.
func (b *Builder) BuildAll(n int) ([]Profile, error) {
	profiles := make([]Profile, 0, max(n, 0))
	for p, err := range b.Personas(n) {
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	b.logger.Info("population generated", "count", len(profiles))
	return profiles, nil
}
