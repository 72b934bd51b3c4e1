package persona

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/kieshlabs/personagen/internal/catalog"
	"github.com/kieshlabs/personagen/internal/identity"
	"github.com/kieshlabs/personagen/internal/registry"
)

// MinCatalogSize is the smallest catalog the pipeline can generate against:
// the invariants 1 <= minStocks < maxStocks < watchlist size <= catalog size
// need at least three instruments.
const MinCatalogSize = 3

// Generator produces one invariant-satisfying Profile per call by running
// the five pipeline stages in order.
type Generator struct {
	rng *rand.Rand
	cat *catalog.Catalog
	reg *registry.Registry
	src identity.Source
	pol Policy
}

// NewGenerator wires a generator. All collaborators are required; the
// catalog must hold at least MinCatalogSize instruments.
func NewGenerator(cat *catalog.Catalog, src identity.Source, reg *registry.Registry, rng *rand.Rand, pol Policy) (*Generator, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if cat.Len() < MinCatalogSize {
		return nil, fmt.Errorf("catalog must hold at least %d instruments, got %d", MinCatalogSize, cat.Len())
	}
	if src == nil {
		return nil, errors.New("identity source is required")
	}
	if reg == nil {
		return nil, errors.New("uniqueness registry is required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if pol.MinAge <= 0 || pol.MaxAge < pol.MinAge {
		return nil, fmt.Errorf("invalid age range [%d, %d]", pol.MinAge, pol.MaxAge)
	}
	return &Generator{rng: rng, cat: cat, reg: reg, src: src, pol: pol}, nil
}

// Generate synthesizes one persona. It fails only when the uniqueness
// registry cannot reserve a handle within its attempt bound.
func (g *Generator) Generate() (Profile, error) {
	p, err := g.identityStage(Profile{})
	if err != nil {
		return Profile{}, err
	}
	p = tradePropertiesStage(g.rng, p)
	p = portfolioStage(g.rng, g.cat, p)
	p = orderTypesStage(g.rng, p)
	p = tradeLimitsStage(g.rng, p)
	return p, nil
}

// identityStage allocates the numeric id, reserves a unique handle, and
// fills in the identity fields and the persona's own behavior seed.
func (g *Generator) identityStage(p Profile) (Profile, error) {
	p.ID = g.reg.AllocateID()

	handle, err := g.reg.ReserveHandle(g.src.HandleCandidate)
	if err != nil {
		return Profile{}, fmt.Errorf("reserve handle for persona %d: %w", p.ID, err)
	}
	p.Handle = handle
	p.DisplayName = g.src.DisplayName()
	p.Email = g.src.ContactAddress(handle)
	p.BirthDate = g.src.BirthDate(g.pol.MinAge, g.pol.MaxAge)

	// Stored for the persona's future simulated behavior, not consumed here.
	p.Seed = seedMin + g.rng.Int64N(seedSpan)
	return p, nil
}
