package persona

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/kieshlabs/personagen/internal/catalog"
	"github.com/kieshlabs/personagen/internal/dist"
)

// Per-persona reproducibility seeds are drawn from [seedMin, seedMin+seedSpan).
const (
	seedMin  = 1_000_000
	seedSpan = 9_000_000
)

// tradePropertiesStage samples aggressiveness and the behavioral rates
// derived from it.
func tradePropertiesStage(rng *rand.Rand, p Profile) Profile {
	// Slight bias toward lower aggressiveness: more conservative bots.
	p.Aggressiveness = dist.Clamp01(dist.Jitter(rng, dist.SkewedUnit(rng, 1.3), 0.10))

	p.OnlineProb = dist.Clamp01(dist.Jitter(rng, 0.2+0.8*dist.SkewedUnit(rng, 0.7), 0.10))

	// More aggressive personas decide faster: base interval 8-20s.
	baseInterval := 20.0 - 12.0*p.Aggressiveness*p.Aggressiveness
	p.DecisionIntervalSeconds = int(math.Max(1, math.Round(dist.Jitter(rng, baseInterval, 0.15))))

	p.TradeProb = dist.Clamp01(dist.Jitter(rng, 0.10+0.5*p.Aggressiveness*p.Aggressiveness, 0.15))

	p.Strategy = Strategy(dist.UniformInt(rng, 1, numStrategies))
	return p
}

// portfolioStage samples the starting balance, cash reserves, position
// bounds, watchlist, and initial holdings.
func portfolioStage(rng *rand.Rand, cat *catalog.Catalog, p Profile) Profile {
	// Log-distributed balance: $10k up to $500k, most mass near the bottom.
	p.Balance = dist.SampleLogMagnitude(rng, 10_000, 50)

	// Aggressive bots keep less cash.
	p.MaxCashFrac = dist.Clamp01(dist.Jitter(rng, 0.50-0.30*p.Aggressiveness, 0.15))
	p.MinCashFrac = p.MaxCashFrac * dist.Uniform(rng, 0.30, 0.60)

	p.MinStocks, p.MaxStocks = samplePositionBounds(rng, p.Aggressiveness, cat.Len())

	// Watchlist is a strict superset (by size) of what the persona may hold.
	watchSize := p.MaxStocks + dist.UniformInt(rng, 3, 8)
	if watchSize > cat.Len() {
		watchSize = cat.Len()
	}
	p.Watchlist = sampleIDs(rng, cat.Len(), watchSize)

	held := sampleSubset(rng, p.Watchlist, dist.UniformInt(rng, p.MinStocks, p.MaxStocks))
	p.Holdings = allocateHoldings(cat, p.Balance, p.MinCashFrac, p.MaxCashFrac, held)
	return p
}

// samplePositionBounds draws (minStocks, maxStocks) from one of three
// aggressiveness bands, then clamps maxStocks below the catalog size so a
// strictly larger watchlist always fits, and keeps minStocks < maxStocks.
func samplePositionBounds(rng *rand.Rand, aggressiveness float64, catalogSize int) (int, int) {
	var minStocks, maxStocks int
	switch {
	case aggressiveness < 0.3:
		minStocks = dist.UniformInt(rng, 1, 4)
		maxStocks = dist.UniformInt(rng, 6, 12)
	case aggressiveness < 0.6:
		minStocks = dist.UniformInt(rng, 3, 5)
		maxStocks = dist.UniformInt(rng, 8, 15)
	default:
		minStocks = dist.UniformInt(rng, 5, 8)
		maxStocks = dist.UniformInt(rng, 12, 20)
	}

	if maxStocks > catalogSize-1 {
		maxStocks = catalogSize - 1
	}
	if maxStocks < 2 {
		maxStocks = 2
	}
	if minStocks >= maxStocks {
		minStocks = maxStocks - 1
	}
	if minStocks < 1 {
		minStocks = 1
	}
	return minStocks, maxStocks
}

// sampleIDs draws size distinct instrument ids from 1..n, sorted ascending.
func sampleIDs(rng *rand.Rand, n, size int) []int {
	perm := rng.Perm(n)
	ids := make([]int, size)
	for i := 0; i < size; i++ {
		ids[i] = perm[i] + 1
	}
	slices.Sort(ids)
	return ids
}

// sampleSubset draws size distinct elements from pool.
func sampleSubset(rng *rand.Rand, pool []int, size int) []int {
	if size > len(pool) {
		size = len(pool)
	}
	perm := rng.Perm(len(pool))
	out := make([]int, size)
	for i := 0; i < size; i++ {
		out[i] = pool[perm[i]]
	}
	slices.Sort(out)
	return out
}

// allocateHoldings spreads the investable part of the balance equally over
// the held instruments: investable = balance * (1 - (2*minCash+maxCash)/3),
// and each position gets floor(perInstrument / referencePrice) shares.
func allocateHoldings(cat *catalog.Catalog, balance, minCash, maxCash float64, held []int) map[int]int {
	holdings := make(map[int]int, len(held))
	if len(held) == 0 {
		return holdings
	}
	invested := balance * (1 - (2*minCash+maxCash)/3)
	perInstrument := invested / float64(len(held))
	for _, id := range held {
		inst, ok := cat.ByID(id)
		if !ok {
			continue
		}
		holdings[id] = int(perInstrument / inst.Price)
	}
	return holdings
}

// orderTypesStage samples the order-type preference probabilities.
func orderTypesStage(rng *rand.Rand, p Profile) Profile {
	p.UseMarketProb = 0.05 + 0.20*dist.SkewedUnit(rng, 1.5)
	p.UseSlippageProb = 0.50 + 0.40*dist.SkewedUnit(rng, 0.5)

	// Slightly more than half buys for aggressive bots.
	bias := dist.Clamp01(dist.Jitter(rng, 0.50+0.10*(p.Aggressiveness-0.5), 0.10))
	p.BuyBias = dist.Clamp(bias, 0.40, 0.60)
	return p
}

// tradeLimitsStage samples slippage tolerance, limit offsets, position and
// trade-size caps, and daily activity limits.
func tradeLimitsStage(rng *rand.Rand, p Profile) Profile {
	p.SlippageTolerance = dist.Clamp01(dist.Jitter(rng, 0.005+0.025*p.Aggressiveness, 0.20))

	maxOffset := dist.Clamp01(dist.Jitter(rng, 0.02+0.03*p.Aggressiveness, 0.20))
	p.MaxLimitOffset = maxOffset
	p.MinLimitOffset = dist.Clamp01(maxOffset * dist.Uniform(rng, 0.02, 0.30))

	// The portfolio-size ceiling 1/maxStocks always takes precedence over
	// the aggressiveness-derived per-position cap.
	perPos := dist.Clamp01(dist.Jitter(rng, 0.08+0.22*p.Aggressiveness, 0.15))
	if ceiling := 1.0 / float64(p.MaxStocks); perPos > ceiling {
		perPos = ceiling
	}
	p.PerPositionMax = perPos

	p.MinTradeAmount = perPos * dist.Uniform(rng, 0.10, 0.30)
	p.MaxTradeAmount = perPos * dist.Uniform(rng, 0.40, 0.80)

	p.MaxDailyTrades = int(math.Max(100, math.Round(dist.Jitter(rng, 100+300*p.Aggressiveness, 0.20))))
	p.MaxOpenOrders = int(math.Max(10, math.Round(dist.Jitter(rng, 10+40*p.Aggressiveness, 0.20))))
	return p
}
