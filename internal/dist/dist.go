package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Clamp returns x restricted to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 returns x restricted to the unit interval.
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// SkewedUnit draws u uniformly from [0,1) and returns u**skew.
//
// skew > 1 biases results toward 0, skew < 1 biases toward 1, and skew = 1
// is uniform. Panics if skew <= 0: every call site uses a compile-time
// constant, so a non-positive skew is a programming error, not input.
func SkewedUnit(rng *rand.Rand, skew float64) float64 {
	if skew <= 0 {
		panic(fmt.Sprintf("dist: skew must be > 0, got %v", skew))
	}
	return math.Pow(rng.Float64(), skew)
}

// Jitter returns value scaled by a random factor in [1-rel, 1+rel].
func Jitter(rng *rand.Rand, value, rel float64) float64 {
	return value * (1 + Uniform(rng, -rel, rel))
}

// SampleLogMagnitude returns minBase * maxFactor**u with u uniform in [0,1).
//
// The result has heavier mass near minBase with a long tail up to
// minBase * maxFactor, which is how starting balances are drawn: most
// personas modestly capitalized, a minority with large accounts.
func SampleLogMagnitude(rng *rand.Rand, minBase, maxFactor float64) float64 {
	return minBase * math.Pow(maxFactor, rng.Float64())
}

// Uniform returns a uniform draw from [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// UniformInt returns a uniform integer draw from [lo, hi] inclusive.
// If hi < lo the bounds are swapped.
func UniformInt(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.IntN(hi-lo+1)
}
