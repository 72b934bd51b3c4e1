// Package dist provides the primitive sampling helpers used by the persona
// generation pipeline: clamping, power-law-skewed unit draws, multiplicative
// jitter, and log-scaled magnitude sampling.
//
// Every helper that consumes randomness takes an explicit *rand.Rand so
// batches can be seeded for deterministic output.
package dist
