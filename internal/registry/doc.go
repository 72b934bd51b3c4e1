// Package registry tracks allocated numeric ids and issued handles so both
// stay unique across one generated population.
//
// A Registry is scoped to a single batch: the Population Builder resets it
// before generating, and it must not be shared across concurrent batches
// without external synchronization.
package registry
