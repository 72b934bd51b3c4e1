// Package persona implements the profile-synthesis pipeline: a five-stage
// sequence of dependent random-sampling steps that derives the correlated
// behavioral and portfolio parameters of one simulated trading persona.
//
// Stages run in fixed order (identity, trade properties, portfolio, order
// types, trade limits) because later stages read fields produced by earlier
// ones. Each stage is a pure function over the accumulated Profile; every
// derived value is clamped or guarded into its declared range before the
// stage returns, so a completed Profile always satisfies the package's
// range and ordering invariants.
package persona
