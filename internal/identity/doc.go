// Package identity defines the fake-identity source consumed by the
// persona pipeline and provides a gofakeit-backed implementation.
//
// The source only produces raw material: the handle format rule and
// population-wide uniqueness are imposed by the uniqueness registry, not
// here.
package identity
