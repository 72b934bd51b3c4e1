// Package serializer maps generated profiles to the flat row
// representations consumed by output sinks: identity rows, holding rows,
// profile-parameter rows, and the catalog (stocks) rows.
//
// Floating-point parameters are rounded here, at the output boundary, not
// inside the generator.
package serializer
