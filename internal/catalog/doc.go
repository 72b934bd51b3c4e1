// Package catalog holds the reference catalog of tradable instruments:
// an ordered, read-only table of symbol, company name, reference price,
// and a stable 1-based instrument id.
//
// A catalog is loaded once per generation run, either from a YAML file or
// from the built-in default set, and never mutated afterwards.
package catalog
