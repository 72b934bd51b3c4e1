// Package config loads and validates the generator's YAML configuration,
// expanding ${VAR} environment references and applying defaults for
// optional fields.
package config
