package config

// Config is the top-level configuration for a generation run.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Output     OutputConfig     `yaml:"output"`
}

// GenerationConfig controls the synthesis pipeline.
type GenerationConfig struct {
	// Count is the number of personas to generate.
	Count int `yaml:"count"`

	// Seed seeds the batch random source. 0 selects a time-based seed.
	Seed int64 `yaml:"seed"`

	// MinAge / MaxAge bound the generated dates of birth, in years.
	MinAge int `yaml:"min_age"`
	MaxAge int `yaml:"max_age"`

	// HandleAttempts caps how many candidates the uniqueness registry
	// draws per handle before reporting exhaustion.
	HandleAttempts int `yaml:"handle_attempts"`
}

// CatalogConfig selects the instrument catalog.
type CatalogConfig struct {
	// Path to a YAML catalog file. Empty selects the built-in catalog.
	Path string `yaml:"path"`
}

// OutputConfig selects the output sinks.
type OutputConfig struct {
	// XLSXPath is where the workbook is written.
	XLSXPath string `yaml:"xlsx_path"`

	// Postgres optionally persists the population to a database.
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig describes the optional database sink.
type PostgresConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
