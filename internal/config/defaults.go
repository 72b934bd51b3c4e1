package config

// Default values for optional configuration fields.
const (
	DefaultCount          = 100
	DefaultMinAge         = 18
	DefaultMaxAge         = 80
	DefaultHandleAttempts = 1000
	DefaultXLSXPath       = "AIUserData.xlsx"
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 4
	DefaultMinConns       = 1
)

func (c *Config) applyDefaults() {
	// Generation defaults
	if c.Generation.Count == 0 {
		c.Generation.Count = DefaultCount
	}
	if c.Generation.MinAge == 0 {
		c.Generation.MinAge = DefaultMinAge
	}
	if c.Generation.MaxAge == 0 {
		c.Generation.MaxAge = DefaultMaxAge
	}
	if c.Generation.HandleAttempts == 0 {
		c.Generation.HandleAttempts = DefaultHandleAttempts
	}

	// Output defaults
	if c.Output.XLSXPath == "" {
		c.Output.XLSXPath = DefaultXLSXPath
	}

	// Database defaults
	db := &c.Output.Postgres
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
