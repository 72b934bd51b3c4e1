package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Generation.Count < 1 {
		return fmt.Errorf("generation.count must be >= 1, got %d", c.Generation.Count)
	}
	if c.Generation.MinAge < 1 {
		return errors.New("generation.min_age must be >= 1")
	}
	if c.Generation.MaxAge < c.Generation.MinAge {
		return fmt.Errorf("generation.max_age (%d) cannot be less than min_age (%d)",
			c.Generation.MaxAge, c.Generation.MinAge)
	}
	if c.Generation.HandleAttempts < 1 {
		return errors.New("generation.handle_attempts must be >= 1")
	}

	if c.Output.XLSXPath == "" {
		return errors.New("output.xlsx_path is required")
	}

	if c.Output.Postgres.Enabled {
		if err := c.Output.Postgres.validate("output.postgres"); err != nil {
			return err
		}
	}

	return nil
}

func (db *PostgresConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
