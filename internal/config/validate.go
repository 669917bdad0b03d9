package config

import (
	"fmt"
	"strings"

	"cinescan/internal/similarity"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if c.Catalog.AliasesPath == "" && c.Catalog.DatabasePath == "" {
		return fmt.Errorf("catalog.aliases_path or catalog.database_path is required")
	}
	for _, locale := range c.Catalog.LocalePriority {
		if strings.TrimSpace(locale) == "" {
			return fmt.Errorf("catalog.locale_priority contains an empty locale code")
		}
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.Threshold < 0 || c.Matching.Threshold > 100 {
		return fmt.Errorf("matching.threshold must be in [0,100], got %v", c.Matching.Threshold)
	}
	if c.Matching.ResolveLimit <= 0 {
		return fmt.Errorf("matching.resolve_limit must be positive, got %d", c.Matching.ResolveLimit)
	}
	if _, err := similarity.ForName(c.Matching.Similarity); err != nil {
		return fmt.Errorf("matching.similarity: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
