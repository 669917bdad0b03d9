package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cinescan/internal/catalog"
	"cinescan/internal/config"
	"cinescan/internal/logging"
	"cinescan/internal/mentions"
	"cinescan/internal/similarity"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
}

// loadRecords reads catalog records from the configured source. A configured
// database takes precedence over the aliases file.
func (c *commandContext) loadRecords() ([]catalog.Record, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.DatabasePath != "" {
		store, err := catalog.OpenStore(cfg.Catalog.DatabasePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Records(context.Background())
	}
	records, err := catalog.LoadFile(cfg.Catalog.AliasesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no catalog found at %s; import one with `cinescan catalog import`", cfg.Catalog.AliasesPath)
		}
		return nil, err
	}
	return records, nil
}

func (c *commandContext) buildIndex() (*catalog.Index, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	records, err := c.loadRecords()
	if err != nil {
		return nil, err
	}
	return catalog.BuildIndex(records, catalog.Options{LocalePriority: cfg.Catalog.LocalePriority}), nil
}

func (c *commandContext) buildResolver() (*catalog.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	index, err := c.buildIndex()
	if err != nil {
		return nil, err
	}
	scorer, err := similarity.ForName(cfg.Matching.Similarity)
	if err != nil {
		return nil, err
	}
	return catalog.NewResolver(index, scorer, cfg.Matching.Threshold), nil
}

func (c *commandContext) buildDetector() (*mentions.Detector, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	index, err := c.buildIndex()
	if err != nil {
		return nil, err
	}
	scorer, err := similarity.ForName(cfg.Matching.Similarity)
	if err != nil {
		return nil, err
	}
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}
	return mentions.New(index, scorer, mentions.Options{
		Threshold: cfg.Matching.Threshold,
		Logger:    logger,
	}), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
