// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-triage/internal/feed"
	"github.com/pdiddy/arxiv-triage/internal/relevance"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// setDefaults registers every key so that a run without a config file
// reproduces the fixed query and threshold, and so env overrides resolve.
func setDefaults(v *viper.Viper) {
	v.SetDefault("feed.endpoint", feed.DefaultEndpoint)
	v.SetDefault("feed.category", feed.DefaultCategory)
	v.SetDefault("feed.max_results", feed.DefaultMaxResults)
	v.SetDefault("feed.timeout", "0s")
	v.SetDefault("feed.user_agent", "arxiv-triage/"+version)
	v.SetDefault("rank.threshold", relevance.DefaultThreshold)
	v.SetDefault("rank.keywords_file", "")
	v.SetDefault("rank.show_keywords", false)
	v.SetDefault("output", string(types.OutputText))
	v.SetDefault("log_level", "warn")
}

// loadConfig decodes v into a Config and checks the values that would
// otherwise fail late.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	switch cfg.Output {
	case types.OutputText, types.OutputJSON:
	default:
		return cfg, fmt.Errorf("unknown output format %q (want text or json)", cfg.Output)
	}
	if cfg.Feed.MaxResults <= 0 {
		return cfg, fmt.Errorf("feed.max_results must be positive, got %d", cfg.Feed.MaxResults)
	}
	if cfg.Rank.Threshold < 0 {
		return cfg, fmt.Errorf("rank.threshold must not be negative, got %v", cfg.Rank.Threshold)
	}
	return cfg, nil
}
