// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds HTTP settings for the feed request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default
	// (no client-side deadline).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "arxiv-triage/dev").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FeedConfig holds the arXiv query parameters.
type FeedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the arXiv API query URL (default "http://export.arxiv.org/api/query").
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// Category is the arXiv category filter (default "astro-ph.CO").
	Category string `json:"category" yaml:"category" mapstructure:"category"`

	// MaxResults bounds the single page fetched (default 500).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// OutputFormat selects how qualifying articles are written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// RankConfig holds settings for scoring and display.
type RankConfig struct {
	// Threshold is the exclusive lower bound on displayed scores (default 0.7).
	Threshold float64 `json:"threshold" yaml:"threshold" mapstructure:"threshold"`

	// KeywordsFile optionally replaces the built-in keyword table with a
	// YAML list of {pattern, weight} items.
	KeywordsFile string `json:"keywords_file,omitempty" yaml:"keywords_file,omitempty" mapstructure:"keywords_file"`

	// ShowKeywords appends the matched keyword list to each output line.
	ShowKeywords bool `json:"show_keywords" yaml:"show_keywords" mapstructure:"show_keywords"`
}

// Config groups all settings for one run.
type Config struct {
	Feed     FeedConfig   `json:"feed" yaml:"feed" mapstructure:"feed"`
	Rank     RankConfig   `json:"rank" yaml:"rank" mapstructure:"rank"`
	Output   OutputFormat `json:"output" yaml:"output" mapstructure:"output"`
	LogLevel string       `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
