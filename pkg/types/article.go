// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-triage pipeline:
// the keyword table rows, parsed feed entries, and scored articles.
package types

// Keyword is one row of the relevance table. Pattern is a regular-expression
// fragment matched against the lowercased title; Weight is added to the
// title's sum when the pattern matches.
type Keyword struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Weight  int    `json:"weight" yaml:"weight"`
}

// Entry is a single item parsed from the arXiv Atom feed.
type Entry struct {
	// Identifier is the bare arXiv ID, version suffix included (e.g. "2410.01234v1").
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the entry title as it appears in the feed.
	Title string `json:"title" yaml:"title"`
}

// Article is a feed entry after scoring. It is built once and not modified.
type Article struct {
	// Score is the sum of matched keyword weights divided by the title's
	// whitespace token count.
	Score float64 `json:"score" yaml:"score"`

	Identifier string `json:"identifier" yaml:"identifier"`
	Title      string `json:"title" yaml:"title"`

	// Matched lists the original pattern strings that hit, in table order.
	Matched []string `json:"matched_keywords" yaml:"matched_keywords"`
}
