// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches one page of recent submissions from the arXiv API and
// parses the Atom response into entries.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/arxiv-triage/internal/httputil"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

const (
	// DefaultEndpoint is the arXiv API query URL.
	DefaultEndpoint = "http://export.arxiv.org/api/query"

	// DefaultCategory restricts results to cosmology and nongalactic astrophysics.
	DefaultCategory = "astro-ph.CO"

	// DefaultMaxResults bounds the single page requested.
	DefaultMaxResults = 500

	// idPrefix is stripped from each entry's <id> to leave the bare arXiv ID.
	idPrefix = "http://arxiv.org/abs/"
)

// Fetcher returns the entries of one feed page.
type Fetcher interface {
	Fetch(ctx context.Context, cfg types.FeedConfig) ([]types.Entry, error)
}

// ArxivFetcher queries the arXiv API for the newest submissions in a category.
type ArxivFetcher struct {
	Client *http.Client
}

// NewArxivFetcher returns a fetcher whose client uses cfg's timeout.
func NewArxivFetcher(cfg types.HTTPConfig) *ArxivFetcher {
	return &ArxivFetcher{Client: &http.Client{Timeout: cfg.Timeout}}
}

// Fetch issues a single request for the first page of the category, newest
// submissions first, and parses the response.
func (f *ArxivFetcher) Fetch(ctx context.Context, cfg types.FeedConfig) ([]types.Entry, error) {
	url := QueryURL(cfg)
	body, err := httputil.Get(ctx, f.Client, url, cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	entries, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return entries, nil
}

// QueryURL builds the request URL, filling unset fields with defaults.
func QueryURL(cfg types.FeedConfig) string {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	category := cfg.Category
	if category == "" {
		category = DefaultCategory
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return fmt.Sprintf("%s?search_query=cat:%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		endpoint, category, maxResults)
}

// Parse decodes an Atom document into entries in document order.
func Parse(data []byte) ([]types.Entry, error) {
	doc, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	entries := make([]types.Entry, 0, len(doc.Items))
	for _, item := range doc.Items {
		entries = append(entries, types.Entry{
			Identifier: extractID(item.GUID),
			Title:      oneLine(item.Title),
		})
	}
	return entries, nil
}

// extractID strips the abstract URL prefix from an entry id
// (e.g. "http://arxiv.org/abs/2410.01234v1" -> "2410.01234v1").
func extractID(id string) string {
	if strings.HasPrefix(id, idPrefix) {
		return id[len(idPrefix):]
	}
	if idx := strings.Index(id, "/abs/"); idx >= 0 {
		return id[idx+len("/abs/"):]
	}
	return id
}

// oneLine collapses the line breaks arXiv inserts in long titles.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
