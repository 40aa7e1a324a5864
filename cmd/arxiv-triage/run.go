// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/arxiv-triage/internal/feed"
	"github.com/pdiddy/arxiv-triage/internal/keywords"
	"github.com/pdiddy/arxiv-triage/internal/relevance"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// run fetches one page, scores every entry, and writes the qualifying
// articles to w.
func run(ctx context.Context, cfg types.Config, fetcher feed.Fetcher, w io.Writer, log *slog.Logger) error {
	table, err := loadTable(cfg.Rank.KeywordsFile)
	if err != nil {
		return err
	}
	log.Debug("keyword table ready", "keywords", table.Len(), "file", cfg.Rank.KeywordsFile)

	log.Info("querying arXiv", "url", feed.QueryURL(cfg.Feed))
	entries, err := fetcher.Fetch(ctx, cfg.Feed)
	if err != nil {
		return err
	}
	log.Info("fetched entries", "count", len(entries))

	articles := relevance.ScoreEntries(entries, table)
	for _, a := range articles {
		log.Debug("scored", "id", a.Identifier, "score", a.Score, "matched", a.Matched)
	}

	ranked := relevance.Rank(articles, cfg.Rank.Threshold)
	log.Info("ranked", "qualifying", len(ranked), "threshold", cfg.Rank.Threshold)

	if cfg.Output == types.OutputJSON {
		return relevance.WriteJSON(w, ranked)
	}
	return relevance.Write(w, ranked, cfg.Rank.ShowKeywords)
}

func loadTable(path string) (*keywords.Table, error) {
	if path == "" {
		return keywords.MustDefault(), nil
	}
	table, err := keywords.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading keyword table: %w", err)
	}
	return table, nil
}
