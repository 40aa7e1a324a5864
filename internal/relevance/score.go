// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance scores preprint titles against a keyword table, ranks
// the scored articles, and writes the ones above the display threshold.
package relevance

import (
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv-triage/internal/keywords"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// Score returns the normalized relevance of title and the patterns that
// matched it, in table order. The score is the sum of matched weights
// divided by the number of whitespace-separated tokens in title. A title
// with no tokens scores zero.
func Score(title string, table *keywords.Table) (float64, []string) {
	tokens := len(strings.Fields(title))
	if tokens == 0 || table == nil {
		return 0, nil
	}

	lower := strings.ToLower(title)
	sum := 0
	var matched []string
	table.Each(func(k types.Keyword, re *regexp.Regexp) {
		if re.MatchString(lower) {
			sum += k.Weight
			matched = append(matched, k.Pattern)
		}
	})
	return float64(sum) / float64(tokens), matched
}

// ScoreEntries scores every entry and returns the articles in feed order.
func ScoreEntries(entries []types.Entry, table *keywords.Table) []types.Article {
	articles := make([]types.Article, 0, len(entries))
	for _, e := range entries {
		score, matched := Score(e.Title, table)
		articles = append(articles, types.Article{
			Score:      score,
			Identifier: e.Identifier,
			Title:      e.Title,
			Matched:    matched,
		})
	}
	return articles
}
