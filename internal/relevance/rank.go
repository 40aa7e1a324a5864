// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// DefaultThreshold is the exclusive lower bound on displayed scores.
const DefaultThreshold = 0.7

// Rank sorts a copy of articles by ascending score, keeping feed order for
// ties, and returns those scoring strictly above threshold. The result lists
// the least relevant qualifying article first.
func Rank(articles []types.Article, threshold float64) []types.Article {
	sorted := make([]types.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})

	var out []types.Article
	for _, a := range sorted {
		if a.Score > threshold {
			out = append(out, a)
		}
	}
	return out
}

// Write prints one line per article: the score with one decimal, two
// spaces, the identifier and the title. With showKeywords the matched
// patterns are appended as a bracketed, quoted list.
func Write(w io.Writer, articles []types.Article, showKeywords bool) error {
	for _, a := range articles {
		var err error
		if showKeywords {
			_, err = fmt.Fprintf(w, "%.1f  %s %s %s\n", a.Score, a.Identifier, a.Title, formatMatched(a.Matched))
		} else {
			_, err = fmt.Fprintf(w, "%.1f  %s %s\n", a.Score, a.Identifier, a.Title)
		}
		if err != nil {
			return fmt.Errorf("writing article %s: %w", a.Identifier, err)
		}
	}
	return nil
}

// WriteJSON writes articles as indented JSON to w.
func WriteJSON(w io.Writer, articles []types.Article) error {
	if articles == nil {
		articles = []types.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// formatMatched renders patterns as ['a', 'b'], doubling backslashes so
// patterns such as \bdust read as '\\bdust'.
func formatMatched(matched []string) string {
	quoted := make([]string, len(matched))
	for i, m := range matched {
		m = strings.ReplaceAll(m, `\`, `\\`)
		m = strings.ReplaceAll(m, `'`, `\'`)
		quoted[i] = "'" + m + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
