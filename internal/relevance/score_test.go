// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-triage/internal/keywords"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

func mustTable(t *testing.T, rows []types.Keyword) *keywords.Table {
	t.Helper()
	table, err := keywords.New(rows)
	require.NoError(t, err)
	return table
}

func TestScoreHerschelTitle(t *testing.T) {
	score, matched := Score("Herschel observations of dust in star-forming galaxies", keywords.MustDefault())

	assert.InDelta(t, 20.0/7.0, score, 1e-12)
	assert.Equal(t, []string{"herschel", `\bdust`, "forming", `\bgala`, "star", "observ"}, matched)
}

func TestScoreNoMatches(t *testing.T) {
	score, matched := Score("A note on unrelated topic", keywords.MustDefault())
	assert.Equal(t, 0.0, score)
	assert.Empty(t, matched)
}

func TestScoreEmptyTable(t *testing.T) {
	titles := []string{
		"Herschel observations of dust in star-forming galaxies",
		"SMG counts",
		"x",
	}
	empty := mustTable(t, nil)
	for _, title := range titles {
		score, matched := Score(title, empty)
		assert.Equal(t, 0.0, score, title)
		assert.Empty(t, matched, title)
	}

	score, matched := Score("SMG counts", nil)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, matched)
}

func TestScoreEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\n\t "} {
		score, matched := Score(title, keywords.MustDefault())
		assert.Equal(t, 0.0, score, "title %q", title)
		assert.Nil(t, matched, "title %q", title)
	}
}

func TestScoreLinearInWeights(t *testing.T) {
	rows := keywords.Default()
	base := mustTable(t, rows)

	scaled := make([]types.Keyword, len(rows))
	for i, r := range rows {
		scaled[i] = types.Keyword{Pattern: r.Pattern, Weight: r.Weight * 3}
	}
	tripled := mustTable(t, scaled)

	titles := []string{
		"Herschel observations of dust in star-forming galaxies",
		"Molecular gas in high-redshift SMGs",
		"A note on unrelated topic",
	}
	for _, title := range titles {
		s1, m1 := Score(title, base)
		s3, m3 := Score(title, tripled)
		assert.InDelta(t, 3*s1, s3, 1e-9, title)
		assert.Equal(t, m1, m3, title)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	table := keywords.MustDefault()
	variants := []string{
		"The ISM of SMG hosts traced by [CII] emission",
		"the ism of smg hosts traced by [cii] emission",
		"THE ISM OF SMG HOSTS TRACED BY [CII] EMISSION",
	}
	want, wantMatched := Score(variants[0], table)
	assert.Greater(t, want, 0.0)
	for _, v := range variants[1:] {
		got, matched := Score(v, table)
		assert.Equal(t, want, got, v)
		assert.Equal(t, wantMatched, matched, v)
	}
}

func TestScoreIdempotent(t *testing.T) {
	table := keywords.MustDefault()
	title := "Submillimetre galaxies and the far-IR luminosity function"
	s1, m1 := Score(title, table)
	s2, m2 := Score(title, table)
	assert.Equal(t, s1, s2)
	assert.Equal(t, m1, m2)
}

func TestScoreMatchedKeepsTableOrderAndOriginalPattern(t *testing.T) {
	table := mustTable(t, []types.Keyword{
		{Pattern: "GAS", Weight: 2},
		{Pattern: `\bdust`, Weight: 4},
	})
	score, matched := Score("Dust and gas", table)
	assert.InDelta(t, 2.0, score, 1e-12)
	assert.Equal(t, []string{"GAS", `\bdust`}, matched)
}

func TestScoreEntries(t *testing.T) {
	entries := []types.Entry{
		{Identifier: "2410.00001v1", Title: "Herschel observations of dust in star-forming galaxies"},
		{Identifier: "2410.00002v1", Title: "A note on unrelated topic"},
	}
	articles := ScoreEntries(entries, keywords.MustDefault())
	require.Len(t, articles, 2)
	assert.Equal(t, "2410.00001v1", articles[0].Identifier)
	assert.InDelta(t, 20.0/7.0, articles[0].Score, 1e-12)
	assert.Equal(t, "2410.00002v1", articles[1].Identifier)
	assert.Equal(t, 0.0, articles[1].Score)
}
