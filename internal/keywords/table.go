// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords holds the ordered pattern-to-weight table used to score
// preprint titles, and compiles its patterns for matching.
package keywords

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// Table is an immutable, ordered set of compiled keyword patterns.
type Table struct {
	entries []types.Keyword
	exprs   []*regexp.Regexp
}

// New validates entries and compiles each pattern. Patterns must be non-empty
// and unique, and weights must not be negative. The input order is kept: it
// decides the order of matched keywords in the output.
func New(entries []types.Keyword) (*Table, error) {
	t := &Table{
		entries: make([]types.Keyword, 0, len(entries)),
		exprs:   make([]*regexp.Regexp, 0, len(entries)),
	}
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Pattern == "" {
			return nil, fmt.Errorf("keyword %d: empty pattern", i)
		}
		if seen[e.Pattern] {
			return nil, fmt.Errorf("keyword %d: duplicate pattern %q", i, e.Pattern)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("keyword %q: negative weight %d", e.Pattern, e.Weight)
		}
		re, err := compile(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", e.Pattern, err)
		}
		seen[e.Pattern] = true
		t.entries = append(t.entries, e)
		t.exprs = append(t.exprs, re)
	}
	return t, nil
}

// MustDefault returns the compiled built-in table. It panics only if the
// built-in patterns fail to compile.
func MustDefault() *Table {
	t, err := New(Default())
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of keywords in the table.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table rows in order.
func (t *Table) Entries() []types.Keyword {
	out := make([]types.Keyword, len(t.entries))
	copy(out, t.entries)
	return out
}

// Each calls fn for every keyword in order with its compiled expression.
func (t *Table) Each(fn func(k types.Keyword, re *regexp.Regexp)) {
	for i, e := range t.entries {
		fn(e, t.exprs[i])
	}
}

// compile lowercases the pattern and translates it to RE2 syntax.
func compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(translate(strings.ToLower(pattern)))
}

// translate rewrites the constructs whose meaning differs between the
// table's notation and RE2. Inside a character class "\b" is a backspace,
// which RE2 rejects, so it becomes "\x08". Everything else passes through.
func translate(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			next := pattern[i+1]
			if inClass && next == 'b' {
				b.WriteString(`\x08`)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
			// A ']' right after '[' or '[^' is a literal member.
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				b.WriteByte(']')
				i++
			}
		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
