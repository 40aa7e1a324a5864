// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// File is the on-disk form of a keyword table. A YAML sequence keeps the
// row order, which a mapping would not.
type File struct {
	Keywords []types.Keyword `yaml:"keywords"`
}

// LoadFile reads a keyword table from a YAML file and compiles it.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}
	if len(f.Keywords) == 0 {
		return nil, fmt.Errorf("keywords file %s: no keywords", path)
	}
	t, err := New(f.Keywords)
	if err != nil {
		return nil, fmt.Errorf("keywords file %s: %w", path, err)
	}
	return t, nil
}

// Write encodes the table rows as YAML in the format LoadFile reads.
func Write(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Keywords: t.Entries()}); err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}
	return enc.Close()
}
