// SPDX-License-Identifier: MIT

package gridio

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/exactla/matrix"
)

// Encode writes set to w as a TOML or YAML document. Every entry is written
// as its fraction string ("3", "-1/2"); keys appear in ascending order.
//
// Errors: ErrUnknownFormat (including FormatAuto), ErrNotAGrid for a nil
// matrix, and write errors from w.
func Encode(w io.Writer, set Set, format Format) error {
	doc := make(map[string][][]string, len(set))
	for name, m := range set {
		grid, err := toStrings(m)
		if err != nil {
			return fmt.Errorf("%s: %q: %w", opEncode, name, err)
		}
		doc[name] = grid
	}

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("%s: toml: %w", opEncode, err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("%s: yaml: %w", opEncode, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%s: yaml: %w", opEncode, err)
		}
	default:
		return fmt.Errorf("%s: %v: %w", opEncode, format, ErrUnknownFormat)
	}

	return nil
}

// toStrings renders m row by row through Fraction.MarshalText.
func toStrings(m *matrix.Dense) ([][]string, error) {
	if m == nil {
		return nil, ErrNotAGrid
	}
	grid := m.Grid()
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = make([]string, len(row))
		for j, f := range row {
			text, err := f.MarshalText()
			if err != nil {
				return nil, fmt.Errorf("[%d][%d]: %w", i, j, err)
			}
			out[i][j] = string(text)
		}
	}

	return out, nil
}
