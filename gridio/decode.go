// SPDX-License-Identifier: MIT

package gridio

import (
	"fmt"
	"math/big"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/exactla/fraction"
	"github.com/katalvlaran/exactla/matrix"
)

// Load reads the file at path and decodes it with the format implied by its
// extension (see FormatFromPath).
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}
	set, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoad, path, err)
	}

	return set, nil
}

// Decode parses a document into a Set.
//
// Steps:
//   - Unmarshal into map[string]any with the TOML or YAML decoder. Under
//     FormatAuto, TOML is tried first and YAML second; if both fail the TOML
//     error is reported.
//   - Convert each value into a [][]fraction.Fraction, then into *Dense via
//     matrix.NewDense (shape checks live there).
//
// Errors:
//   - ErrUnknownFormat, syntax errors from the decoders.
//   - ErrNotAGrid, ErrBadEntry (with name and [i][j] position).
//   - matrix.ErrInvalidDimensions, matrix.ErrRaggedGrid.
func Decode(data []byte, format Format) (Set, error) {
	raw, err := unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	set := make(Set, len(raw))
	for name, v := range raw {
		grid, err := toGrid(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", opDecode, name, err)
		}
		m, err := matrix.NewDense(grid)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", opDecode, name, err)
		}
		set[name] = m
	}

	return set, nil
}

// unmarshal decodes data into a generic top-level map.
func unmarshal(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	case FormatYAML:
		m, err := unmarshalYAML(data)
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		raw = m
	case FormatAuto:
		tomlErr := toml.Unmarshal(data, &raw)
		if tomlErr == nil {
			break
		}
		m, err := unmarshalYAML(data)
		if err != nil {
			return nil, fmt.Errorf("toml: %w", tomlErr)
		}
		raw = m
	default:
		return nil, fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}

	return raw, nil
}

// unmarshalYAML decodes through yaml.Node so that integer literals keep full
// precision instead of becoming float64 past the uint64 range.
func unmarshalYAML(data []byte) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return map[string]any{}, nil // empty document
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level is not a mapping", root.Line)
	}
	v, err := yamlValue(root)
	if err != nil {
		return nil, err
	}

	return v.(map[string]any), nil
}

// yamlValue converts a node into the generic shapes toGrid understands,
// with integer literals as *big.Int.
func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for k := 0; k+1 < len(n.Content); k += 2 {
			v, err := yamlValue(n.Content[k+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[k].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			s[i] = v
		}
		return s, nil
	case yaml.ScalarNode:
		// an integer literal past uint64 resolves to !!float in yaml.v3
		if tag := n.ShortTag(); tag == "!!int" || tag == "!!float" {
			if i, ok := new(big.Int).SetString(n.Value, 0); ok {
				return i, nil
			}
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

// toGrid converts a decoded 2-D array. Entry errors are prefixed with the
// failing position, e.g. "[1][0]: ...".
func toGrid(v any) ([][]fraction.Fraction, error) {
	rows, ok := v.([]any)
	if !ok || len(rows) == 0 {
		return nil, ErrNotAGrid
	}

	grid := make([][]fraction.Fraction, len(rows))
	for i, r := range rows {
		row, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("[%d]: %w", i, ErrNotAGrid)
		}
		grid[i] = make([]fraction.Fraction, len(row))
		for j, e := range row {
			f, err := toFraction(e)
			if err != nil {
				return nil, fmt.Errorf("[%d][%d]: %w", i, j, err)
			}
			grid[i][j] = f
		}
	}

	return grid, nil
}

// toFraction accepts int64 (TOML), *big.Int (YAML), int and strings in
// fraction.Parse syntax.
func toFraction(e any) (fraction.Fraction, error) {
	switch x := e.(type) {
	case int:
		return fraction.FromInt(int64(x)), nil
	case int64:
		return fraction.FromInt(x), nil
	case *big.Int:
		return fraction.FromBigInt(x), nil
	case string:
		var f fraction.Fraction
		if err := f.UnmarshalText([]byte(x)); err != nil {
			return fraction.Fraction{}, fmt.Errorf("%w: %w", ErrBadEntry, err)
		}

		return f, nil
	case float32, float64:
		return fraction.Fraction{}, fmt.Errorf("%w: float %v (write fractions as \"p/q\" and large integers as quoted strings)", ErrBadEntry, x)
	default:
		return fraction.Fraction{}, fmt.Errorf("%w: %T", ErrBadEntry, e)
	}
}
