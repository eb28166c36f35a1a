// SPDX-License-Identifier: MIT

package gridio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the document syntax.
type Format int

const (
	// FormatAuto decodes as TOML and falls back to YAML. It is not valid for
	// Encode.
	FormatAuto Format = iota
	// FormatTOML is TOML v1.0.
	FormatTOML
	// FormatYAML is YAML 1.2.
	FormatYAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "auto", "toml", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks a format from the file extension: .toml gives
// FormatTOML, .yaml and .yml give FormatYAML, anything else FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}
