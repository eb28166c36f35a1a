// SPDX-License-Identifier: MIT

package gridio

import "errors"

// Sentinel errors. Decode and Load wrap them with the matrix name and entry
// position; match with errors.Is.
var (
	// ErrUnknownFormat indicates an unsupported document format or extension.
	ErrUnknownFormat = errors.New("gridio: unknown format")

	// ErrNotAGrid indicates a top-level value that is not a non-empty 2-D array.
	ErrNotAGrid = errors.New("gridio: value is not a 2-D array")

	// ErrBadEntry indicates an entry that is neither an integer nor a fraction
	// string.
	ErrBadEntry = errors.New("gridio: entry is not an integer or fraction")

	// ErrMissingMatrix is returned by Set.Get for an unknown name.
	ErrMissingMatrix = errors.New("gridio: no such matrix")
)

// Operation tags.
const (
	opDecode = "Decode"
	opEncode = "Encode"
	opLoad   = "Load"
)
