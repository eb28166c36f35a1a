// SPDX-License-Identifier: MIT

package gridio

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/exactla/matrix"
)

// Set maps matrix names to matrices.
type Set map[string]*matrix.Dense

// Get returns the matrix called name.
// Errors: ErrMissingMatrix.
func (s Set) Get(name string) (*matrix.Dense, error) {
	m, ok := s[name]
	if !ok || m == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingMatrix)
	}

	return m, nil
}

// Names returns the matrix names in ascending order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
