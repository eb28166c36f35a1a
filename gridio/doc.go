// SPDX-License-Identifier: MIT

// Package gridio reads and writes named exact matrices as TOML or YAML
// documents.
//
// A document is a single top-level table (TOML) or mapping (YAML). Every key
// names a matrix and every value is a non-empty 2-D array. Entries are either
// integers or fraction strings accepted by fraction.Parse:
//
//	# system.toml
//	a = [[2, 0], [0, 2]]
//	b = [["4"], ["6/1"]]
//	h = [["1", "1/2"], ["1/2", "1/3"]]
//
//	# system.yaml
//	a:
//	  - [2, 0]
//	  - [0, 2]
//	h:
//	  - ["1", 1/2]
//	  - [1/2, 1/3]
//
// Floating-point entries are rejected: 0.1 has no exact binary value, so
// fractions must be written as "p/q".
//
// Encode always writes entries as fraction strings, which both formats decode
// back to the same values.
package gridio
