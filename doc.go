// Package exactla is exact rational linear algebra for Go: no floating point,
// no tolerances, no rounding.
//
// What is inside?
//
//	fraction/      Fraction: immutable p/q over math/big, always normalized
//	matrix/        Dense: immutable matrix of fractions, Add/Sub/Scale/Mul,
//	               Transpose, ConcatHorizontal, Identity, Determinant,
//	               Gauss-Jordan Inverse with magnitude pivoting, Solve
//	gridio/        named matrices from TOML or YAML files
//	cmd/exactla/   command line front end (inverse, solve, mul, add,
//	               transpose, det)
//
// Guarantees:
//
//   - Inverse(A)·A == A·Inverse(A) == I exactly, for every invertible A.
//   - Singular input is reported (matrix.ErrNotInvertible), never "solved".
//   - No exported operation mutates its operands; every result is fresh.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromInts([][]int64{{1, 2}, {3, 4}})
//	inv, _ := a.Inverse()
//	fmt.Println(inv) // [[-2, 1], [3/2, -1/2]]
//
//	go get github.com/katalvlaran/exactla
package exactla
