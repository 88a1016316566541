// Package matrix provides the dense numeric storage used by the tour solvers.
//
// The package offers:
//
//   - Matrix, a minimal mutable two-dimensional float64 surface.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal)
//     used to check distance matrices before and after they are populated.
//
// All public methods return sentinel errors from errors.go; none of them
// panic on user input.
package matrix
