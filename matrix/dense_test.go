// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.Contains(t, err.Error(), "Dense.At(-1,0)")

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.Contains(t, err.Error(), "Dense.Set(2,0)")

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetSymmetric writes both mirrored cells and rejects rectangular receivers.
func TestSetSymmetric(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	require.NoError(t, m.SetSymmetric(0, 2, 5.5))
	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	require.Equal(t, 5.5, a)
	require.Equal(t, a, b)

	err = m.SetSymmetric(3, 0, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	r, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, r.SetSymmetric(0, 1, 1), matrix.ErrNonSquare)
}

// TestCloneIndependence verifies that Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	orig, _ := m.At(0, 1)
	got, _ := cp.At(0, 1)
	require.Equal(t, 3.0, orig)
	require.Equal(t, 9.0, got)
}

// TestString checks the row-per-line debug format.
func TestString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1.5))

	lines := strings.Split(strings.TrimSpace(m.String()), "\n")
	require.Equal(t, []string{"[0, 1.5]", "[0, 0]"}, lines)
}
