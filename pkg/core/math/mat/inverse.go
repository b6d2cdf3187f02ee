package mat

import (
	"errors"

	"github.com/chewxy/math32"
)

// SingularityTolerance is the pivot magnitude below which a matrix is
// treated as singular.
const SingularityTolerance = 1e-6

var (
	ErrNotSquare = errors.New("mat: matrix must be square")
	ErrSingular  = errors.New("mat: matrix is singular")
)

// Inverse computes the inverse of a square matrix via Gauss-Jordan
// elimination with partial pivoting.
func (m Matrix) Inverse() (Matrix, error) {
	n := m.Rows()
	if n == 0 || n != m.Cols() {
		return nil, ErrNotSquare
	}

	aug := New(n, 2*n)
	for i := 0; i < n; i++ {
		copy(aug[i][:n], m[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		maxVal := math32.Abs(aug[pivot][col])
		for r := col + 1; r < n; r++ {
			if v := math32.Abs(aug[r][col]); v > maxVal {
				maxVal = v
				pivot = r
			}
		}
		if maxVal < SingularityTolerance {
			return nil, ErrSingular
		}
		if pivot != col {
			aug[col], aug[pivot] = aug[pivot], aug[col]
		}
		pivotVal := aug[col][col]
		inv := 1 / pivotVal
		for c := 0; c < 2*n; c++ {
			aug[col][c] *= inv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 2*n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	out := New(n, n)
	for i := 0; i < n; i++ {
		copy(out[i], aug[i][n:])
	}
	return out, nil
}
