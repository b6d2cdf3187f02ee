// Package mat implements the small amount of dense real-valued linear
// algebra the thruster allocator needs: building the wrench-mapping matrix,
// multiplying it, and inverting/pseudo-inverting it once at geometry
// construction time. Geometry and the resulting pseudo-inverse are always
// plain float32; only the solve path that consumes them is generic over
// scalar.Number.
//
// Matrix layout is row-major, backed by a slice of row slices, the same
// convention the rest of this module's ancestry uses.
package mat

import "github.com/chewxy/math32"

type Matrix [][]float32

// New allocates a rows x cols matrix of zeros.
func New(rows, cols int) Matrix {
	backing := make([]float32, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}

func (m Matrix) Rows() int {
	return len(m)
}

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix) Clone() Matrix {
	out := New(m.Rows(), m.Cols())
	for i := range m {
		copy(out[i], m[i])
	}
	return out
}

func (m Matrix) Transpose() Matrix {
	out := New(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Mul computes m x o.
func (m Matrix) Mul(o Matrix) Matrix {
	rows, inner, cols := m.Rows(), m.Cols(), o.Cols()
	out := New(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			mik := m[i][k]
			if mik == 0 {
				continue
			}
			row := o[k]
			for j := 0; j < cols; j++ {
				out[i][j] += mik * row[j]
			}
		}
	}
	return out
}

// MulVec computes m x v for a column vector v.
func (m Matrix) MulVec(v []float32) []float32 {
	out := make([]float32, m.Rows())
	for i := range m {
		var sum float32
		row := m[i]
		for j, vj := range v {
			sum += row[j] * vj
		}
		out[i] = sum
	}
	return out
}

// Eye returns the n x n identity matrix.
func Eye(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Det computes the determinant of a square matrix via Gaussian elimination
// with partial pivoting. Undefined for non-square input.
func (m Matrix) Det() float32 {
	n := m.Rows()
	work := m.Clone()
	det := float32(1)
	for col := 0; col < n; col++ {
		pivot := col
		maxVal := math32.Abs(work[pivot][col])
		for r := col + 1; r < n; r++ {
			if v := math32.Abs(work[r][col]); v > maxVal {
				maxVal = v
				pivot = r
			}
		}
		if maxVal == 0 {
			return 0
		}
		if pivot != col {
			work[col], work[pivot] = work[pivot], work[col]
			det = -det
		}
		det *= work[col][col]
		for r := col + 1; r < n; r++ {
			factor := work[r][col] / work[col][col]
			for c := col; c < n; c++ {
				work[r][c] -= factor * work[col][c]
			}
		}
	}
	return det
}
