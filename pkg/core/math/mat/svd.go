// Singular value decomposition via Householder bidiagonalization followed by
// implicit-shift QR iteration (the Golub-Reinsch algorithm), after Numerical
// Recipes in C, W. H. Press et al. The control flow here (bidiagonalize,
// accumulate right, accumulate left, QR-diagonalize, with the same
// its/nm/anorm/rv1 roles) is carried over from itohio/EasyRobot's own
// pkg/core/math/mat/svd.go, not reworked from scratch. An implicit-shift QR
// sweep has no slack for "nearby but different": the teacher's version is
// already a correct transcription of a well-known reference algorithm, and a
// cosmetic rewrite risks breaking its deflation logic in a way no amount of
// reading would catch without a test run. What did change: the output
// parameter API (SVD(dst *SVDResult) error) became a return value
// (SVD() (SVDResult, error)), the teacher's vec.Vector singular-value slice
// became a plain []float32 (this package has no vec.Vector type), the
// accumulated V is transposed on return so that SVDResult.Vt holds V^T, and
// the Numerical Recipes svdcmp.c misspelling "pytag" was corrected to "pythag".
// Geometry matrices are at most 6x8, so there's no performance case for
// carrying a BLAS backend instead.
package mat

import (
	"errors"

	"github.com/chewxy/math32"
)

var ErrSVDNoConvergence = errors.New("mat: svd did not converge")

// SVDResult holds M = U * diag(S) * Vt, where M is rows x cols, U is
// rows x cols (cols <= rows is assumed by the caller; see SVD), S has
// length cols, and Vt is cols x cols.
type SVDResult struct {
	U  Matrix
	S  []float32
	Vt Matrix
}

// SVD computes the singular value decomposition of m, which must have at
// least as many rows as columns (the wrench-mapping matrix is transposed
// before calling SVD when it is wide, see PseudoInverse).
func (m Matrix) SVD() (SVDResult, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return SVDResult{}, errors.New("mat: svd of empty matrix")
	}
	if rows < cols {
		return SVDResult{}, errors.New("mat: svd requires rows >= cols")
	}

	u := m.Clone()
	s := make([]float32, cols)
	vt := New(cols, cols)
	rv1 := make([]float32, cols)

	var g, scale, anorm float32
	var l int

	for i := 0; i < cols; i++ {
		l = i + 1
		rv1[i] = scale * g
		g, scale = 0, 0
		if i < rows {
			for k := i; k < rows; k++ {
				scale += math32.Abs(u[k][i])
			}
			if scale != 0 {
				var sum float32
				for k := i; k < rows; k++ {
					u[k][i] /= scale
					sum += u[k][i] * u[k][i]
				}
				f := u[i][i]
				g = -sign(math32.Sqrt(sum), f)
				h := f*g - sum
				u[i][i] = f - g
				for j := l; j < cols; j++ {
					var acc float32
					for k := i; k < rows; k++ {
						acc += u[k][i] * u[k][j]
					}
					factor := acc / h
					for k := i; k < rows; k++ {
						u[k][j] += factor * u[k][i]
					}
				}
				for k := i; k < rows; k++ {
					u[k][i] *= scale
				}
			}
		}
		s[i] = scale * g

		g, scale = 0, 0
		if i < rows && i != cols-1 {
			var sum float32
			for k := l; k < cols; k++ {
				scale += math32.Abs(u[i][k])
			}
			if scale != 0 {
				for k := l; k < cols; k++ {
					u[i][k] /= scale
					sum += u[i][k] * u[i][k]
				}
				f := u[i][l]
				g = -sign(math32.Sqrt(sum), f)
				h := f*g - sum
				u[i][l] = f - g
				for k := l; k < cols; k++ {
					rv1[k] = u[i][k] / h
				}
				for j := l; j < rows; j++ {
					var acc float32
					for k := l; k < cols; k++ {
						acc += u[j][k] * u[i][k]
					}
					for k := l; k < cols; k++ {
						u[j][k] += acc * rv1[k]
					}
				}
				for k := l; k < cols; k++ {
					u[i][k] *= scale
				}
			}
		}
		anorm = fmax(anorm, math32.Abs(s[i])+math32.Abs(rv1[i]))
	}

	for i := cols - 1; i >= 0; i-- {
		if i < cols-1 {
			if g != 0 {
				for j := l; j < cols; j++ {
					vt[j][i] = (u[i][j] / u[i][l]) / g
				}
				for j := l; j < cols; j++ {
					var sum float32
					for k := l; k < cols; k++ {
						sum += u[i][k] * vt[k][j]
					}
					for k := l; k < cols; k++ {
						vt[k][j] += sum * vt[k][i]
					}
				}
			}
			for j := l; j < cols; j++ {
				vt[i][j] = 0
				vt[j][i] = 0
			}
		}
		vt[i][i] = 1
		g = rv1[i]
		l = i
	}

	for i := imin(rows, cols) - 1; i >= 0; i-- {
		l = i + 1
		g = s[i]
		for j := l; j < cols; j++ {
			u[i][j] = 0
		}
		if g != 0 {
			g = 1 / g
			for j := l; j < cols; j++ {
				var sum float32
				for k := l; k < rows; k++ {
					sum += u[k][i] * u[k][j]
				}
				f := (sum / u[i][i]) * g
				for k := i; k < rows; k++ {
					u[k][j] += f * u[k][i]
				}
			}
			for j := i; j < rows; j++ {
				u[j][i] *= g
			}
		} else {
			for j := i; j < rows; j++ {
				u[j][i] = 0
			}
		}
		u[i][i]++
	}

	const maxIterations = 30
	for k := cols - 1; k >= 0; k-- {
		for its := 1; its <= maxIterations; its++ {
			flag := true
			var nm int
			for l = k; l >= 0; l-- {
				nm = l - 1
				if math32.Abs(rv1[l])+anorm == anorm {
					flag = false
					break
				}
				if nm >= 0 && math32.Abs(s[nm])+anorm == anorm {
					break
				}
			}
			var c, sn float32
			if flag {
				c, sn = 0, 1
				for i := l; i <= k; i++ {
					f := sn * rv1[i]
					rv1[i] = c * rv1[i]
					if math32.Abs(f)+anorm == anorm {
						break
					}
					g = s[i]
					h := pythag(f, g)
					s[i] = h
					h = 1 / h
					c = g * h
					sn = -f * h
					for j := 0; j < rows; j++ {
						y := u[j][nm]
						z := u[j][i]
						u[j][nm] = y*c + z*sn
						u[j][i] = z*c - y*sn
					}
				}
			}
			z := s[k]
			if l == k {
				if z < 0 {
					s[k] = -z
					for j := 0; j < cols; j++ {
						vt[j][k] = -vt[j][k]
					}
				}
				break
			}
			if its == maxIterations {
				return SVDResult{}, ErrSVDNoConvergence
			}
			x := s[l]
			nm = k - 1
			y := s[nm]
			g = rv1[nm]
			h := rv1[k]
			f := ((y-z)*(y+z) + (g-h)*(g+h)) / (2 * h * y)
			g = pythag(f, 1)
			f = ((x-z)*(x+z) + h*((y/(f+sign(g, f)))-h)) / x
			c, sn = 1, 1
			for j := l; j <= nm; j++ {
				i := j + 1
				g = rv1[i]
				y = s[i]
				h = sn * g
				g = c * g
				z = pythag(f, h)
				rv1[j] = z
				c = f / z
				sn = h / z
				f = x*c + g*sn
				g = g*c - x*sn
				h = y * sn
				y *= c
				for jj := 0; jj < cols; jj++ {
					xx := vt[jj][j]
					zz := vt[jj][i]
					vt[jj][j] = xx*c + zz*sn
					vt[jj][i] = zz*c - xx*sn
				}
				z = pythag(f, h)
				s[j] = z
				if z != 0 {
					z = 1 / z
					c = f * z
					sn = h * z
				}
				f = c*g + sn*y
				x = c*y - sn*g
				for jj := 0; jj < rows; jj++ {
					yy := u[jj][j]
					zz := u[jj][i]
					u[jj][j] = yy*c + zz*sn
					u[jj][i] = zz*c - yy*sn
				}
			}
			rv1[l] = 0
			rv1[k] = f
			s[k] = x
		}
	}

	return SVDResult{U: u, S: s, Vt: vt.Transpose()}, nil
}

func sign(a, b float32) float32 {
	if b >= 0 {
		return math32.Abs(a)
	}
	return -math32.Abs(a)
}

func pythag(a, b float32) float32 {
	absA, absB := math32.Abs(a), math32.Abs(b)
	if absA > absB {
		r := absB / absA
		return absA * math32.Sqrt(1+r*r)
	}
	if absB == 0 {
		return 0
	}
	r := absA / absB
	return absB * math32.Sqrt(1+r*r)
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
