package mat

// DefaultRidge is the damping applied to the Moore-Penrose pseudo-inverse by
// default, trading conditioning for accuracy near rank deficiency (a
// thruster layout with fewer independent axes than requested degrees of
// freedom). Configurable per call for future tuning.
const DefaultRidge = 1e-4

// PseudoInverse computes the damped Moore-Penrose pseudo-inverse of m via
// SVD: pinv = V * diag(sigma / (sigma^2 + ridge^2)) * U^T. Works for both
// overdetermined (rows >= cols) and underdetermined (rows < cols, the usual
// 6xN wrench matrix with N > 6) inputs, the latter by transposing into the
// SVD's required shape and swapping the result back. Fails only when the underlying SVD fails to
// converge.
func (m Matrix) PseudoInverse(ridge float32) (Matrix, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows >= cols {
		return pseudoInverseTall(m, ridge)
	}
	// Underdetermined: pinv(M) = pinv(M^T)^T.
	pt, err := pseudoInverseTall(m.Transpose(), ridge)
	if err != nil {
		return nil, err
	}
	return pt.Transpose(), nil
}

func pseudoInverseTall(m Matrix, ridge float32) (Matrix, error) {
	svd, err := m.SVD()
	if err != nil {
		return nil, err
	}
	cols := m.Cols()
	ridgeSq := ridge * ridge

	// sigmaInv[i] = sigma_i / (sigma_i^2 + ridge^2), the damped reciprocal.
	sigmaInv := make([]float32, cols)
	for i, sigma := range svd.S {
		sigmaInv[i] = sigma / (sigma*sigma + ridgeSq)
	}

	// pinv = V * diag(sigmaInv) * U^T
	v := svd.Vt.Transpose()
	vScaled := New(v.Rows(), v.Cols())
	for i := 0; i < v.Rows(); i++ {
		for j := 0; j < v.Cols(); j++ {
			vScaled[i][j] = v[i][j] * sigmaInv[j]
		}
	}
	return vScaled.Mul(svd.U.Transpose()), nil
}
