/*****************************************************************************************************************/

//	@package	optics/aspheric

/*****************************************************************************************************************/

package aspheric

/*****************************************************************************************************************/

import (
	"errors"
	"math"

	"github.com/claude-module/optics/pkg/matrix"
)

/*****************************************************************************************************************/

// FitRT10Coef fits the ten rt10 polynomial coefficients of a surface with known
// base radius R and conic k against measured (r, sag) samples, via ordinary
// least squares on the linear design matrix A[i][j] = r_i^p_j (p_j following the
// same even/odd exponent convention as SagRT10). Requires at least 10 samples.
func FitRT10Coef(r, sag []float64, R, k float64, modeOdd bool) ([10]float64, error) {
	var coef [10]float64

	n := len(r)
	if n != len(sag) {
		return coef, errors.New("aspheric: r and sag must have equal length")
	}
	if n < 10 {
		return coef, errors.New("aspheric: at least 10 samples are required to fit 10 coefficients")
	}

	design, err := matrix.New(n, 10)
	if err != nil {
		return coef, err
	}

	residual, err := matrix.New(n, 1)
	if err != nil {
		return coef, err
	}

	for i := 0; i < n; i++ {
		r2 := r[i] * r[i]

		rPow := r2
		if modeOdd {
			rPow = r2 * r[i]
		}

		for j := 0; j < 10; j++ {
			if err := design.Set(i, j, rPow); err != nil {
				return coef, err
			}
			rPow *= r2
		}

		if err := residual.Set(i, 0, sag[i]-dBaseSag(r[i], R, k)); err != nil {
			return coef, err
		}
	}

	designT, err := design.Transpose()
	if err != nil {
		return coef, err
	}

	normal, err := designT.Multiply(design)
	if err != nil {
		return coef, err
	}

	rhs, err := designT.Multiply(residual)
	if err != nil {
		return coef, err
	}

	inv, err := normal.Invert()
	if err != nil {
		return coef, err
	}

	solution, err := inv.Multiply(rhs)
	if err != nil {
		return coef, err
	}

	for j := 0; j < 10; j++ {
		v, err := solution.At(j, 0)
		if err != nil {
			return coef, err
		}
		coef[j] = v
	}

	return coef, nil
}

/*****************************************************************************************************************/

// dBaseSag is the conic-only contribution to SagRT10 (the base spherical/conic
// term, without the rt10 polynomial), used to residualize measured sag before
// fitting the polynomial coefficients linearly.
func dBaseSag(r, R, k float64) float64 {
	if R == 0 {
		return 0
	}

	r2 := r * r
	sqrtTerm := 1 - (1+k)*r2/(R*R)
	if !isFinite(sqrtTerm) || sqrtTerm < 0 {
		return 0
	}

	return r2 / (R * (1 + math.Sqrt(sqrtTerm)))
}

/*****************************************************************************************************************/
