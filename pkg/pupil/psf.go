/*****************************************************************************************************************/

//	@package	optics/pupil

/*****************************************************************************************************************/

package pupil

/*****************************************************************************************************************/

import (
	"github.com/claude-module/optics/pkg/fft"
	"github.com/claude-module/optics/pkg/geometry"
	"gonum.org/v1/gonum/floats"
)

/*****************************************************************************************************************/

// CalculatePSF grids ray_x/ray_y/ray_opd onto an N×N pupil, builds the complex
// pupil with the ray-sample form's sign convention, runs the forward 2D FFT, and
// returns the centered intensity map. Each call owns a private *fft.Engine so
// concurrent callers never contend over cache growth.
func CalculatePSF(rayX, rayY, rayOPD []float64, n int, wavelength, minX, maxX, minY, maxY float64) ([]float64, error) {
	grid, err := NewGridFromRays(rayX, rayY, rayOPD, n, minX, maxX, minY, maxY)
	if err != nil {
		return nil, err
	}

	return psfFromGrid(grid, wavelength, false)
}

/*****************************************************************************************************************/

// CalculatePSFGrid runs the PSF pipeline directly from a caller-supplied pre-
// gridded pupil (already piston/tilt corrected), using the grid form's negated
// phase sign convention (OPD as delay).
func CalculatePSFGrid(g *Grid, wavelength float64) ([]float64, error) {
	if !isPowerOfTwo(g.N) {
		return nil, ErrNotPowerOfTwo
	}
	return psfFromGrid(g, wavelength, true)
}

/*****************************************************************************************************************/

func psfFromGrid(g *Grid, wavelength float64, negatePhase bool) ([]float64, error) {
	e := fft.NewEngine()
	field := ComplexPupil(g, wavelength, negatePhase, e)

	e.FFT2D(field, g.N, false)

	intensity := make([]float64, len(field))
	for i, c := range field {
		intensity[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	FFTShift(intensity, g.N)
	return intensity, nil
}

/*****************************************************************************************************************/

// FFTShift swaps quadrants of a square N×N row-major array so the DC component
// moves from the corner to the center: Q1<->Q3, Q2<->Q4.
func FFTShift(data []float64, n int) {
	half := n / 2

	for i := 0; i < half; i++ {
		for j := 0; j < half; j++ {
			a, b := i*n+j, (i+half)*n+(j+half)
			data[a], data[b] = data[b], data[a]

			c, d := i*n+(j+half), (i+half)*n+j
			data[c], data[d] = data[d], data[c]
		}
	}
}

/*****************************************************************************************************************/

// Strehl returns the PSF's center-pixel intensity. Normalization to the
// diffraction-limited peak is assumed to have already happened upstream; the
// caller is responsible for the reference peak.
func Strehl(psf []float64, n int) float64 {
	center := n / 2
	return psf[center*n+center]
}

/*****************************************************************************************************************/

// EncircledEnergy returns, for each radius in radii, the fraction of total PSF
// energy within that Euclidean pixel distance of the center (n/2, n/2).
func EncircledEnergy(psf []float64, n int, radii []float64) []float64 {
	total := floats.Sum(psf)
	center := n / 2

	energies := make([]float64, len(radii))

	for ri, radius := range radii {
		encircled := 0.0

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if geometry.DistanceBetweenTwoCartesianPoints(float64(i), float64(j), float64(center), float64(center)) <= radius {
					encircled += psf[i*n+j]
				}
			}
		}

		energies[ri] = encircled / total
	}

	return energies
}

/*****************************************************************************************************************/
