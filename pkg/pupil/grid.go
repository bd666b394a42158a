/*****************************************************************************************************************/

//	@package	optics/pupil

/*****************************************************************************************************************/

// Package pupil transforms a sparse set of ray-traced wavefront samples (or a
// caller-supplied pre-gridded pupil) into a 2D PSF intensity map by gridding,
// complex-pupil construction, a 2D FFT, and quadrant-swap, then extracts summary
// optical-quality metrics (Strehl ratio, encircled energy).
package pupil

/*****************************************************************************************************************/

import (
	"errors"
	"math"

	"github.com/claude-module/optics/pkg/fft"
)

/*****************************************************************************************************************/

// Grid is a square pupil sampling grid of side N, carrying parallel OPD,
// amplitude and mask arrays in row-major order (origin top-left).
type Grid struct {
	N         int
	OPD       []float64
	Amplitude []float64
	Mask      []int32
}

/*****************************************************************************************************************/

// ErrNotPowerOfTwo is returned wherever a grid size must be a positive power of two.
var ErrNotPowerOfTwo = errors.New("pupil: grid size must be a positive power of two")

/*****************************************************************************************************************/

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

/*****************************************************************************************************************/

// NewGridFromRays grids a sparse set of ray samples (ray_x, ray_y, ray_opd) onto an
// N×N square grid spanning [minX,maxX]×[minY,maxY]. A cell is masked in when it
// lies within the circular aperture of radius max(|maxX|,|maxY|); its OPD is taken
// from the nearest ray sample (scanning all rays, with early exit once a squared
// distance below 1e-8 is found). Amplitude is uniformly 1.0.
func NewGridFromRays(rayX, rayY, rayOPD []float64, n int, minX, maxX, minY, maxY float64) (*Grid, error) {
	if !isPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}

	total := n * n
	g := &Grid{
		N:         n,
		OPD:       make([]float64, total),
		Amplitude: make([]float64, total),
		Mask:      make([]int32, total),
	}

	for i := range g.Amplitude {
		g.Amplitude[i] = 1.0
	}

	xRange := maxX - minX
	yRange := maxY - minY
	invNMinus1 := 1.0 / float64(n-1)
	maxRadius := math.Max(math.Abs(maxX), math.Abs(maxY))
	maxRadiusSq := maxRadius * maxRadius

	const earlyExitThresholdSq = 1e-8

	for i := 0; i < n; i++ {
		gx := minX + xRange*float64(i)*invNMinus1

		for j := 0; j < n; j++ {
			gy := minY + yRange*float64(j)*invNMinus1
			idx := i*n + j

			radiusSq := gx*gx + gy*gy
			if radiusSq > maxRadiusSq {
				g.Mask[idx] = 0
				g.OPD[idx] = 0
				continue
			}

			g.Mask[idx] = 1

			minDistSq := math.Inf(1)
			nearestOPD := 0.0

			for k := range rayX {
				dx := rayX[k] - gx
				dy := rayY[k] - gy
				distSq := dx*dx + dy*dy

				if distSq < minDistSq {
					minDistSq = distSq
					nearestOPD = rayOPD[k]

					if distSq < earlyExitThresholdSq {
						break
					}
				}
			}

			g.OPD[idx] = nearestOPD
		}
	}

	return g, nil
}

/*****************************************************************************************************************/

// ComplexPupil builds the complex pupil field from a Grid: masked cells get
// amplitude[i]*(cos(k*opd[i]) + j*sin(k*opd[i])) with k = sign*2*pi/wavelength;
// unmasked cells are exactly zero. The ray-sample form uses sign=+1, the
// pre-gridded form uses sign=-1 (spec's preserved sign inconsistency between the
// two entry forms — see DESIGN.md).
func ComplexPupil(g *Grid, wavelength float64, negatePhase bool, e *fft.Engine) []complex128 {
	total := g.N * g.N
	e.EnsureTrigTable(total)

	k := 2 * math.Pi / wavelength
	if negatePhase {
		k = -k
	}

	field := make([]complex128, total)
	for i := 0; i < total; i++ {
		if g.Mask[i] == 0 {
			continue
		}

		phase := k * g.OPD[i]
		amp := 1.0
		if g.Amplitude != nil {
			amp = g.Amplitude[i]
		}

		field[i] = complex(amp*e.FastCos(phase), amp*e.FastSin(phase))
	}

	return field
}

/*****************************************************************************************************************/
