/*****************************************************************************************************************/

//	@package	optics/raytrace

/*****************************************************************************************************************/

// Package raytrace locates the intersection of a 3D ray with a rotationally
// symmetric aspheric surface described by aspheric.Profile, via seeded Newton
// iteration. The surface is assumed to lie in the ray's local frame with its vertex
// at z=0; refraction/reflection and off-axis surfaces are out of scope (the caller
// owns direction transformation downstream of the returned parametric distance).
package raytrace

/*****************************************************************************************************************/

import (
	"math"

	"github.com/claude-module/optics/pkg/aspheric"
)

/*****************************************************************************************************************/

const (
	epsT    = 1e-10
	epsDirZ = 1e-14
	epsR    = 1e-14
	epsDFdt = 1e-14

	defaultMaxIter = 20
	defaultTol     = 1e-7

	failure = -1.0
)

/*****************************************************************************************************************/

// Ray is a 3D ray expressed in the surface-local frame where the surface vertex
// lies at z=0.
type Ray struct {
	Origin    [3]float64
	Direction [3]float64
}

/*****************************************************************************************************************/

// IntersectAsphericRT10 returns the non-negative parametric distance t at which
// ray intersects the aspheric surface described by (semidia, R, k, coef, modeOdd),
// or -1 if no such t is found within maxIter Newton iterations from any of the
// seeded initial guesses.
//
// maxIter<=0 defaults to 20; tol<=0 defaults to 1e-7. Non-finite ray components
// immediately yield the failure sentinel.
func IntersectAsphericRT10(
	ray Ray,
	semidia, R, k float64,
	coef [10]float64,
	modeOdd bool,
	maxIter int,
	tol float64,
) float64 {
	ox, oy, oz := ray.Origin[0], ray.Origin[1], ray.Origin[2]
	dx, dy, dz := ray.Direction[0], ray.Direction[1], ray.Direction[2]

	if !isFinite(ox) || !isFinite(oy) || !isFinite(oz) {
		return failure
	}
	if !isFinite(dx) || !isFinite(dy) || !isFinite(dz) {
		return failure
	}

	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}
	if tol <= 0 {
		tol = defaultTol
	}

	guesses := seedGuesses(ox, oy, oz, dx, dy, dz, semidia, R)

	for _, t0 := range guesses {
		if t, ok := newtonSolve(t0, ox, oy, oz, dx, dy, dz, semidia, R, k, coef, modeOdd, maxIter, tol); ok {
			return t
		}
	}

	return failure
}

/*****************************************************************************************************************/

// seedGuesses assembles up to 10 initial Newton guesses in priority order: sphere
// approximation roots, the z=0 plane crossing, two semidiameter-edge guesses, and a
// fallback ladder if nothing else produced a candidate.
func seedGuesses(ox, oy, oz, dx, dy, dz, semidia, R float64) []float64 {
	guesses := make([]float64, 0, 10)

	// 1) Sphere approximation, center (0,0,R), both roots (nearest first).
	if isFinite(R) && R != 0 {
		cz := R
		A := dx*dx + dy*dy + dz*dz
		if A != 0 {
			B := 2 * (ox*dx + oy*dy + (oz-cz)*dz)
			C := ox*ox + oy*oy + (oz-cz)*(oz-cz) - R*R
			D := B*B - 4*A*C
			if D >= 0 {
				sD := math.Sqrt(D)
				t1 := (-B - sD) / (2 * A)
				t2 := (-B + sD) / (2 * A)

				if t1 > t2 {
					t1, t2 = t2, t1
				}
				if t1 > epsT {
					guesses = append(guesses, t1)
				}
				if t2 > epsT {
					guesses = append(guesses, t2)
				}
			}
		}
	}

	// 2) Plane z=0 crossing.
	if math.Abs(dz) > epsDirZ {
		tp := -oz / dz
		if tp > epsT {
			guesses = append(guesses, tp)
		}
	}

	// 3) Semidiameter-edge guesses.
	if isFinite(semidia) && semidia > 0 {
		curR := math.Hypot(ox, oy)
		dirR := math.Hypot(dx, dy)

		if dirR > epsR {
			for _, targetR := range [2]float64{semidia * 0.8, semidia * 1.0} {
				if targetR > curR {
					ts := (targetR - curR) / dirR
					if ts > epsT {
						guesses = append(guesses, ts)
					}
				}
			}
		}
	}

	// 4) Fallback ladder.
	if len(guesses) == 0 {
		guesses = append(guesses, 1e-6, 1e-4, 1e-2)
	}

	return guesses
}

/*****************************************************************************************************************/

// newtonSolve runs Newton iteration from a single seed t0, returning (t, true) on
// convergence inside the semidiameter, or (_, false) if the seed should be
// abandoned in favor of the next one.
func newtonSolve(
	t0, ox, oy, oz, dx, dy, dz, semidia, R, k float64,
	coef [10]float64,
	modeOdd bool,
	maxIter int,
	tol float64,
) (float64, bool) {
	t := t0
	if !(t > 0) || !isFinite(t) {
		return 0, false
	}

	for i := 0; i < maxIter; i++ {
		x := ox + dx*t
		y := oy + dy*t
		z := oz + dz*t
		r2 := x*x + y*y
		r := math.Sqrt(r2)

		sag := aspheric.SagRT10(r, R, k, coef, modeOdd)
		F := z - sag

		if math.Abs(F) < tol {
			if isFinite(semidia) && semidia > 0 && r > semidia {
				return 0, false // try next seed
			}
			if t > 0 {
				return t, true
			}
			return 0, false
		}

		dzdr := aspheric.DSagDrRT10(r, R, k, coef, modeOdd)

		drdt := 0.0
		if r > epsR {
			drdt = (x*dx + y*dy) / r
		}

		dFdt := dz - dzdr*drdt
		if !isFinite(dFdt) || math.Abs(dFdt) < epsDFdt {
			return 0, false
		}

		step := F / dFdt
		if !isFinite(step) {
			return 0, false
		}

		t -= step
		if !(t > 0) {
			return 0, false
		}
	}

	return 0, false
}

/*****************************************************************************************************************/

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

/*****************************************************************************************************************/
