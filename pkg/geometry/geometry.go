/*****************************************************************************************************************/

//	@package	optics/geometry

/*****************************************************************************************************************/

// Package geometry holds the small Cartesian-plane primitives shared by the PSF
// pipeline's pixel-distance bookkeeping (encircled energy is defined as a
// Euclidean radius from the PSF's center pixel).
package geometry

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// DistanceBetweenTwoCartesianPoints returns the Euclidean distance between
// (x1,y1) and (x2,y2).
func DistanceBetweenTwoCartesianPoints(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

/*****************************************************************************************************************/
