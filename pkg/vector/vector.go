/*****************************************************************************************************************/

//	@package	optics/vector

/*****************************************************************************************************************/

// Package vector provides the small 3D vector helpers the ray-tracing host exposes
// for caller convenience. None of these are used internally by the ray–surface
// solver or the PSF pipeline; they exist so a caller assembling rays can do the
// common dot/cross/normalize/sphere-intersect arithmetic without reimplementing it.
package vector

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Dot returns the dot product of a and b.
func Dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

/*****************************************************************************************************************/

// Cross returns the cross product a × b.
func Cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

/*****************************************************************************************************************/

// Normalize returns v scaled to unit length. A zero-length vector yields (0,0,0).
func Normalize(v [3]float64) [3]float64 {
	length := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if length == 0 {
		return [3]float64{}
	}

	inv := 1 / length
	return [3]float64{v[0] * inv, v[1] * inv, v[2] * inv}
}

/*****************************************************************************************************************/

// BatchNormalize normalizes every vector in v.
func BatchNormalize(v [][3]float64) [][3]float64 {
	out := make([][3]float64, len(v))
	for i, vi := range v {
		out[i] = Normalize(vi)
	}
	return out
}

/*****************************************************************************************************************/

// RaySphereIntersect returns the smaller positive parametric distance t at which the
// ray (origin, direction) meets the sphere of the given center and radius, or -1 if
// there is no such intersection.
func RaySphereIntersect(origin, direction, center [3]float64, radius float64) float64 {
	oc := [3]float64{origin[0] - center[0], origin[1] - center[1], origin[2] - center[2]}

	a := Dot(direction, direction)
	b := 2 * Dot(oc, direction)
	c := Dot(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return -1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return -1
}

/*****************************************************************************************************************/
