/*****************************************************************************************************************/

//	@package	optics/vector

/*****************************************************************************************************************/

package vector

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func TestDot(t *testing.T) {
	got := Dot([3]float64{1, 2, 3}, [3]float64{4, 5, 6})
	want := 32.0
	if got != want {
		t.Errorf("Dot = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestCross(t *testing.T) {
	got := Cross([3]float64{1, 0, 0}, [3]float64{0, 1, 0})
	want := [3]float64{0, 0, 1}
	if got != want {
		t.Errorf("Cross = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

// TestNormalize verifies invariant 4: ‖out‖ = 1 when ‖v‖ > 0; (0,0,0) when ‖v‖ = 0.
func TestNormalize(t *testing.T) {
	got := Normalize([3]float64{3, 4, 0})
	length := math.Sqrt(got[0]*got[0] + got[1]*got[1] + got[2]*got[2])
	if math.Abs(length-1) > 1e-12 {
		t.Errorf("‖Normalize(v)‖ = %v; want 1", length)
	}

	if got := Normalize([3]float64{0, 0, 0}); got != ([3]float64{}) {
		t.Errorf("Normalize(0) = %v; want (0,0,0)", got)
	}
}

/*****************************************************************************************************************/

func TestBatchNormalize(t *testing.T) {
	in := [][3]float64{{3, 4, 0}, {0, 0, 0}, {0, 0, 5}}
	out := BatchNormalize(in)

	for i, v := range in {
		want := Normalize(v)
		if out[i] != want {
			t.Errorf("BatchNormalize[%d] = %v; want %v", i, out[i], want)
		}
	}
}

/*****************************************************************************************************************/

func TestRaySphereIntersectHit(t *testing.T) {
	got := RaySphereIntersect([3]float64{0, 0, -5}, [3]float64{0, 0, 1}, [3]float64{0, 0, 0}, 1)
	want := 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("RaySphereIntersect = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestRaySphereIntersectMiss(t *testing.T) {
	got := RaySphereIntersect([3]float64{10, 10, -5}, [3]float64{0, 0, 1}, [3]float64{0, 0, 0}, 1)
	if got != -1 {
		t.Errorf("RaySphereIntersect(miss) = %v; want -1", got)
	}
}

/*****************************************************************************************************************/
