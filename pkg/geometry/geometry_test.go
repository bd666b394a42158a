/*****************************************************************************************************************/

//	@package	optics/geometry

/*****************************************************************************************************************/

package geometry

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestDistanceBetweenTwoCartesianPoints(t *testing.T) {
	x1, y1 := 0.0, 0.0
	x2, y2 := 3.0, 4.0

	expected := 5.0

	result := DistanceBetweenTwoCartesianPoints(x1, y1, x2, y2)

	if result != expected {
		t.Errorf("DistanceBetweenTwoCartesianPoints(%f, %f, %f, %f) = %f; want %f", x1, y1, x2, y2, result, expected)
	}
}

/*****************************************************************************************************************/

func TestDistanceBetweenTwoCartesianPointsSamePoint(t *testing.T) {
	if got := DistanceBetweenTwoCartesianPoints(1, 1, 1, 1); got != 0 {
		t.Errorf("DistanceBetweenTwoCartesianPoints(same point) = %v; want 0", got)
	}
}

/*****************************************************************************************************************/
