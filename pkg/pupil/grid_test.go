/*****************************************************************************************************************/

//	@package	optics/pupil

/*****************************************************************************************************************/

package pupil

/*****************************************************************************************************************/

import (
	"testing"

	"github.com/claude-module/optics/pkg/fft"
)

/*****************************************************************************************************************/

func TestNewGridFromRaysRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewGridFromRays(nil, nil, nil, 3, -1, 1, -1, 1)
	if err != ErrNotPowerOfTwo {
		t.Errorf("NewGridFromRays(n=3) error = %v; want ErrNotPowerOfTwo", err)
	}
}

/*****************************************************************************************************************/

func TestNewGridFromRaysMasksOutsideAperture(t *testing.T) {
	rayX := []float64{0}
	rayY := []float64{0}
	rayOPD := []float64{1.0}

	g, err := NewGridFromRays(rayX, rayY, rayOPD, 8, -1, 1, -1, 1)
	if err != nil {
		t.Fatalf("NewGridFromRays returned error: %v", err)
	}

	var anyMasked, anyUnmasked bool
	for _, m := range g.Mask {
		if m == 0 {
			anyUnmasked = true
		} else {
			anyMasked = true
		}
	}

	if !anyMasked || !anyUnmasked {
		t.Error("expected both masked and unmasked cells for a circular aperture inscribed in a square grid")
	}
}

/*****************************************************************************************************************/

func TestNewGridFromRaysNearestNeighborOPD(t *testing.T) {
	rayX := []float64{0.9}
	rayY := []float64{0.9}
	rayOPD := []float64{3.5}

	g, err := NewGridFromRays(rayX, rayY, rayOPD, 8, -1, 1, -1, 1)
	if err != nil {
		t.Fatalf("NewGridFromRays returned error: %v", err)
	}

	var sawExpectedOPD bool
	for i, m := range g.Mask {
		if m != 0 && g.OPD[i] == 3.5 {
			sawExpectedOPD = true
		}
	}

	if !sawExpectedOPD {
		t.Error("expected at least one masked cell to take the single ray sample's OPD")
	}
}

/*****************************************************************************************************************/

func TestComplexPupilZeroOutsideMask(t *testing.T) {
	g, err := NewGridFromRays([]float64{0}, []float64{0}, []float64{0}, 4, -1, 1, -1, 1)
	if err != nil {
		t.Fatalf("NewGridFromRays returned error: %v", err)
	}

	e := fft.NewEngine()
	field := ComplexPupil(g, 0.55, false, e)

	for i, m := range g.Mask {
		if m == 0 && field[i] != 0 {
			t.Errorf("field[%d] = %v outside mask; want 0", i, field[i])
		}
	}
}

/*****************************************************************************************************************/

func TestComplexPupilSignConventionDiffersByForm(t *testing.T) {
	g, err := NewGridFromRays([]float64{0}, []float64{0}, []float64{1.0}, 4, -1, 1, -1, 1)
	if err != nil {
		t.Fatalf("NewGridFromRays returned error: %v", err)
	}

	e := fft.NewEngine()
	raySample := ComplexPupil(g, 0.55, false, e)
	gridForm := ComplexPupil(g, 0.55, true, e)

	for i, m := range g.Mask {
		if m == 0 {
			continue
		}
		if imag(raySample[i]) == 0 || imag(gridForm[i]) == 0 {
			continue
		}
		if (imag(raySample[i]) > 0) == (imag(gridForm[i]) > 0) {
			t.Errorf("expected opposite phase sign conventions between ray-sample and grid forms at index %d", i)
		}
	}
}

/*****************************************************************************************************************/
