/*****************************************************************************************************************/

//	@package	optics/render

/*****************************************************************************************************************/

package render

/*****************************************************************************************************************/

import (
	"path/filepath"
	"testing"
)

/*****************************************************************************************************************/

func TestPSFHeatmapNormalizesRange(t *testing.T) {
	n := 4
	psf := make([]float64, n*n)
	for i := range psf {
		psf[i] = float64(i)
	}

	img := PSFHeatmap(psf, n)

	if img.Bounds().Dx() != n || img.Bounds().Dy() != n {
		t.Fatalf("PSFHeatmap bounds = %v; want %dx%d", img.Bounds(), n, n)
	}

	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("min-value pixel = %d; want 0", got)
	}
	if got := img.GrayAt(n-1, n-1).Y; got != 255 {
		t.Errorf("max-value pixel = %d; want 255", got)
	}
}

/*****************************************************************************************************************/

func TestPSFHeatmapConstantInputDoesNotPanic(t *testing.T) {
	psf := []float64{1, 1, 1, 1}
	img := PSFHeatmap(psf, 2)

	if img.GrayAt(0, 0).Y != 0 {
		t.Errorf("constant PSF pixel = %d; want 0", img.GrayAt(0, 0).Y)
	}
}

/*****************************************************************************************************************/

func TestSavePNGWritesFile(t *testing.T) {
	img := PSFHeatmap([]float64{0, 1, 2, 3}, 2)
	path := filepath.Join(t.TempDir(), "psf.png")

	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG returned error: %v", err)
	}
}

/*****************************************************************************************************************/

func TestEncircledEnergyCurveProducesNonEmptyImage(t *testing.T) {
	radii := []float64{1, 2, 3, 4}
	energies := []float64{0.2, 0.5, 0.8, 1.0}

	img := EncircledEnergyCurve(radii, energies, 64, 64)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("EncircledEnergyCurve bounds = %v; want 64x64", img.Bounds())
	}
}

/*****************************************************************************************************************/

func TestEncircledEnergyCurveHandlesEmptyInput(t *testing.T) {
	img := EncircledEnergyCurve(nil, nil, 16, 16)
	if img.Bounds().Dx() != 16 {
		t.Fatalf("EncircledEnergyCurve(empty) bounds = %v; want 16x16", img.Bounds())
	}
}

/*****************************************************************************************************************/
