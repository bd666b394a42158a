/*****************************************************************************************************************/

//	@package	optics/render

/*****************************************************************************************************************/

// Package render rasterizes PSF intensity maps and encircled-energy curves to
// PNG for visual inspection, using fogleman/gg as the drawing context the same
// way the host's plate-solve annotator rasterizes its own output.
package render

/*****************************************************************************************************************/

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/fogleman/gg"
)

/*****************************************************************************************************************/

// PSFHeatmap normalizes an N×N row-major PSF intensity map to [0,255] and
// returns it as a grayscale image, clamping non-finite samples to 0.
func PSFHeatmap(psf []float64, n int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, n, n))

	minVal, maxVal := psf[0], psf[0]
	for _, v := range psf {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			normalized := (psf[y*n+x] - minVal) / (maxVal - minVal)
			if math.IsNaN(normalized) || math.IsInf(normalized, 0) {
				normalized = 0
			}
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(normalized * 255))})
		}
	}

	return img
}

/*****************************************************************************************************************/

// SavePNG encodes img as a PNG file at path.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

/*****************************************************************************************************************/

// EncircledEnergyCurve draws an encircled-energy-against-radius line plot into a
// w×h canvas: radii on the x-axis (scaled to the widest radius), energy fraction
// [0,1] on the y-axis.
func EncircledEnergyCurve(radii, energies []float64, w, h int) image.Image {
	dc := gg.NewContext(w, h)

	dc.SetColor(color.RGBA{R: 15, G: 23, B: 42, A: 255})
	dc.Clear()

	if len(radii) == 0 {
		return dc.Image()
	}

	maxRadius := radii[0]
	for _, r := range radii {
		if r > maxRadius {
			maxRadius = r
		}
	}
	if maxRadius == 0 {
		maxRadius = 1
	}

	margin := 10.0
	plotW := float64(w) - 2*margin
	plotH := float64(h) - 2*margin

	dc.SetColor(color.RGBA{R: 129, G: 140, B: 248, A: 255})
	dc.SetLineWidth(2)

	for i := 0; i < len(radii); i++ {
		x := margin + plotW*(radii[i]/maxRadius)
		y := margin + plotH*(1-clamp01(energies[i]))

		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	return dc.Image()
}

/*****************************************************************************************************************/

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

/*****************************************************************************************************************/
