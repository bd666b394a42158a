/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/claude-module/optics/pkg/pupil"
	"github.com/claude-module/optics/pkg/render"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	psfRaysFile   string
	psfGridSize   int
	psfWavelength float64
	psfMinX       float64
	psfMaxX       float64
	psfMinY       float64
	psfMaxY       float64
	psfPNGOut     string
)

/*****************************************************************************************************************/

var psfCommand = &cobra.Command{
	Use:   "psf",
	Short: "psf",
	Long:  "psf grids ray-traced wavefront samples from a CSV file (x,y,opd columns) and synthesizes the point-spread function.",
	Run: func(cmd *cobra.Command, args []string) {
		rayX, rayY, rayOPD, err := readRaySamples(psfRaysFile)
		if err != nil {
			fmt.Println("failed to read ray samples:", err)
			cmd.Usage()
			return
		}

		psf, err := pupil.CalculatePSF(rayX, rayY, rayOPD, psfGridSize, psfWavelength, psfMinX, psfMaxX, psfMinY, psfMaxY)
		if err != nil {
			fmt.Println("failed to synthesize psf:", err)
			return
		}

		strehl := pupil.Strehl(psf, psfGridSize)
		radii := []float64{1, 2, 4, 8, 16}
		energies := pupil.EncircledEnergy(psf, psfGridSize, radii)

		fmt.Printf("strehl = %g\n", strehl)
		for i, r := range radii {
			fmt.Printf("encircled energy within %g px = %g\n", r, energies[i])
		}

		if psfPNGOut != "" {
			img := render.PSFHeatmap(psf, psfGridSize)
			if err := render.SavePNG(psfPNGOut, img); err != nil {
				fmt.Println("failed to save psf heatmap:", err)
				return
			}
			fmt.Println("psf heatmap saved to", psfPNGOut)
		}
	},
}

/*****************************************************************************************************************/

func readRaySamples(path string) (x, y, opd []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	for _, row := range records {
		if len(row) != 3 {
			return nil, nil, nil, fmt.Errorf("expected 3 columns (x,y,opd), got %d", len(row))
		}

		xv, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		yv, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		ov, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, nil, nil, err
		}

		x = append(x, xv)
		y = append(y, yv)
		opd = append(opd, ov)
	}

	return x, y, opd, nil
}

/*****************************************************************************************************************/

func init() {
	psfCommand.Flags().StringVarP(&psfRaysFile, "rays", "i", "", "CSV file of ray samples (x,y,opd columns, no header)")
	psfCommand.Flags().IntVarP(&psfGridSize, "n", "n", 64, "Pupil grid size (must be a power of two)")
	psfCommand.Flags().Float64VarP(&psfWavelength, "wavelength", "w", 0.55, "Wavelength in the same units as the ray OPD samples")
	psfCommand.Flags().Float64Var(&psfMinX, "min-x", -1, "Pupil grid lower x bound")
	psfCommand.Flags().Float64Var(&psfMaxX, "max-x", 1, "Pupil grid upper x bound")
	psfCommand.Flags().Float64Var(&psfMinY, "min-y", -1, "Pupil grid lower y bound")
	psfCommand.Flags().Float64Var(&psfMaxY, "max-y", 1, "Pupil grid upper y bound")
	psfCommand.Flags().StringVar(&psfPNGOut, "png", "", "If set, save a grayscale PSF heatmap PNG to this path")
	psfCommand.MarkFlagRequired("rays")
}

/*****************************************************************************************************************/
