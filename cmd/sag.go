/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/claude-module/optics/pkg/aspheric"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	sagRadial  float64
	sagRadius  float64
	sagConic   float64
	sagCoefCSV string
	sagModeOdd bool
)

/*****************************************************************************************************************/

var sagCommand = &cobra.Command{
	Use:   "sag",
	Short: "sag",
	Long:  "sag evaluates the sagitta of an rt10-parameterized aspheric surface at a given radial coordinate.",
	Run: func(cmd *cobra.Command, args []string) {
		coef, err := parseCoef10(sagCoefCSV)
		if err != nil {
			fmt.Println("invalid --coef:", err)
			cmd.Usage()
			return
		}

		z := aspheric.SagRT10(sagRadial, sagRadius, sagConic, coef, sagModeOdd)
		dz := aspheric.DSagDrRT10(sagRadial, sagRadius, sagConic, coef, sagModeOdd)

		fmt.Printf("sag(r=%g) = %g\n", sagRadial, z)
		fmt.Printf("dsag/dr(r=%g) = %g\n", sagRadial, dz)
	},
}

/*****************************************************************************************************************/

func init() {
	sagCommand.Flags().Float64VarP(&sagRadial, "r", "r", 0, "The radial coordinate at which to evaluate the sag")
	sagCommand.Flags().Float64VarP(&sagRadius, "radius", "R", 0, "The base radius of curvature")
	sagCommand.Flags().Float64VarP(&sagConic, "conic", "k", 0, "The conic constant")
	sagCommand.Flags().StringVarP(&sagCoefCSV, "coef", "c", "", "Comma-separated rt10 polynomial coefficients, up to 10")
	sagCommand.Flags().BoolVar(&sagModeOdd, "mode-odd", false, "Use the odd-exponent coefficient convention")
	sagCommand.MarkFlagRequired("radius")
}

/*****************************************************************************************************************/
