/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/claude-module/optics/pkg/aspheric"
	"github.com/claude-module/optics/pkg/raytrace"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	intersectOriginCSV    string
	intersectDirectionCSV string
	intersectSemidia      float64
	intersectRadius       float64
	intersectConic        float64
	intersectCoefCSV      string
	intersectModeOdd      bool
	intersectMaxIter      int
	intersectTol          float64
)

/*****************************************************************************************************************/

var intersectCommand = &cobra.Command{
	Use:   "intersect",
	Short: "intersect",
	Long:  "intersect finds the ray parameter t at which a ray first meets an rt10-parameterized aspheric surface.",
	Run: func(cmd *cobra.Command, args []string) {
		origin, err := parseVec3(intersectOriginCSV)
		if err != nil {
			fmt.Println("invalid --origin:", err)
			cmd.Usage()
			return
		}

		direction, err := parseVec3(intersectDirectionCSV)
		if err != nil {
			fmt.Println("invalid --direction:", err)
			cmd.Usage()
			return
		}

		coef, err := parseCoef10(intersectCoefCSV)
		if err != nil {
			fmt.Println("invalid --coef:", err)
			cmd.Usage()
			return
		}

		ray := raytrace.Ray{Origin: origin, Direction: direction}

		t := raytrace.IntersectAsphericRT10(
			ray, intersectSemidia, intersectRadius, intersectConic, coef, intersectModeOdd,
			intersectMaxIter, intersectTol,
		)

		if t < 0 {
			fmt.Println("no intersection found")
			return
		}

		hit := [3]float64{
			origin[0] + t*direction[0],
			origin[1] + t*direction[1],
			origin[2] + t*direction[2],
		}

		fmt.Printf("t = %g\n", t)
		fmt.Printf("hit = (%g, %g, %g)\n", hit[0], hit[1], hit[2])

		r := aspheric.SagRT10(hitRadius(hit), intersectRadius, intersectConic, coef, intersectModeOdd)
		fmt.Printf("surface sag at hit radius = %g\n", r)
	},
}

/*****************************************************************************************************************/

func hitRadius(hit [3]float64) float64 {
	return math.Hypot(hit[0], hit[1])
}

/*****************************************************************************************************************/

func init() {
	intersectCommand.Flags().StringVar(&intersectOriginCSV, "origin", "0,0,-10", "Ray origin as x,y,z")
	intersectCommand.Flags().StringVar(&intersectDirectionCSV, "direction", "0,0,1", "Ray direction as x,y,z")
	intersectCommand.Flags().Float64Var(&intersectSemidia, "semidia", 0, "Surface semidiameter")
	intersectCommand.Flags().Float64VarP(&intersectRadius, "radius", "R", 0, "The base radius of curvature")
	intersectCommand.Flags().Float64VarP(&intersectConic, "conic", "k", 0, "The conic constant")
	intersectCommand.Flags().StringVarP(&intersectCoefCSV, "coef", "c", "", "Comma-separated rt10 polynomial coefficients, up to 10")
	intersectCommand.Flags().BoolVar(&intersectModeOdd, "mode-odd", false, "Use the odd-exponent coefficient convention")
	intersectCommand.Flags().IntVar(&intersectMaxIter, "max-iter", 0, "Maximum Newton iterations per seed (0 uses the default)")
	intersectCommand.Flags().Float64Var(&intersectTol, "tol", 0, "Newton convergence tolerance (0 uses the default)")
	intersectCommand.MarkFlagRequired("semidia")
	intersectCommand.MarkFlagRequired("radius")
}

/*****************************************************************************************************************/
