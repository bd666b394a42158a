/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "optics",
	Short: "optics is a command-line tool for aspheric surface sag, ray tracing and PSF synthesis.",
	Long:  "optics is a command-line tool for aspheric surface sag, ray tracing and PSF synthesis.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(sagCommand)
	rootCommand.AddCommand(intersectCommand)
	rootCommand.AddCommand(psfCommand)
	rootCommand.AddCommand(profileCommand)
	rootCommand.AddCommand(batchCommand)
}

/*****************************************************************************************************************/

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
