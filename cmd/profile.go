/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/claude-module/optics/pkg/aspheric"
	"github.com/claude-module/optics/pkg/profile"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	profileDBPath  string
	profileName    string
	profileRadius  float64
	profileConic   float64
	profileCoefCSV string
	profileModeOdd bool
	profileSemidia float64
)

/*****************************************************************************************************************/

var profileCommand = &cobra.Command{
	Use:   "profile",
	Short: "profile",
	Long:  "profile saves, loads and lists named aspheric surface prescriptions in a SQLite database.",
}

/*****************************************************************************************************************/

var profileSaveCommand = &cobra.Command{
	Use:   "save",
	Short: "save",
	Long:  "save writes a named aspheric profile to the database.",
	Run: func(cmd *cobra.Command, args []string) {
		coef, err := parseCoef10(profileCoefCSV)
		if err != nil {
			fmt.Println("invalid --coef:", err)
			cmd.Usage()
			return
		}

		store, err := profile.Open(profileDBPath)
		if err != nil {
			fmt.Println("failed to open profile database:", err)
			return
		}
		defer store.Close()

		p := aspheric.Profile{
			Radius:  profileRadius,
			Conic:   profileConic,
			Coef:    coef,
			ModeOdd: profileModeOdd,
			Semidia: profileSemidia,
		}

		if err := store.Save(profileName, p); err != nil {
			fmt.Println("failed to save profile:", err)
			return
		}

		fmt.Printf("saved profile %q\n", profileName)
	},
}

/*****************************************************************************************************************/

var profileLoadCommand = &cobra.Command{
	Use:   "load",
	Short: "load",
	Long:  "load reads a named aspheric profile from the database and prints it.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := profile.Open(profileDBPath)
		if err != nil {
			fmt.Println("failed to open profile database:", err)
			return
		}
		defer store.Close()

		p, err := store.Load(profileName)
		if err != nil {
			fmt.Println("failed to load profile:", err)
			return
		}

		fmt.Printf("%+v\n", p)
	},
}

/*****************************************************************************************************************/

var profileListCommand = &cobra.Command{
	Use:   "list",
	Short: "list",
	Long:  "list prints the names of every profile saved in the database.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := profile.Open(profileDBPath)
		if err != nil {
			fmt.Println("failed to open profile database:", err)
			return
		}
		defer store.Close()

		names, err := store.List()
		if err != nil {
			fmt.Println("failed to list profiles:", err)
			return
		}

		for _, name := range names {
			fmt.Println(name)
		}
	},
}

/*****************************************************************************************************************/

func init() {
	profileCommand.PersistentFlags().StringVar(&profileDBPath, "db", "profiles.sqlite", "Path to the profile SQLite database")

	profileSaveCommand.Flags().StringVar(&profileName, "name", "", "Profile name")
	profileSaveCommand.Flags().Float64VarP(&profileRadius, "radius", "R", 0, "Base radius of curvature")
	profileSaveCommand.Flags().Float64VarP(&profileConic, "conic", "k", 0, "Conic constant")
	profileSaveCommand.Flags().StringVarP(&profileCoefCSV, "coef", "c", "", "Comma-separated rt10 polynomial coefficients, up to 10")
	profileSaveCommand.Flags().BoolVar(&profileModeOdd, "mode-odd", false, "Use the odd-exponent coefficient convention")
	profileSaveCommand.Flags().Float64Var(&profileSemidia, "semidia", 0, "Surface semidiameter")
	profileSaveCommand.MarkFlagRequired("name")

	profileLoadCommand.Flags().StringVar(&profileName, "name", "", "Profile name")
	profileLoadCommand.MarkFlagRequired("name")

	profileCommand.AddCommand(profileSaveCommand)
	profileCommand.AddCommand(profileLoadCommand)
	profileCommand.AddCommand(profileListCommand)
}

/*****************************************************************************************************************/
