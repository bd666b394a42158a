/*****************************************************************************************************************/

//	@package	optics/cmd

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"context"
	"fmt"

	"github.com/claude-module/optics/internal/batch"
	"github.com/claude-module/optics/pkg/aspheric"
	"github.com/claude-module/optics/pkg/fft"
	"github.com/claude-module/optics/pkg/profile"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	batchDBPath      string
	batchRadial      float64
	batchConcurrency int
)

/*****************************************************************************************************************/

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "batch",
	Long:  "batch evaluates the sag of every saved profile in the database, concurrently.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := profile.Open(batchDBPath)
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

		jobs := make([]batch.Job, len(names))
		for i, name := range names {
			name := name

			jobs[i] = batch.Job{
				Name: name,
				Run: func(ctx context.Context, e *fft.Engine) (any, error) {
					p, err := store.Load(name)
					if err != nil {
						return nil, err
					}
					return aspheric.SagRT10(batchRadial, p.Radius, p.Conic, p.Coef, p.ModeOdd), nil
				},
			}
		}

		results, err := batch.RunAll(cmd.Context(), jobs, batchConcurrency)
		if err != nil {
			fmt.Println("batch run failed:", err)
			return
		}

		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("%s: error: %v\n", r.Name, r.Err)
				continue
			}
			fmt.Printf("%s: sag(r=%g) = %v\n", r.Name, batchRadial, r.Value)
		}
	},
}

/*****************************************************************************************************************/

func init() {
	batchCommand.Flags().StringVar(&batchDBPath, "db", "profiles.sqlite", "Path to the profile SQLite database")
	batchCommand.Flags().Float64VarP(&batchRadial, "r", "r", 0, "The radial coordinate at which to evaluate each profile's sag")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of profiles evaluated concurrently")
}

/*****************************************************************************************************************/
