package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidemark/coastline-tools/internal/imaging"
	"github.com/tidemark/coastline-tools/internal/pipeline"
)

// measureCmd represents the measure command
var measureCmd = &cobra.Command{
	Use:   "measure <image>",
	Short: "Run the pipeline over an image and print the edge pixel count",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd)
		cfg.CountThreshold, _ = cmd.Flags().GetInt("count-threshold")
		cfg.CountWorkers, _ = cmd.Flags().GetInt("workers")

		pl, err := pipeline.New(cfg, logger)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		count, err := pl.MeasureFile(imaging.NewCache(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(count)
	},
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Int("count-threshold", 0, "Count pixels strictly greater than this value")
	measureCmd.Flags().Int("workers", 0, "Worker count for the pixel counter (0 = one per CPU)")
}
