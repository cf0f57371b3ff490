package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidemark/coastline-tools/internal/imaging"
	"github.com/tidemark/coastline-tools/internal/pipeline"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <image>",
	Short: "Run the pipeline over an image and write the processed plane to disk",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pl, err := pipeline.New(configFromFlags(cmd), logger)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		img, err := imaging.NewCache().Load(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		plane, err := pl.Run(img)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			ext := filepath.Ext(args[0])
			out = strings.TrimSuffix(args[0], ext) + "_edges.png"
		}

		heatmap, _ := cmd.Flags().GetBool("heatmap")
		if heatmap {
			err = imaging.SaveHeatmap(out, filepath.Base(args[0]), plane)
		} else {
			err = imaging.SavePNG(out, plane, 0, 255)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote %s (%dx%d)\n", out, plane.Cols(), plane.Rows())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("out", "", "Output path (default: <input>_edges.png)")
	renderCmd.Flags().Bool("heatmap", false, "Write a heat-map plot instead of a grayscale PNG")
}
