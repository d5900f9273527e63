package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/geomio"
	"github.com/spf13/cobra"
)

var combineJSON bool

var combineCmd = &cobra.Command{
	Use:   "combine [file]...",
	Short: "Combine the bounding boxes of several point files",
	Long:  "Load each CSV or GeoJSON point file and print the union of their bounding boxes.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().BoolVar(&combineJSON, "json", false, "print the combined box as JSON")
}

func runCombine(cmd *cobra.Command, args []string) {
	var boxes []geometry.BoundingBox
	for _, filename := range args {
		points, err := geomio.LoadPoints(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
			os.Exit(1)
		}
		bb, ok := geometry.FromPoints(points)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %s contains no points\n", filename)
			os.Exit(1)
		}
		boxes = append(boxes, bb)
	}

	combined, ok := geometry.FromBounded(boxes)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no boxes to combine")
		os.Exit(1)
	}

	if combineJSON {
		data, err := json.Marshal(combined)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding box: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Println("Combined Bounding Box")
	fmt.Println("=====================")
	fmt.Printf("Files: %d\n\n", len(args))
	fmt.Printf("Extremas:\n")
	fmt.Printf("  X: [%.6f, %.6f]\n", combined.XMin(), combined.XMax())
	fmt.Printf("  Y: [%.6f, %.6f]\n", combined.YMin(), combined.YMax())
	fmt.Printf("Width:  %.6f units\n", combined.Width())
	fmt.Printf("Height: %.6f units\n", combined.Height())
}
