package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gobox/pkg/analysis"
	"github.com/philipparndt/gobox/pkg/geomio"
	"github.com/spf13/cobra"
)

var infoPad float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display the bounding box of a point file",
	Long:  "Load a CSV or GeoJSON point file and show its bounding box, dimensions, center and area.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoPad, "pad", 0.0, "pad singular dimensions by this amount on each side")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	points, err := geomio.LoadPoints(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading points: %v\n", err)
		os.Exit(1)
	}

	report, err := analysis.AnalyzePoints(points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if infoPad > 0 {
		report.BoundingBox.RemoveSingularDimensions(infoPad)
	}

	printReport(filename, report)
}

func printReport(filename string, report *analysis.Report) {
	bb := report.BoundingBox

	fmt.Println("Bounding Box Information")
	fmt.Println("========================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Points: %d\n\n", report.PointCount)

	fmt.Println("Extremas:")
	fmt.Printf("  X: [%.6f, %.6f]\n", bb.XMin(), bb.XMax())
	fmt.Printf("  Y: [%.6f, %.6f]\n\n", bb.YMin(), bb.YMax())

	fmt.Println("Dimensions:")
	fmt.Printf("  Width:  %.6f units\n", bb.Width())
	fmt.Printf("  Height: %.6f units\n", bb.Height())
	fmt.Printf("  Center: %s\n", analysis.FormatVector(bb.Center()))
	fmt.Printf("  Area:   %.6f square units\n", bb.Width()*bb.Height())

	if report.SingularWidth || report.SingularHeight {
		fmt.Println("\nSingular dimensions:")
		if report.SingularWidth {
			fmt.Println("  Width is zero")
		}
		if report.SingularHeight {
			fmt.Println("  Height is zero")
		}
		if infoPad == 0 {
			fmt.Println("  Use --pad to expand them")
		}
	}
}
