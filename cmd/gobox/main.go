package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gobox/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobox",
	Short: "A CLI tool for 2D bounding box analysis",
	Long: `gobox computes and relates axis-aligned 2D bounding boxes.
It loads point sets from CSV and GeoJSON files, reports their enclosing
boxes, and evaluates containment, intersection and touching between boxes.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
