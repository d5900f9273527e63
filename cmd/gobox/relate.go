package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	relateA       string
	relateB       string
	relateEpsilon float64
	relateUlps    uint32
)

var relateCmd = &cobra.Command{
	Use:   "relate",
	Short: "Relate two bounding boxes",
	Long: `Evaluate containment, intersection and touching between two boxes.
Boxes are given as comma-separated extremas in xmin,xmax,ymin,ymax order.
With --epsilon or --ulps the tolerance-aware predicates are used instead
of the exact ones.`,
	Run: runRelate,
}

func init() {
	rootCmd.AddCommand(relateCmd)

	relateCmd.Flags().StringVar(&relateA, "a", "", "first box as xmin,xmax,ymin,ymax")
	relateCmd.Flags().StringVar(&relateB, "b", "", "second box as xmin,xmax,ymin,ymax")
	relateCmd.Flags().Float64Var(&relateEpsilon, "epsilon", 0.0, "absolute tolerance for approximate predicates")
	relateCmd.Flags().Uint32Var(&relateUlps, "ulps", 0, "ULP tolerance for approximate predicates")

	relateCmd.MarkFlagsRequiredTogether("a", "b")
}

// parseBox parses four comma-separated extremas in xmin,xmax,ymin,ymax order
func parseBox(s string) (geometry.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.BoundingBox{}, fmt.Errorf("expected 4 comma-separated extremas, got %d", len(parts))
	}

	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.BoundingBox{}, fmt.Errorf("invalid extrema %q: %w", part, err)
		}
		vals[i] = v
	}
	return geometry.New(vals[0], vals[1], vals[2], vals[3])
}

func runRelate(cmd *cobra.Command, args []string) {
	a, err := parseBox(relateA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing box a: %v\n", err)
		os.Exit(1)
	}
	b, err := parseBox(relateB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing box b: %v\n", err)
		os.Exit(1)
	}

	approx := relateEpsilon > 0 || relateUlps > 0

	fmt.Println("Box Relation")
	fmt.Println("============")
	fmt.Printf("A: %s\n", a)
	fmt.Printf("B: %s\n", b)
	if approx {
		fmt.Printf("Tolerance: epsilon=%g ulps=%d\n", relateEpsilon, relateUlps)
	}
	fmt.Println()

	if approx {
		fmt.Printf("A contains B: %t\n", a.ApproxContains(b, relateEpsilon, relateUlps))
		fmt.Printf("B contains A: %t\n", b.ApproxContains(a, relateEpsilon, relateUlps))
		fmt.Printf("Intersecting: %t\n", a.Intersects(b))
		fmt.Printf("Touching:     %t\n", a.ApproxTouches(b, relateEpsilon, relateUlps))
		fmt.Printf("Equal:        %t\n", a.ApproxEqual(b, relateEpsilon, relateUlps))
	} else {
		fmt.Printf("A contains B: %t\n", a.Contains(b))
		fmt.Printf("B contains A: %t\n", b.Contains(a))
		fmt.Printf("Intersecting: %t\n", a.Intersects(b))
		fmt.Printf("Touching:     %t\n", a.Touches(b))
		fmt.Printf("Equal:        %t\n", a.Equal(b))
	}

	fmt.Printf("Union:        %s\n", a.Union(b))
}
