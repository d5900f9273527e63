package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gobox/pkg/analysis"
	"github.com/philipparndt/gobox/pkg/geomio"
	"github.com/philipparndt/gobox/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a point file and re-report its bounding box on change",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "delay before re-reading after a change")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	report := func(path string) {
		points, err := geomio.LoadPoints(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading points: %v\n", err)
			return
		}
		result, err := analysis.AnalyzePoints(points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		printReport(path, result)
		fmt.Println()
	}

	report(filename)

	w, err := watcher.New(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Watch(filename, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	w.Start()

	fmt.Printf("Watching %s, press Ctrl+C to stop\n\n", filename)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
