package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eddyjiang/heapkit/heap"
	"github.com/eddyjiang/heapkit/internal/segment"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	variant  string
	heapSize int
)

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Replay and inspect allocator trace scripts",
	Long: `heapctl replays allocator trace scripts against an in-memory heap
segment and reports what happened: operation counts, byte totals, the
final block layout, and consistency-check results. Traces use one
operation per line (a <id> <size>, r <id> <size>, f <id>).`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&variant, "variant", "explicit", "Allocator variant (implicit or explicit)")
	rootCmd.PersistentFlags().
		IntVar(&heapSize, "size", 1<<20, "Heap segment size in bytes")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newHeap reserves a segment and binds the selected allocator variant
// to it. The caller releases the segment.
func newHeap() (heap.Allocator, *segment.Segment, error) {
	seg, err := segment.Reserve(heapSize)
	if err != nil {
		return nil, nil, err
	}
	var a heap.Allocator
	switch variant {
	case "implicit":
		a, err = heap.NewImplicit(seg.Bytes())
	case "explicit":
		a, err = heap.NewExplicit(seg.Bytes())
	default:
		err = fmt.Errorf("unknown variant %q (want implicit or explicit)", variant)
	}
	if err != nil {
		seg.Release()
		return nil, nil, err
	}
	return a, seg, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
