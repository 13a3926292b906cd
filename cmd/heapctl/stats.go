package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eddyjiang/heapkit/internal/script"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <trace>",
		Short: "Show detailed allocator counters after a replay",
		Long: `The stats command replays a trace and prints every operation
counter the allocator keeps: splits, absorbs, coalesces, in-place
resizes, relocations, and failed fits.

Example:
  heapctl stats workload.trace
  heapctl stats workload.trace --variant implicit --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatsCmd(args)
		},
	}
}

func runStatsCmd(args []string) error {
	ops, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}

	a, seg, err := newHeap()
	if err != nil {
		return err
	}
	defer seg.Release()

	r := script.NewRunner(a)
	sum, err := r.Run(ops)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}
	st := sum.Stats

	if jsonOut {
		return printJSON(st)
	}

	p := message.NewPrinter(language.English)
	printInfo("Calls\n")
	printInfo("  alloc:   %s (%s failed)\n", p.Sprintf("%d", st.AllocCalls), p.Sprintf("%d", st.FailedAllocs))
	printInfo("  free:    %s\n", p.Sprintf("%d", st.FreeCalls))
	printInfo("  resize:  %s\n", p.Sprintf("%d", st.ResizeCalls))
	printInfo("Block movements\n")
	printInfo("  splits:           %s\n", p.Sprintf("%d", st.Splits))
	printInfo("  absorbs:          %s\n", p.Sprintf("%d", st.Absorbs))
	printInfo("  coalesces:        %s\n", p.Sprintf("%d", st.Coalesces))
	printInfo("  in-place shrinks: %s\n", p.Sprintf("%d", st.InPlaceShrinks))
	printInfo("  in-place grows:   %s\n", p.Sprintf("%d", st.InPlaceGrows))
	printInfo("  relocations:      %s\n", p.Sprintf("%d", st.Relocations))
	printInfo("Bytes\n")
	printInfo("  allocated: %s\n", humanize.IBytes(uint64(st.BytesAllocated)))
	printInfo("  freed:     %s\n", humanize.IBytes(uint64(st.BytesFreed)))
	return nil
}
