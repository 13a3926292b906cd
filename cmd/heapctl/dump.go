package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eddyjiang/heapkit/internal/script"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <trace>",
		Short: "Replay a trace and print the final block layout",
		Long: `The dump command replays a trace and prints one line per block of
the resulting segment, in address order.

Example:
  heapctl dump workload.trace
  heapctl dump workload.trace --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
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
	if _, err := r.Run(ops); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	if jsonOut {
		return printJSON(a.Blocks())
	}
	a.DumpTo(os.Stdout)
	return nil
}
