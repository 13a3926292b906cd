package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eddyjiang/heapkit/internal/script"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <trace>",
		Short: "Replay a trace with consistency checks after every operation",
		Long: `The validate command replays a trace running the full consistency
checker after every single operation, and reports the first violation
found. A clean run exits zero.

Example:
  heapctl validate workload.trace
  heapctl validate workload.trace --variant implicit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
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
	r.ValidateEvery = 1
	sum, err := r.Run(ops)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printInfo("OK: %d operations, heap consistent throughout\n", sum.Ops)
	printVerbose("peak used %d bytes, final used %d bytes\n", sum.PeakUsed, sum.FinalUsed)
	return nil
}
