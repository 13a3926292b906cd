package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eddyjiang/heapkit/internal/script"
)

var runValidateEvery int

func init() {
	cmd := newRunCmd()
	cmd.Flags().
		IntVar(&runValidateEvery, "validate-every", 0, "Run consistency checks every N operations (0 disables)")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <trace>",
		Short: "Replay a trace and summarize the result",
		Long: `The run command replays a trace script against a fresh heap and
prints a summary: operations executed, failed fits, peak and final
usage, and the allocator's operation counters.

Example:
  heapctl run workload.trace
  heapctl run workload.trace --variant implicit --size 65536
  heapctl run workload.trace --validate-every 100 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
}

func runRun(args []string) error {
	tracePath := args[0]
	printVerbose("Parsing trace: %s\n", tracePath)

	ops, err := script.ParseFile(tracePath)
	if err != nil {
		return err
	}

	a, seg, err := newHeap()
	if err != nil {
		return err
	}
	defer seg.Release()

	r := script.NewRunner(a)
	r.ValidateEvery = runValidateEvery
	sum, err := r.Run(ops)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	if jsonOut {
		return printJSON(struct {
			Trace   string
			Variant string
			Size    int
			script.Summary
		}{tracePath, variant, heapSize, sum})
	}

	p := message.NewPrinter(language.English)
	printInfo("Trace:      %s\n", tracePath)
	printInfo("Variant:    %s, segment %s\n", variant, humanize.IBytes(uint64(heapSize)))
	printInfo("Operations: %s (%s refused for space)\n",
		p.Sprintf("%d", sum.Ops), p.Sprintf("%d", sum.NoSpace))
	printInfo("Peak used:  %s\n", humanize.IBytes(uint64(sum.PeakUsed)))
	printInfo("Final used: %s across %s live blocks\n",
		humanize.IBytes(uint64(sum.FinalUsed)), p.Sprintf("%d", r.Live()))
	printInfo("Allocated:  %s in %s calls\n",
		humanize.IBytes(uint64(sum.Stats.BytesAllocated)), p.Sprintf("%d", sum.Stats.AllocCalls))
	printInfo("Freed:      %s in %s calls\n",
		humanize.IBytes(uint64(sum.Stats.BytesFreed)), p.Sprintf("%d", sum.Stats.FreeCalls))
	return nil
}
