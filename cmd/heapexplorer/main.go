package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false
	variantName := "explicit"
	segSize := 1 << 20

	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--debug", "-d":
			debugMode = true
		case "--variant":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --variant needs a value")
				os.Exit(1)
			}
			i++
			variantName = args[i]
		case "--size":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --size needs a value")
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Error: bad --size %q\n", args[i])
				os.Exit(1)
			}
			segSize = n
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("heapexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	tracePath := filteredArgs[0]
	if debugMode {
		if err := initReplayLog(tracePath, variantName, segSize); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		}
	}
	replayLog.Info("session start")

	m, err := NewModel(tracePath, variantName, segSize)
	if err != nil {
		replayLog.Error("failed to load trace", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		replayLog.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	replayLog.Info("session end")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: heapexplorer [options] <trace-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'heapexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("heapexplorer - Interactive stepper for allocator trace scripts")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  heapexplorer [options] <trace-file>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --variant <name>   Allocator variant: implicit or explicit (default explicit)")
	fmt.Println("  --size <bytes>     Heap segment size (default 1048576)")
	fmt.Println("  -d, --debug        Write a session log under ~/.heapexplorer")
	fmt.Println("  -h, --help         Show this help")
	fmt.Println("  -v, --version      Show version information")
	fmt.Println()
	fmt.Println("KEYS:")
	fmt.Println("  n, space, right    Apply the next trace operation")
	fmt.Println("  p, left            Step back one operation")
	fmt.Println("  g / G              Jump to the start / end of the trace")
	fmt.Println("  c                  Run the consistency checker now")
	fmt.Println("  up, down           Scroll the block listing")
	fmt.Println("  q, ctrl+c          Quit")
}
