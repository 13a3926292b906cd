package heap

import (
	"fmt"
	"os"
	"runtime"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugHeap = false

// Runtime flag for operation logging - controlled by HEAPKIT_LOG_ALLOC env var.
var logOps = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

// Runtime flag to trap into the debugger on a failed consistency check -
// controlled by HEAPKIT_DEBUG_BREAK env var.
var breakOnFail = os.Getenv("HEAPKIT_DEBUG_BREAK") != ""

// debugLogf prints debug messages if debugHeap is enabled.
func debugLogf(format string, args ...any) {
	if debugHeap {
		fmt.Fprintf(os.Stderr, "[HEAP] "+format+"\n", args...)
	}
}

// opLogf prints operation traces when HEAPKIT_LOG_ALLOC is set.
func opLogf(format string, args ...any) {
	if logOps {
		fmt.Fprintf(os.Stderr, "[HEAP] "+format+"\n", args...)
	}
}

// maybeBreak stops in the debugger on consistency failures when
// HEAPKIT_DEBUG_BREAK is set.
func maybeBreak() {
	if breakOnFail {
		runtime.Breakpoint()
	}
}
