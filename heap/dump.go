package heap

import (
	"fmt"
	"io"

	"github.com/eddyjiang/heapkit/internal/block"
)

// dumpBlocks writes the segment bounds, the in-use figure, and one line
// per block to w.
func dumpBlocks(w io.Writer, data []byte, nused int) {
	fmt.Fprintf(w, "segment [0, %#x), %d bytes in use\n", len(data), nused)
	for off := 0; off < len(data); off = block.Next(data, off) {
		state := "free"
		if block.Used(data, off) {
			state = "used"
		}
		fmt.Fprintf(w, "  %#08x %s size=%d\n", off, state, block.Size(data, off))
	}
}
