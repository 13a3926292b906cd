package heap

import (
	"fmt"
	"os"

	"github.com/eddyjiang/heapkit/internal/block"
)

// CheckError reports a single consistency violation found by Validate.
type CheckError struct {
	Check   string // name of the failed check
	Offset  int    // header offset of the offending block, or -1
	Message string
}

func (e *CheckError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("heap: %s: %s", e.Check, e.Message)
	}
	return fmt.Sprintf("heap: %s at %#x: %s", e.Check, e.Offset, e.Message)
}

// fail records a violation, emits a diagnostic line, and traps into the
// debugger when HEAPKIT_DEBUG_BREAK is set.
func fail(check string, off int, format string, args ...any) *CheckError {
	e := &CheckError{Check: check, Offset: off, Message: fmt.Sprintf(format, args...)}
	fmt.Fprintf(os.Stderr, "[HEAP] validate: %s\n", e.Error())
	maybeBreak()
	return e
}

// checkTiling walks the segment block by block and verifies that the
// blocks tile it exactly: every header stays in bounds, every size is
// aligned and nonzero, and the sizes plus headers sum to the segment
// length.
func checkTiling(data []byte) error {
	total := 0
	for off := 0; off < len(data); {
		if off+block.HeaderSize > len(data) {
			return fail("tiling", off, "header extends past segment end %d", len(data))
		}
		size := block.Size(data, off)
		if size <= 0 {
			return fail("tiling", off, "block size %d is not positive", size)
		}
		if !block.IsAligned(size) {
			return fail("tiling", off, "block size %d is not %d-byte aligned", size, block.Alignment)
		}
		next := block.Next(data, off)
		if next > len(data) {
			return fail("tiling", off, "block of size %d overruns segment end %d", size, len(data))
		}
		total += size + block.HeaderSize
		off = next
	}
	if total != len(data) {
		return fail("tiling", -1, "blocks cover %d bytes of a %d byte segment", total, len(data))
	}
	return nil
}

// checkFreeList verifies the doubly linked free list against the segment:
// every node is a free block with consistent back links, the walk
// terminates within the block count, and every free block in the segment
// is reachable from the head.
func checkFreeList(data []byte, head int) error {
	nblocks := 0
	nfree := 0
	for off := 0; off < len(data); off = block.Next(data, off) {
		nblocks++
		if !block.Used(data, off) {
			nfree++
		}
	}

	seen := 0
	prev := block.NoLink
	for cur := head; cur != block.NoLink; cur = block.NextFree(data, cur) {
		if cur < 0 || cur+block.HeaderSize > len(data) {
			return fail("freelist", cur, "link points outside the segment")
		}
		if block.Used(data, cur) {
			return fail("freelist", cur, "list node is marked in use")
		}
		if got := block.PrevFree(data, cur); got != prev {
			return fail("freelist", cur, "prev link is %#x, want %#x", got, prev)
		}
		seen++
		if seen > nblocks {
			return fail("freelist", cur, "list does not terminate within %d blocks", nblocks)
		}
		prev = cur
	}
	if seen != nfree {
		return fail("freelist", -1, "list holds %d nodes, segment has %d free blocks", seen, nfree)
	}

	// Quadratic reachability pass. Validate is diagnostic, not hot.
	for off := 0; off < len(data); off = block.Next(data, off) {
		if block.Used(data, off) {
			continue
		}
		found := false
		for cur := head; cur != block.NoLink; cur = block.NextFree(data, cur) {
			if cur == off {
				found = true
				break
			}
		}
		if !found {
			return fail("freelist", off, "free block is not on the list")
		}
	}
	return nil
}

// snapshotBlocks collects every block of the segment in address order.
func snapshotBlocks(data []byte) []BlockInfo {
	var out []BlockInfo
	for off := 0; off < len(data); off = block.Next(data, off) {
		out = append(out, BlockInfo{
			Offset: off,
			Size:   block.Size(data, off),
			Used:   block.Used(data, off),
		})
	}
	return out
}
