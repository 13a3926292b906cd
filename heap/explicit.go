package heap

import (
	"io"

	"github.com/eddyjiang/heapkit/internal/block"
)

// Explicit is the explicit free-list variant. Free blocks carry a doubly
// linked list threaded through their first two payload words, giving
// first-fit searches over free blocks only, right-neighbor coalescing on
// Free, and in-place Resize.
//
// The link words force a minimum block size of 2*Alignment and a split
// threshold of 3*Alignment (header plus the two links).
type Explicit struct {
	data     []byte
	nused    int
	freeHead int // header offset of the list head, or block.NoLink
	stats    Stats
}

// NewExplicit binds the allocator to the given segment. The segment must
// be at least 3*Alignment bytes long (one header plus the two link
// words) and a multiple of Alignment.
func NewExplicit(data []byte) (*Explicit, error) {
	a := &Explicit{}
	if err := a.Reset(data); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset discards all prior state and re-initializes the allocator over
// data. The whole segment becomes a single free block heading the list.
func (a *Explicit) Reset(data []byte) error {
	if len(data) < 3*block.Alignment {
		return ErrSegmentSmall
	}
	if !block.IsAligned(len(data)) {
		return ErrSegmentUnaligned
	}
	a.data = data
	block.Write(data, 0, len(data)-block.HeaderSize, false)
	a.freeHead = 0
	block.SetPrevFree(data, 0, block.NoLink)
	block.SetNextFree(data, 0, block.NoLink)
	a.nused = 0
	a.stats = Stats{}
	debugLogf("explicit reset: segment %d bytes", len(data))
	return nil
}

func (a *Explicit) pastEnd(off int) bool {
	return off >= len(a.data)
}

// insertHead pushes the free block at h onto the list head. LIFO policy.
func (a *Explicit) insertHead(h int) {
	block.SetPrevFree(a.data, h, block.NoLink)
	block.SetNextFree(a.data, h, a.freeHead)
	if a.freeHead != block.NoLink {
		block.SetPrevFree(a.data, a.freeHead, h)
	}
	a.freeHead = h
}

// unlink removes the free block at h from the list, stitching its
// neighbors together.
func (a *Explicit) unlink(h int) {
	prev := block.PrevFree(a.data, h)
	next := block.NextFree(a.data, h)
	if prev == block.NoLink {
		a.freeHead = next
	} else {
		block.SetNextFree(a.data, prev, next)
	}
	if next != block.NoLink {
		block.SetPrevFree(a.data, next, prev)
	}
}

// needFor rounds a request up to alignment and floors it at the minimum
// free-block payload, so the block can host its links once freed.
func needFor(request int) int {
	return max(block.Align8(request), block.MinFreeSize)
}

// Alloc walks the free list from its head and takes the first block
// large enough for need.
func (a *Explicit) Alloc(need int) (Ref, []byte, error) {
	a.stats.AllocCalls++
	if need <= 0 || need > block.MaxRequest {
		return NilRef, nil, ErrBadRequest
	}
	needed := needFor(need)

	cur := a.freeHead
	for cur != block.NoLink && block.Size(a.data, cur) < needed {
		cur = block.NextFree(a.data, cur)
	}
	if cur == block.NoLink {
		a.stats.FailedAllocs++
		return NilRef, nil, ErrNoSpace
	}

	size := block.Size(a.data, cur)
	split := size >= needed+3*block.Alignment
	if !split {
		// Too little left over to host header plus links; widen the
		// allocation to fill the block.
		if size > needed {
			a.stats.Absorbs++
		}
		needed = size
	}

	// The links live in the payload words, so they survive the header
	// rewrite; unlink must still run before the payload is handed out.
	block.Write(a.data, cur, needed, true)
	a.unlink(cur)
	a.nused += needed
	a.stats.BytesAllocated += int64(needed)

	if split {
		trailer := block.Next(a.data, cur)
		block.Write(a.data, trailer, size-needed-block.HeaderSize, false)
		a.insertHead(trailer)
		a.stats.Splits++
	}

	opLogf("explicit alloc(%d): off=%#x size=%d", need, cur, needed)
	p := block.Payload(cur)
	return p, a.data[p : p+needed : p+needed], nil
}

// Free releases the block at ref and coalesces it with every free
// neighbor to its right. The left neighbor is never merged: with no
// footers its header is not discoverable in O(1), a deliberate tradeoff
// of this layout.
func (a *Explicit) Free(ref Ref) {
	a.stats.FreeCalls++
	if ref == NilRef {
		return
	}
	h := block.HeaderOf(ref)
	size := block.Size(a.data, h)
	a.nused -= size
	a.stats.BytesFreed += int64(size)
	block.SetFree(a.data, h)
	a.insertHead(h)

	for n := block.Next(a.data, h); !a.pastEnd(n) && !block.Used(a.data, n); n = block.Next(a.data, h) {
		a.unlink(n)
		block.Write(a.data, h, block.Size(a.data, h)+block.Size(a.data, n)+block.HeaderSize, false)
		a.stats.Coalesces++
	}
	opLogf("explicit free: off=%#x size=%d coalesced=%d", h, size, block.Size(a.data, h))
}

// Resize changes the block at ref to newSize bytes, preferring in-place
// shrink or growth by absorbing free right neighbors, and falling back
// to allocate-copy-free.
func (a *Explicit) Resize(ref Ref, newSize int) (Ref, []byte, error) {
	a.stats.ResizeCalls++
	if ref == NilRef {
		return a.Alloc(newSize)
	}
	if newSize == 0 {
		a.Free(ref)
		return NilRef, nil, nil
	}
	if newSize < 0 || newSize > block.MaxRequest {
		return NilRef, nil, ErrBadRequest
	}

	h := block.HeaderOf(ref)
	oldSize := block.Size(a.data, h)
	need := needFor(newSize)

	if need <= oldSize {
		a.shrink(h, need)
		a.stats.InPlaceShrinks++
		return ref, a.payload(h), nil
	}

	// Absorb free right neighbors one at a time. Once the block is large
	// enough the shrink path carves back any excess; the loop replaces
	// the original's single recursive re-entry.
	for n := block.Next(a.data, h); !a.pastEnd(n) && !block.Used(a.data, n); n = block.Next(a.data, h) {
		a.unlink(n)
		grown := block.Size(a.data, h) + block.Size(a.data, n) + block.HeaderSize
		a.nused += grown - block.Size(a.data, h)
		block.Write(a.data, h, grown, true)
		if grown >= need {
			a.shrink(h, need)
			a.stats.InPlaceGrows++
			return ref, a.payload(h), nil
		}
	}

	// Relocate. On failure the old block stays valid, keeping any
	// neighbors absorbed above; they legitimately belong to it now.
	newRef, payload, err := a.Alloc(newSize)
	if err != nil {
		return NilRef, nil, err
	}
	copy(payload, a.data[ref:ref+min(oldSize, len(payload))])
	a.Free(ref)
	a.stats.Relocations++
	return newRef, payload, nil
}

// shrink rewrites the used block at h to need bytes when the leftover
// region can host a free block (header plus links); otherwise the block
// keeps its current size.
func (a *Explicit) shrink(h, need int) {
	size := block.Size(a.data, h)
	if size < need+3*block.Alignment {
		return
	}
	block.Write(a.data, h, need, true)
	a.nused += need - size
	trailer := block.Next(a.data, h)
	block.Write(a.data, trailer, size-need-block.HeaderSize, false)
	a.insertHead(trailer)
	a.stats.Splits++
}

func (a *Explicit) payload(h int) []byte {
	p := block.Payload(h)
	end := p + block.Size(a.data, h)
	return a.data[p:end:end]
}

// Used returns the sum of payload sizes of all in-use blocks.
func (a *Explicit) Used() int {
	return a.nused
}

// Stats returns the accumulated operation counters.
func (a *Explicit) Stats() Stats {
	return a.stats
}

// Validate checks segment tiling and free-list integrity.
func (a *Explicit) Validate() error {
	if err := checkTiling(a.data); err != nil {
		return err
	}
	return checkFreeList(a.data, a.freeHead)
}

// Blocks returns a snapshot of every block in segment order.
func (a *Explicit) Blocks() []BlockInfo {
	return snapshotBlocks(a.data)
}

// DumpTo writes segment bounds, the in-use figure, and one line per
// block to w.
func (a *Explicit) DumpTo(w io.Writer) {
	dumpBlocks(w, a.data, a.nused)
}
