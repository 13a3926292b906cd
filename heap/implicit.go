package heap

import (
	"io"

	"github.com/eddyjiang/heapkit/internal/block"
)

// Implicit is the implicit free-list variant. Free blocks are found by a
// first-fit linear scan of all blocks; Free does not coalesce, so freed
// blocks remain discoverable only through that scan.
//
// The implicit variant has no per-free-block link words, so its minimum
// block size is a single aligned word and its split threshold is
// 2*Alignment (header plus at least one aligned word).
type Implicit struct {
	data  []byte
	nused int
	stats Stats
}

// NewImplicit binds the allocator to the given segment. The segment must
// be at least 2*Alignment bytes long and a multiple of Alignment.
func NewImplicit(data []byte) (*Implicit, error) {
	a := &Implicit{}
	if err := a.Reset(data); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset discards all prior state and re-initializes the allocator over
// data. No per-block cleanup is performed; the segment is reused
// wholesale.
func (a *Implicit) Reset(data []byte) error {
	if len(data) < 2*block.Alignment {
		return ErrSegmentSmall
	}
	if !block.IsAligned(len(data)) {
		return ErrSegmentUnaligned
	}
	a.data = data
	block.Write(data, 0, len(data)-block.HeaderSize, false)
	a.nused = 0
	a.stats = Stats{}
	debugLogf("implicit reset: segment %d bytes", len(data))
	return nil
}

func (a *Implicit) pastEnd(off int) bool {
	return off >= len(a.data)
}

// Alloc finds the first free block large enough for need by walking the
// segment block by block.
func (a *Implicit) Alloc(need int) (Ref, []byte, error) {
	a.stats.AllocCalls++
	if need <= 0 || need > block.MaxRequest {
		return NilRef, nil, ErrBadRequest
	}
	needed := block.Align8(need)

	cur := 0
	for block.Used(a.data, cur) || block.Size(a.data, cur) < needed {
		cur = block.Next(a.data, cur)
		if a.pastEnd(cur) {
			a.stats.FailedAllocs++
			return NilRef, nil, ErrNoSpace
		}
	}

	size := block.Size(a.data, cur)
	if size < needed+2*block.Alignment {
		// Too little left over to carve a block; widen the allocation.
		if size > needed {
			a.stats.Absorbs++
		}
		needed = size
	}
	block.Write(a.data, cur, needed, true)
	a.nused += needed
	a.stats.BytesAllocated += int64(needed)

	if size > needed {
		trailer := block.Next(a.data, cur)
		block.Write(a.data, trailer, size-needed-block.HeaderSize, false)
		a.stats.Splits++
	}

	opLogf("implicit alloc(%d): off=%#x size=%d", need, cur, needed)
	p := block.Payload(cur)
	return p, a.data[p : p+needed : p+needed], nil
}

// Free marks the block at ref free. Freed blocks are not coalesced.
func (a *Implicit) Free(ref Ref) {
	a.stats.FreeCalls++
	if ref == NilRef {
		return
	}
	h := block.HeaderOf(ref)
	size := block.Size(a.data, h)
	a.nused -= size
	a.stats.BytesFreed += int64(size)
	block.SetFree(a.data, h)
	opLogf("implicit free: off=%#x size=%d", h, size)
}

// Resize never resizes in place: it allocates a new block, copies the
// surviving payload prefix, and frees the old block.
func (a *Implicit) Resize(ref Ref, newSize int) (Ref, []byte, error) {
	a.stats.ResizeCalls++
	if ref == NilRef {
		return a.Alloc(newSize)
	}
	if newSize == 0 {
		a.Free(ref)
		return NilRef, nil, nil
	}

	newRef, payload, err := a.Alloc(newSize)
	if err != nil {
		return NilRef, nil, err
	}
	oldSize := block.Size(a.data, block.HeaderOf(ref))
	copy(payload, a.data[ref:ref+min(oldSize, len(payload))])
	a.Free(ref)
	a.stats.Relocations++
	return newRef, payload, nil
}

// Used returns the sum of payload sizes of all in-use blocks.
func (a *Implicit) Used() int {
	return a.nused
}

// Stats returns the accumulated operation counters.
func (a *Implicit) Stats() Stats {
	return a.stats
}

// Validate checks that the blocks tile the segment exactly.
func (a *Implicit) Validate() error {
	return checkTiling(a.data)
}

// Blocks returns a snapshot of every block in segment order.
func (a *Implicit) Blocks() []BlockInfo {
	return snapshotBlocks(a.data)
}

// DumpTo writes segment bounds, the in-use figure, and one line per
// block to w.
func (a *Implicit) DumpTo(w io.Writer) {
	dumpBlocks(w, a.data, a.nused)
}
