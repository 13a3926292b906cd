package script

import (
	"errors"
	"fmt"

	"github.com/eddyjiang/heapkit/heap"
)

// Summary accumulates what a replay did to the heap.
type Summary struct {
	Ops       int // operations executed
	NoSpace   int // allocs and resizes refused with ErrNoSpace
	PeakUsed  int // high-water mark of heap.Used
	FinalUsed int // heap.Used after the last operation
	Stats     heap.Stats
}

// Runner replays parsed trace operations against an allocator. It
// tracks the id-to-ref bindings, stamps every payload with a marker
// byte derived from its id, and verifies markers whenever a block is
// resized, so a replay doubles as a data-integrity check. Blocks are not
// checked when they are freed.
type Runner struct {
	heap heap.Allocator

	// ValidateEvery runs heap.Validate after every n-th operation. Zero
	// disables the checks, 1 checks after every operation.
	ValidateEvery int

	refs  map[int]heap.Ref
	sizes map[int]int
}

// NewRunner wraps a for trace replay.
func NewRunner(a heap.Allocator) *Runner {
	return &Runner{
		heap:  a,
		refs:  make(map[int]heap.Ref),
		sizes: make(map[int]int),
	}
}

func marker(id int) byte {
	return byte(id)*0x3B + 0xA5
}

// Run executes ops in order. ErrNoSpace is counted and skipped so a
// trace can probe a heap to exhaustion; any other failure stops the
// replay with an error naming the trace line.
func (r *Runner) Run(ops []Op) (Summary, error) {
	var sum Summary
	for i, op := range ops {
		if err := r.Step(op); err != nil {
			if errors.Is(err, heap.ErrNoSpace) {
				sum.NoSpace++
			} else {
				return sum, err
			}
		}
		sum.Ops++
		if used := r.heap.Used(); used > sum.PeakUsed {
			sum.PeakUsed = used
		}
		if r.ValidateEvery > 0 && (i+1)%r.ValidateEvery == 0 {
			if err := r.heap.Validate(); err != nil {
				return sum, fmt.Errorf("line %d: after %s %d: %w", op.Line, op.Kind, op.ID, err)
			}
		}
	}
	sum.FinalUsed = r.heap.Used()
	sum.Stats = r.heap.Stats()
	return sum, nil
}

// Step executes a single operation, updating the id bindings. Callers
// replaying interactively use this directly; Run drives it in a loop.
func (r *Runner) Step(op Op) error {
	switch op.Kind {
	case KindAlloc:
		if _, live := r.refs[op.ID]; live {
			return fmt.Errorf("line %d: id %d is already allocated", op.Line, op.ID)
		}
		ref, payload, err := r.heap.Alloc(op.Size)
		if err != nil {
			return fmt.Errorf("line %d: alloc %d: %w", op.Line, op.Size, err)
		}
		stamp(payload, marker(op.ID), op.Size)
		r.refs[op.ID] = ref
		r.sizes[op.ID] = op.Size
		return nil

	case KindResize:
		ref, live := r.refs[op.ID]
		if !live {
			return fmt.Errorf("line %d: resize of unallocated id %d", op.Line, op.ID)
		}
		newRef, payload, err := r.heap.Resize(ref, op.Size)
		if err != nil {
			return fmt.Errorf("line %d: resize %d to %d: %w", op.Line, op.ID, op.Size, err)
		}
		if op.Size == 0 {
			delete(r.refs, op.ID)
			delete(r.sizes, op.ID)
			return nil
		}
		if err := verify(payload, marker(op.ID), min(r.sizes[op.ID], op.Size)); err != nil {
			return fmt.Errorf("line %d: id %d: %w", op.Line, op.ID, err)
		}
		stamp(payload, marker(op.ID), op.Size)
		r.refs[op.ID] = newRef
		r.sizes[op.ID] = op.Size
		return nil

	case KindFree:
		ref, live := r.refs[op.ID]
		if !live {
			return fmt.Errorf("line %d: free of unallocated id %d", op.Line, op.ID)
		}
		r.heap.Free(ref)
		delete(r.refs, op.ID)
		delete(r.sizes, op.ID)
		return nil
	}
	return fmt.Errorf("line %d: unknown op kind %d", op.Line, int(op.Kind))
}

// Live returns how many ids currently hold a block.
func (r *Runner) Live() int {
	return len(r.refs)
}

// FreeAll releases every live block. The blocks are freed in map
// iteration order, which is not defined.
func (r *Runner) FreeAll() {
	for id, ref := range r.refs {
		r.heap.Free(ref)
		delete(r.refs, id)
		delete(r.sizes, id)
	}
}

func stamp(p []byte, m byte, n int) {
	for i := 0; i < n; i++ {
		p[i] = m
	}
}

func verify(p []byte, m byte, n int) error {
	for i := 0; i < n; i++ {
		if p[i] != m {
			return fmt.Errorf("payload byte %d is %#x, want %#x", i, p[i], m)
		}
	}
	return nil
}
