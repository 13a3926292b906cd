package heap

import (
	"io"

	"github.com/eddyjiang/heapkit/internal/block"
)

// Ref is a payload reference: the byte offset of a block's payload within
// the segment. NilRef is the "none" value.
type Ref = int

// NilRef is returned when no block could be produced and accepted by Free
// and Resize as the absent reference.
const NilRef Ref = -1

// MaxRequest is the largest payload size a client may request.
const MaxRequest = block.MaxRequest

// Alignment is the payload and block-size alignment guarantee.
const Alignment = block.Alignment

// BlockInfo describes one block of the segment for diagnostics.
type BlockInfo struct {
	Offset int  // header offset within the segment
	Size   int  // payload size in bytes
	Used   bool // in use by the client
}

// Allocator is the surface shared by the implicit and explicit variants.
//
// Implementations are single-threaded: callers must serialize access
// externally. Misuse (double free, a Ref not produced by this allocator,
// use after free) is undefined behavior and not defended against.
type Allocator interface {
	// Alloc returns a reference to a fresh payload of at least need bytes
	// together with the payload slice. The slice's capacity is clamped to
	// the block, so client writes cannot reach the neighboring header.
	Alloc(need int) (Ref, []byte, error)

	// Resize grows or shrinks the block at ref to newSize bytes,
	// preserving the first min(oldSize, newSize) payload bytes.
	// Resize(NilRef, n) behaves as Alloc(n); Resize(ref, 0) behaves as
	// Free(ref) and returns NilRef.
	Resize(ref Ref, newSize int) (Ref, []byte, error)

	// Free releases the block at ref. Free(NilRef) is a no-op.
	Free(ref Ref)

	// Validate walks the whole segment and cross-checks internal
	// structures. It mutates nothing and returns a *CheckError on the
	// first violation found.
	Validate() error

	// Used returns the sum of payload sizes of all blocks currently in
	// use. Diagnostic only; never consulted for correctness.
	Used() int

	// Stats returns operation counters accumulated since the last reset.
	Stats() Stats

	// Blocks returns a snapshot of every block in segment order.
	Blocks() []BlockInfo

	// DumpTo writes a per-block diagnostic listing to w.
	DumpTo(w io.Writer)
}
