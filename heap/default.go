package heap

import (
	"github.com/eddyjiang/heapkit/internal/segment"
)

// defaultHeap backs the package-level convenience functions. It is nil
// until Init succeeds.
var (
	defaultHeap    *Explicit
	defaultSegment *segment.Segment
)

// Init reserves a fresh anonymous segment of totalBytes and binds the
// package-level allocator to it. Any previous default segment is
// released once the new one is bound; if Init fails, the previous
// segment and heap stay in place. Callers that need more than one heap, or the implicit
// variant, should construct allocators directly instead.
func Init(totalBytes int) error {
	seg, err := segment.Reserve(totalBytes)
	if err != nil {
		return err
	}
	a, err := NewExplicit(seg.Bytes())
	if err != nil {
		seg.Release()
		return err
	}
	if defaultSegment != nil {
		defaultSegment.Release()
	}
	defaultHeap = a
	defaultSegment = seg
	return nil
}

// Alloc allocates from the default heap. Init must have succeeded.
func Alloc(need int) (Ref, []byte, error) {
	return defaultHeap.Alloc(need)
}

// Resize resizes on the default heap. Init must have succeeded.
func Resize(ref Ref, newSize int) (Ref, []byte, error) {
	return defaultHeap.Resize(ref, newSize)
}

// Free frees on the default heap. Init must have succeeded.
func Free(ref Ref) {
	defaultHeap.Free(ref)
}

// Validate checks the default heap. Init must have succeeded.
func Validate() error {
	return defaultHeap.Validate()
}
