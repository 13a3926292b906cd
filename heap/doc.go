// Package heap implements byte-segment allocators that manage a single
// contiguous slice handed to them at construction time. All bookkeeping
// lives inside the segment itself, so an allocator adds no per-block
// state of its own and the segment can be dumped, copied, or mapped as
// an opaque byte range.
//
// # Variants
//
// Two interchangeable variants implement the Allocator interface:
//
//   - Implicit finds free blocks by scanning every block in address
//     order. Free is O(1) but performs no coalescing, and Resize always
//     relocates.
//   - Explicit threads a doubly linked list through the payloads of
//     free blocks. Alloc searches free blocks only, Free coalesces with
//     free right neighbors, and Resize shrinks or grows in place when
//     it can.
//
// # Layout
//
// Every block is an 8-byte header followed by its payload. The header
// packs the payload size with the in-use flag in its low bit, and both
// payload offsets and sizes are 8-byte aligned. There are no footers,
// which is why coalescing only looks right.
//
// # Diagnostics
//
// Validate cross-checks the segment structures without mutating them,
// DumpTo prints a per-block listing, and Stats exposes operation
// counters. Setting HEAPKIT_LOG_ALLOC in the environment traces every
// operation to stderr; HEAPKIT_DEBUG_BREAK traps into the debugger on
// the first failed consistency check.
package heap
