package block

// Layout constants for the heap segment.
//
// The segment is tiled end to end by blocks. Each block is a single
// 8-byte header word followed by a payload of `size` bytes. There are no
// footers and no sentinels beyond the blocks themselves.

const (
	// Alignment is the alignment requirement for every header address,
	// payload address, and block size.
	Alignment = 8

	// HeaderSize is the size of a block header: one aligned machine word.
	HeaderSize = Alignment

	// MinFreeSize is the minimum payload size able to host the two
	// free-list link words of the explicit variant.
	MinFreeSize = 2 * Alignment

	// MaxRequest is the largest payload size a client may request.
	MaxRequest = 1 << 30

	// PageSize is the OS page granularity the segment base is aligned to.
	PageSize = 4096
)

// usedBit is the low bit of the header word: 1 = in use, 0 = free.
// Sizes are always multiples of Alignment, so the bit is free for packing.
const usedBit = 1
