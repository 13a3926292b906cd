package heap

import "errors"

var (
	// ErrSegmentSmall indicates the segment cannot host even one minimally
	// sized block.
	ErrSegmentSmall = errors.New("heap: segment too small for a minimal block")

	// ErrSegmentUnaligned indicates the segment length is not a multiple
	// of the block alignment.
	ErrSegmentUnaligned = errors.New("heap: segment length not 8-byte aligned")

	// ErrBadRequest indicates a request of zero bytes or above MaxRequest.
	ErrBadRequest = errors.New("heap: request size is zero or above the maximum")

	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("heap: no free block large enough")
)
