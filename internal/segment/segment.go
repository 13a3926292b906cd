// Package segment reserves the contiguous memory region managed by the
// heap allocators. The region is page-aligned and borrowed from the OS
// for the lifetime of the Segment; the allocator owns every byte of it
// between Reserve and Release.
package segment

import "fmt"

// Segment is a page-aligned byte region reserved from the OS.
type Segment struct {
	data    []byte
	release func() error
}

// Reserve obtains a fresh page-aligned region of at least totalBytes.
// On unix platforms this is an anonymous private mapping; elsewhere a
// plain slice is allocated from the Go heap, whose base is not
// guaranteed to be page-aligned.
func Reserve(totalBytes int) (*Segment, error) {
	if totalBytes <= 0 {
		return nil, fmt.Errorf("segment: invalid size %d", totalBytes)
	}
	data, release, err := reserve(totalBytes)
	if err != nil {
		return nil, fmt.Errorf("segment: reserve %d bytes: %w", totalBytes, err)
	}
	return &Segment{data: data, release: release}, nil
}

// Bytes returns the reserved region. The slice stays valid until Release.
func (s *Segment) Bytes() []byte {
	return s.data
}

// Size returns the reserved length in bytes.
func (s *Segment) Size() int {
	return len(s.data)
}

// Release returns the region to the OS. The Segment and any slices
// derived from Bytes must not be used afterwards. Release is idempotent.
func (s *Segment) Release() error {
	if s.data == nil {
		return nil
	}
	err := s.release()
	s.data = nil
	return err
}
