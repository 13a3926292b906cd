//go:build unix

package segment

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/eddyjiang/heapkit/internal/block"
)

// reserve maps an anonymous private region. mmap returns page-aligned
// addresses, which satisfies the allocator's base alignment requirement.
// The mapping length is rounded up to whole pages; callers see exactly
// totalBytes of it.
func reserve(totalBytes int) ([]byte, func() error, error) {
	mapped, err := unix.Mmap(-1, 0, block.AlignUp(totalBytes, block.PageSize),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		err := unix.Munmap(mapped)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return mapped[:totalBytes:totalBytes], release, nil
}
