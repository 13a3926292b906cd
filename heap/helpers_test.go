package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustImplicit returns an implicit allocator over a fresh n-byte segment.
func mustImplicit(t *testing.T, n int) *Implicit {
	t.Helper()
	a, err := NewImplicit(make([]byte, n))
	require.NoError(t, err)
	return a
}

// mustExplicit returns an explicit allocator over a fresh n-byte segment.
func mustExplicit(t *testing.T, n int) *Explicit {
	t.Helper()
	a, err := NewExplicit(make([]byte, n))
	require.NoError(t, err)
	return a
}

// fill writes a repeating marker byte over the first n bytes of p.
func fill(p []byte, marker byte, n int) {
	for i := 0; i < n; i++ {
		p[i] = marker
	}
}

// checkFill verifies the first n bytes of p all hold marker.
func checkFill(t *testing.T, p []byte, marker byte, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if p[i] != marker {
			t.Fatalf("payload byte %d is %#x, want %#x", i, p[i], marker)
		}
	}
}

// requireBlocks asserts the exact segment layout.
func requireBlocks(t *testing.T, a Allocator, want []BlockInfo) {
	t.Helper()
	require.Equal(t, want, a.Blocks())
}
