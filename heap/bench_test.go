package heap

import (
	"math/rand"
	"testing"
)

// BenchmarkImplicitAllocFree measures the alloc-free round trip on the
// implicit variant, where every allocation rescans the segment.
func BenchmarkImplicitAllocFree(b *testing.B) {
	a, err := NewImplicit(make([]byte, 1<<20))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, err := a.Alloc(64)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(ref)
	}
}

// BenchmarkExplicitAllocFree measures the alloc-free round trip on the
// explicit variant, where the search touches free blocks only.
func BenchmarkExplicitAllocFree(b *testing.B) {
	a, err := NewExplicit(make([]byte, 1<<20))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, err := a.Alloc(64)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(ref)
	}
}

// BenchmarkExplicitFragmented measures allocation with many live blocks
// pinning the segment, the case the free list exists for.
func BenchmarkExplicitFragmented(b *testing.B) {
	a, err := NewExplicit(make([]byte, 1<<20))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	var refs []Ref
	for i := 0; i < 2048; i++ {
		ref, _, err := a.Alloc(64 + rng.Intn(192))
		if err != nil {
			b.Fatal(err)
		}
		refs = append(refs, ref)
	}
	for i := 0; i < len(refs); i += 2 {
		a.Free(refs[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, err := a.Alloc(64)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(ref)
	}
}

// BenchmarkExplicitResizeGrow measures in-place growth into a free
// right neighbor.
func BenchmarkExplicitResizeGrow(b *testing.B) {
	a, err := NewExplicit(make([]byte, 1<<20))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, err := a.Alloc(64)
		if err != nil {
			b.Fatal(err)
		}
		ref, _, err = a.Resize(ref, 256)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(ref)
	}
}
