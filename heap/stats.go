package heap

// Stats holds internal allocator statistics. Counters reset on Reset.
type Stats struct {
	AllocCalls  int // total Alloc calls (including Resize delegations)
	FreeCalls   int // total Free calls
	ResizeCalls int // total Resize calls

	Splits         int // trailing free blocks carved at alloc or shrink time
	Absorbs        int // allocations widened to fill a slightly oversized block
	Coalesces      int // right-neighbor merges during Free
	InPlaceShrinks int // Resize satisfied by shrinking in place
	InPlaceGrows   int // Resize satisfied by absorbing right neighbors
	Relocations    int // Resize satisfied by allocate-copy-free
	FailedAllocs   int // Alloc calls that found no fit

	BytesAllocated int64 // payload bytes handed out (including absorbed slack)
	BytesFreed     int64 // payload bytes returned
}
