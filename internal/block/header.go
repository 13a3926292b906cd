package block

// Header codec. A header is one aligned word packing the payload size in
// bits [1..) and the used flag in bit 0. Sizes are multiples of Alignment,
// so masking the low bit recovers the exact size.

// Size returns the payload size encoded in the header at off.
func Size(b []byte, off int) int {
	return int(ReadWord(b, off) &^ usedBit)
}

// Used reports whether the header at off marks the block as in use.
func Used(b []byte, off int) bool {
	return ReadWord(b, off)&usedBit != 0
}

// SetUsed sets the used bit of the header at off.
func SetUsed(b []byte, off int) {
	PutWord(b, off, ReadWord(b, off)|usedBit)
}

// SetFree clears the used bit of the header at off.
func SetFree(b []byte, off int) {
	PutWord(b, off, ReadWord(b, off)&^usedBit)
}

// Write encodes size and the used flag into the header at off.
// size must be a multiple of Alignment.
func Write(b []byte, off, size int, used bool) {
	w := uint64(size)
	if used {
		w |= usedBit
	}
	PutWord(b, off, w)
}

// Payload returns the payload offset for the header at off.
func Payload(off int) int {
	return off + HeaderSize
}

// HeaderOf returns the header offset for the payload at p.
func HeaderOf(p int) int {
	return p - HeaderSize
}

// Next returns the offset of the following block's header.
func Next(b []byte, off int) int {
	return off + HeaderSize + Size(b, off)
}
