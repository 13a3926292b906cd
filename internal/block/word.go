package block

import "encoding/binary"

// Word encoding for header and link words.
//
// Header words are stored little-endian. Go's binary.LittleEndian calls
// are inlined by the compiler, so there is no need for unsafe pointer
// tricks here.

// ReadWord reads the 8-byte word at off.
func ReadWord(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// PutWord writes the 8-byte word v at off.
func PutWord(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}
