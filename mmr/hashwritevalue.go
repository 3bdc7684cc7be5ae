package mmr

import (
	"encoding/binary"
	"hash"
)

// hashWriteUInt64 writes a uint64 to a hasher in bigendian layout - most
// significant byte at lowest address/storage location
func hashWriteUint64(hasher hash.Hash, value uint64) {
	b := [8]byte{}
	binary.BigEndian.PutUint64(b[:], value)
	hasher.Write(b[:])
}

// HashWriteUint64 is the exported form of hashWriteUint64 used by the proof
// and verification functions in this package.
func HashWriteUint64(hasher hash.Hash, value uint64) {
	hashWriteUint64(hasher, value)
}
