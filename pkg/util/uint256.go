package util

import (
	"encoding/hex"
	"fmt"
)

// Uint256Size is the size of Uint256 in bytes.
const Uint256Size = 32

// Uint256 is a 32 byte long unsigned integer, used for SHA-family digests.
type Uint256 [Uint256Size]uint8

// Uint256DecodeBytesBE attempts to decode the given bytes into an Uint256.
func Uint256DecodeBytesBE(b []byte) (u Uint256, err error) {
	if len(b) != Uint256Size {
		return u, fmt.Errorf("expected []byte of size %d got %d", Uint256Size, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// BytesBE returns a byte slice representation of u.
func (u Uint256) BytesBE() []byte {
	return u[:]
}

// String implements the stringer interface.
func (u Uint256) String() string {
	return hex.EncodeToString(u.BytesBE())
}

// Equals returns true if both Uint256 values are the same.
func (u Uint256) Equals(other Uint256) bool {
	return u == other
}
