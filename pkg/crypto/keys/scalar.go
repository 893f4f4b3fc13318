package keys

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrOutOfField is returned when a 32-byte big-endian value is not below the
// secp256k1 group order.
var ErrOutOfField = errors.New("value is out of secp256k1 scalar field")

// ScalarFromBytes interprets b as a big-endian unsigned integer and returns
// it as a scalar modulo the group order. Values greater than or equal to the
// order are rejected instead of being reduced.
func ScalarFromBytes(b [32]byte) (*secp256k1.ModNScalar, error) {
	var s secp256k1.ModNScalar
	if overflow := s.SetBytes(&b); overflow != 0 {
		return nil, ErrOutOfField
	}
	return &s, nil
}
