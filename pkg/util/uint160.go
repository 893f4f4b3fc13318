package util

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Uint160Size is the size of Uint160 in bytes.
const Uint160Size = 20

// Uint160 is a 20 byte long unsigned integer, it's used for public key hashes
// (RIPEMD160(SHA256(key))) and EVM addresses.
type Uint160 [Uint160Size]uint8

// Uint160DecodeStringBE attempts to decode the given hex string (optionally
// 0x-prefixed) into an Uint160.
func Uint160DecodeStringBE(s string) (Uint160, error) {
	var u Uint160
	s = strings.TrimPrefix(s, "0x")
	if len(s) != Uint160Size*2 {
		return u, fmt.Errorf("expected string size of %d got %d", Uint160Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return u, err
	}
	return Uint160DecodeBytesBE(b)
}

// Uint160DecodeBytesBE attempts to decode the given bytes into an Uint160.
func Uint160DecodeBytesBE(b []byte) (u Uint160, err error) {
	if len(b) != Uint160Size {
		return u, fmt.Errorf("expected byte size of %d got %d", Uint160Size, len(b))
	}
	copy(u[:], b)
	return
}

// BytesBE returns a byte slice representation of u.
func (u Uint160) BytesBE() []byte {
	return u[:]
}

// String implements the stringer interface.
func (u Uint160) String() string {
	return hex.EncodeToString(u.BytesBE())
}

// Equals returns true if both Uint160 values are the same.
func (u Uint160) Equals(other Uint160) bool {
	return u == other
}

// UnmarshalJSON implements the json unmarshaller interface.
func (u *Uint160) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*u, err = Uint160DecodeStringBE(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (u Uint160) MarshalJSON() ([]byte, error) {
	return []byte(`"0x` + u.String() + `"`), nil
}
