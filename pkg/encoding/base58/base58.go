/*
Package base58 wraps the commonly used base58 encoding functionality and
provides the Bitcoin-style base58check variant with a double-SHA256 checksum.
*/
package base58

import (
	"bytes"
	"errors"

	"github.com/mr-tron/base58"
	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
)

// ErrInvalidChecksum is returned when the decoded checksum doesn't match the
// payload.
var ErrInvalidChecksum = errors.New("invalid base-58 check string: invalid checksum")

// Encode encodes the given byte slice into a plain base58 string.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode decodes the given plain base58 string.
func Decode(s string) ([]byte, error) {
	return base58.Decode(s)
}

// CheckDecode implements base58-encoded string decoding with hash-based
// checksum check.
func CheckDecode(s string) (b []byte, err error) {
	b, err = base58.Decode(s)
	if err != nil {
		return nil, err
	}

	if len(b) < 5 {
		return nil, errors.New("invalid base-58 check string: missing checksum")
	}

	if !bytes.Equal(hash.Checksum(b[:len(b)-4]), b[len(b)-4:]) {
		return nil, ErrInvalidChecksum
	}

	// Strip the 4 byte long hash.
	b = b[:len(b)-4]

	return b, nil
}

// CheckEncode encodes the given byte slice into a base58 string with hash-based
// checksum appended to it.
func CheckEncode(b []byte) string {
	buf := make([]byte, 0, len(b)+4)
	buf = append(buf, b...)
	buf = append(buf, hash.Checksum(b)...)
	return base58.Encode(buf)
}
