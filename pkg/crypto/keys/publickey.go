package keys

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/omni-box/omnibox-go/pkg/encoding/base58"
)

// RootKeyPrefix is the curve prefix used in the textual form of the MPC
// signer root key.
const RootKeyPrefix = "secp256k1:"

const (
	// PublicKeyCompressedSize is the size of the compressed SEC1 encoding.
	PublicKeyCompressedSize = 33
	// PublicKeyUncompressedSize is the size of the uncompressed SEC1 encoding.
	PublicKeyUncompressedSize = 65

	coordinatesSize = 64
)

var (
	// ErrInvalidRootKeyEncoding is returned for malformed `secp256k1:<base58>`
	// root key strings.
	ErrInvalidRootKeyEncoding = errors.New("invalid root key encoding")
	// ErrInvalidPublicKeyBytes is returned when bytes don't represent a valid
	// secp256k1 point.
	ErrInvalidPublicKeyBytes = errors.New("invalid public key bytes")
)

// PublicKey is a point on the secp256k1 curve in affine coordinates.
type PublicKey secp256k1.PublicKey

// NewPublicKeyFromBytes decodes a compressed (33 bytes) or uncompressed
// (65 bytes) SEC1 point.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if l := len(b); l != PublicKeyCompressedSize && l != PublicKeyUncompressedSize {
		return nil, fmt.Errorf("%w: expected %d or %d bytes, got %d",
			ErrInvalidPublicKeyBytes, PublicKeyCompressedSize, PublicKeyUncompressedSize, l)
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKeyBytes, err)
	}
	return (*PublicKey)(pk), nil
}

// NewPublicKeyFromString returns a public key created from the
// given hex string.
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKeyBytes, err)
	}
	return NewPublicKeyFromBytes(b)
}

// NewPublicKeyFromRootString decodes a `secp256k1:<base58>` string where the
// base58 payload is the raw 64-byte X‖Y point.
func NewPublicKeyFromRootString(s string) (*PublicKey, error) {
	enc, ok := strings.CutPrefix(s, RootKeyPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidRootKeyEncoding, RootKeyPrefix)
	}
	raw, err := base58.Decode(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRootKeyEncoding, err)
	}
	if len(raw) != coordinatesSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRootKeyEncoding, coordinatesSize, len(raw))
	}
	return NewPublicKeyFromBytes(append([]byte{secp256k1.PubKeyFormatUncompressed}, raw...))
}

func (p *PublicKey) point() *secp256k1.PublicKey {
	return (*secp256k1.PublicKey)(p)
}

// ECDSA returns the underlying secp256k1 key.
func (p *PublicKey) ECDSA() *secp256k1.PublicKey {
	return p.point()
}

// AddScalarBase returns eps·G + p.
func (p *PublicKey) AddScalarBase(eps *secp256k1.ModNScalar) *PublicKey {
	var tweak, base, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(eps, &tweak)
	p.point().AsJacobian(&base)
	secp256k1.AddNonConst(&tweak, &base, &sum)
	return fromJacobian(&sum)
}

// Add returns p + q.
func (p *PublicKey) Add(q *PublicKey) *PublicKey {
	var a, b, sum secp256k1.JacobianPoint
	p.point().AsJacobian(&a)
	q.point().AsJacobian(&b)
	secp256k1.AddNonConst(&a, &b, &sum)
	return fromJacobian(&sum)
}

func fromJacobian(j *secp256k1.JacobianPoint) *PublicKey {
	j.ToAffine()
	return (*PublicKey)(secp256k1.NewPublicKey(&j.X, &j.Y))
}

// Bytes returns the 33-byte compressed representation of the key.
func (p *PublicKey) Bytes() []byte {
	return p.point().SerializeCompressed()
}

// UncompressedBytes returns the 65-byte uncompressed representation of the
// key (0x04 prefix).
func (p *PublicKey) UncompressedBytes() []byte {
	return p.point().SerializeUncompressed()
}

// XY returns raw 64-byte X‖Y coordinates.
func (p *PublicKey) XY() []byte {
	return p.UncompressedBytes()[1:]
}

// Equal returns true in case public keys are equal.
func (p *PublicKey) Equal(key *PublicKey) bool {
	return p.point().IsEqual(key.point())
}

// Cmp compares two keys by their uncompressed encoding.
func (p *PublicKey) Cmp(key *PublicKey) int {
	return bytes.Compare(p.UncompressedBytes(), key.UncompressedBytes())
}

// String implements the Stringer interface returning hex of the compressed
// key.
func (p *PublicKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

// StringUncompressed returns hex of the uncompressed key.
func (p *PublicKey) StringUncompressed() string {
	return hex.EncodeToString(p.UncompressedBytes())
}

// MarshalJSON implements the json.Marshaler interface.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	pk, err := NewPublicKeyFromString(s)
	if err != nil {
		return err
	}
	*p = *pk
	return nil
}
