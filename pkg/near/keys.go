package near

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/omni-box/omnibox-go/pkg/encoding/base58"
	"github.com/omni-box/omnibox-go/pkg/io"
)

// ED25519Prefix is the key type prefix of NEAR ed25519 key strings.
const ED25519Prefix = "ed25519:"

// KeyTypeED25519 is the Borsh tag of ed25519 keys and signatures.
const KeyTypeED25519 byte = 0

// ErrInvalidKey is returned for malformed key strings.
var ErrInvalidKey = errors.New("invalid ed25519 key")

// PublicKey is an ed25519 NEAR access key.
type PublicKey ed25519.PublicKey

// PrivateKey is an ed25519 NEAR secret key.
type PrivateKey struct {
	ed25519.PrivateKey
}

func decodeKeyString(s string) ([]byte, error) {
	enc, ok := strings.CutPrefix(s, ED25519Prefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidKey, ED25519Prefix)
	}
	b, err := base58.Decode(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return b, nil
}

// NewPublicKeyFromString decodes an `ed25519:<base58>` public key.
func NewPublicKeyFromString(s string) (PublicKey, error) {
	b, err := decodeKeyString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, ed25519.PublicKeySize, len(b))
	}
	return PublicKey(b), nil
}

// String implements the stringer interface.
func (p PublicKey) String() string {
	return ED25519Prefix + base58.Encode(p)
}

// EncodeBinary implements the io.Serializable interface.
func (p PublicKey) EncodeBinary(w *io.BinWriter) {
	if len(p) != ed25519.PublicKeySize {
		w.Err = fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, ed25519.PublicKeySize, len(p))
		return
	}
	w.WriteB(KeyTypeED25519)
	w.WriteBytes(p)
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
	res, err := NewPublicKeyFromString(s)
	if err != nil {
		return err
	}
	*p = res
	return nil
}

// NewPrivateKeyFromString decodes an `ed25519:<base58>` secret key, either
// the full 64-byte form or a 32-byte seed.
func NewPrivateKeyFromString(s string) (*PrivateKey, error) {
	b, err := decodeKeyString(s)
	if err != nil {
		return nil, err
	}
	switch len(b) {
	case ed25519.PrivateKeySize:
		return &PrivateKey{ed25519.PrivateKey(b)}, nil
	case ed25519.SeedSize:
		return &PrivateKey{ed25519.NewKeyFromSeed(b)}, nil
	default:
		return nil, fmt.Errorf("%w: expected %d or %d bytes, got %d",
			ErrInvalidKey, ed25519.PrivateKeySize, ed25519.SeedSize, len(b))
	}
}

// PublicKey returns the public part of the key.
func (p *PrivateKey) PublicKey() PublicKey {
	return PublicKey(p.PrivateKey.Public().(ed25519.PublicKey))
}

// Sign signs the message.
func (p *PrivateKey) Sign(msg []byte) []byte {
	return ed25519.Sign(p.PrivateKey, msg)
}

// String implements the stringer interface.
func (p *PrivateKey) String() string {
	return ED25519Prefix + base58.Encode(p.PrivateKey)
}
