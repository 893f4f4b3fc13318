package near

import (
	"encoding/json"
	"fmt"

	"github.com/omni-box/omnibox-go/pkg/encoding/base58"
	"github.com/omni-box/omnibox-go/pkg/util"
)

// CryptoHash is a 32-byte hash (block and transaction hashes) in its base58
// text form.
type CryptoHash util.Uint256

// NewCryptoHashFromString decodes a base58 hash.
func NewCryptoHashFromString(s string) (CryptoHash, error) {
	var h CryptoHash
	b, err := base58.Decode(s)
	if err != nil {
		return h, fmt.Errorf("bad hash %q: %w", s, err)
	}
	u, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return h, fmt.Errorf("bad hash %q: %w", s, err)
	}
	return CryptoHash(u), nil
}

// String implements the stringer interface.
func (h CryptoHash) String() string {
	return base58.Encode(h[:])
}

// MarshalJSON implements the json.Marshaler interface.
func (h CryptoHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *CryptoHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	res, err := NewCryptoHashFromString(s)
	if err != nil {
		return err
	}
	*h = res
	return nil
}
