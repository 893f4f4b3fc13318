package derivation

import (
	"github.com/omni-box/omnibox-go/pkg/btc/script"
	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/util"
)

// DerivedAddress is an address along with the derived key it belongs to. The
// address encoding depends on the function that produced it.
type DerivedAddress struct {
	Address   string
	PublicKey *keys.PublicKey
}

// PublicKeyBytes returns the compressed key.
func (a *DerivedAddress) PublicKeyBytes() []byte {
	return a.PublicKey.Bytes()
}

// CompressedPublicKey returns the 33-byte compressed key.
func (a *DerivedAddress) CompressedPublicKey() []byte {
	return a.PublicKey.Bytes()
}

// UncompressedPublicKey returns the 65-byte uncompressed key.
func (a *DerivedAddress) UncompressedPublicKey() []byte {
	return a.PublicKey.UncompressedBytes()
}

// PublicKeyHash returns the witness public key hash, Hash160 of the
// compressed key.
func (a *DerivedAddress) PublicKeyHash() util.Uint160 {
	return hash.Hash160(a.CompressedPublicKey())
}

// ScriptPubKey returns the P2PKH locking script of the uncompressed key.
func (a *DerivedAddress) ScriptPubKey() []byte {
	return script.ScriptPubKey(a.PublicKey)
}

// ScriptSig returns the P2PKH unlocking script for sig.
func (a *DerivedAddress) ScriptSig(sig []byte) []byte {
	return script.ScriptSig(a.PublicKey, sig)
}
