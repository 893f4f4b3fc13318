package derivation

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/encoding/address"
	"github.com/omni-box/omnibox-go/pkg/near"
)

// RootPublicKey is the root key of the chain signatures MPC signer on NEAR
// testnet.
const RootPublicKey = "secp256k1:4NfTiv3UsGahebgTaHyD9vF8KYKMBnfd6kh94mK6xv8fGBiJB8TBtFMP5WWXz6B89Ac1fbpzPwAvoyQebemHFwx3"

// DeriveKey returns eps·G + root in affine coordinates.
func DeriveKey(root *keys.PublicKey, eps *secp256k1.ModNScalar) *keys.PublicKey {
	return root.AddScalarBase(eps)
}

// Deriver derives keys and addresses from a fixed root key. It's immutable
// and safe for concurrent use.
type Deriver struct {
	Root *keys.PublicKey
}

// New returns a Deriver for the given root key.
func New(root *keys.PublicKey) *Deriver {
	return &Deriver{Root: root}
}

// NewFromRootString returns a Deriver for the `secp256k1:<base58>` root key.
func NewFromRootString(s string) (*Deriver, error) {
	root, err := keys.NewPublicKeyFromRootString(s)
	if err != nil {
		return nil, err
	}
	return New(root), nil
}

// Default returns a Deriver for RootPublicKey.
func Default() *Deriver {
	d, err := NewFromRootString(RootPublicKey)
	if err != nil {
		panic(err)
	}
	return d
}

// PublicKey returns the key derived for accountID and path.
func (d *Deriver) PublicKey(accountID near.AccountID, path string) (*keys.PublicKey, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}
	eps, err := DeriveEpsilon(accountID, path)
	if err != nil {
		return nil, err
	}
	return DeriveKey(d.Root, eps), nil
}

// KeySource is anything deriving keys for account and path, a Deriver or
// a Cache over it.
type KeySource interface {
	PublicKey(accountID near.AccountID, path string) (*keys.PublicKey, error)
}

// EVMAddress returns the EVM address derived for accountID and path.
func (d *Deriver) EVMAddress(accountID near.AccountID, path string) (*DerivedAddress, error) {
	return evmAddress(d, accountID, path)
}

// BTCLegacyAddress returns the P2PKH address derived for accountID and path.
func (d *Deriver) BTCLegacyAddress(accountID near.AccountID, path string, net netmode.Bitcoin) (*DerivedAddress, error) {
	return legacyAddress(d, accountID, path, net)
}

// SegwitAddress returns the P2WPKH address derived for accountID and path.
func (d *Deriver) SegwitAddress(accountID near.AccountID, path string, net netmode.Bitcoin) (*DerivedAddress, error) {
	return segwitAddress(d, accountID, path, net)
}

func evmAddress(src KeySource, accountID near.AccountID, path string) (*DerivedAddress, error) {
	pub, err := src.PublicKey(accountID, path)
	if err != nil {
		return nil, err
	}
	return &DerivedAddress{Address: address.EVM(pub), PublicKey: pub}, nil
}

func legacyAddress(src KeySource, accountID near.AccountID, path string, net netmode.Bitcoin) (*DerivedAddress, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	pub, err := src.PublicKey(accountID, path)
	if err != nil {
		return nil, err
	}
	addr, err := address.P2PKH(pub, net)
	if err != nil {
		return nil, fmt.Errorf("failed to encode legacy address: %w", err)
	}
	return &DerivedAddress{Address: addr, PublicKey: pub}, nil
}

func segwitAddress(src KeySource, accountID near.AccountID, path string, net netmode.Bitcoin) (*DerivedAddress, error) {
	pub, err := src.PublicKey(accountID, path)
	if err != nil {
		return nil, err
	}
	addr, err := address.P2WPKH(pub, net)
	if err != nil {
		return nil, fmt.Errorf("failed to encode segwit address: %w", err)
	}
	return &DerivedAddress{Address: addr, PublicKey: pub}, nil
}
