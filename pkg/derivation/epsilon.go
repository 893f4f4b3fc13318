/*
Package derivation implements non-interactive derivation of per-account
secp256k1 keys from the MPC signer root key and chain-specific addresses for
them.

A key for (account, path) is root + ε·G where ε is a scalar derived from the
identity with a domain-separated SHA3-256 hash, so any number of identities
share one signing authority without contacting it.
*/
package derivation

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/near"
)

// EpsilonDerivationPrefix is the domain separation prefix of epsilon hashes.
const EpsilonDerivationPrefix = "near-mpc-recovery v0.1.0 epsilon derivation:"

// ErrDerivationOutOfField is returned when the epsilon hash is not a valid
// scalar. The probability of this is about 2^-127.
var ErrDerivationOutOfField = errors.New("epsilon derivation is out of field")

// DeriveEpsilon returns the derivation tweak for the given account and path.
func DeriveEpsilon(accountID near.AccountID, path string) (*secp256k1.ModNScalar, error) {
	return epsilonFromDigest(hash.Sha3_256([]byte(EpsilonDerivationPrefix + string(accountID) + "," + path)))
}

func epsilonFromDigest(d [32]byte) (*secp256k1.ModNScalar, error) {
	eps, err := keys.ScalarFromBytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationOutOfField, err)
	}
	return eps, nil
}

// MustDeriveEpsilon is the same as DeriveEpsilon, but panics on error.
func MustDeriveEpsilon(accountID near.AccountID, path string) *secp256k1.ModNScalar {
	eps, err := DeriveEpsilon(accountID, path)
	if err != nil {
		panic(err)
	}
	return eps
}
