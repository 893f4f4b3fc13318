/*
Package near contains NEAR Protocol primitives: account identifiers, ed25519
key strings and crypto hashes.
*/
package near

import (
	"errors"
	"fmt"
)

const (
	// MinAccountIDLen is the minimal length of a valid account ID.
	MinAccountIDLen = 2
	// MaxAccountIDLen is the maximal length of a valid account ID.
	MaxAccountIDLen = 64
)

// ErrInvalidAccountID is returned for strings that are not valid NEAR account
// identifiers.
var ErrInvalidAccountID = errors.New("invalid account ID")

// AccountID is a NEAR account identifier like `alice.testnet`.
type AccountID string

// NewAccountID validates s and returns it as an AccountID.
func NewAccountID(s string) (AccountID, error) {
	a := AccountID(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate checks account ID syntax: 2-64 characters, lowercase alphanumeric
// parts separated by a single `-`, `_` or `.`.
func (a AccountID) Validate() error {
	if l := len(a); l < MinAccountIDLen || l > MaxAccountIDLen {
		return fmt.Errorf("%w: length %d is not in [%d, %d]", ErrInvalidAccountID, l, MinAccountIDLen, MaxAccountIDLen)
	}
	separator := true
	for i := 0; i < len(a); i++ {
		c := a[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			separator = false
		case c == '-' || c == '_' || c == '.':
			if separator {
				return fmt.Errorf("%w: unexpected separator %q at %d", ErrInvalidAccountID, c, i)
			}
			separator = true
		default:
			return fmt.Errorf("%w: invalid character %q at %d", ErrInvalidAccountID, c, i)
		}
	}
	if separator {
		return fmt.Errorf("%w: trailing separator", ErrInvalidAccountID)
	}
	return nil
}

// String implements the stringer interface.
func (a AccountID) String() string {
	return string(a)
}
