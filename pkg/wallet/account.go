/*
Package wallet implements NEAR account credentials storage in the
`<account>.json` format produced by near-cli (`account_id`, `public_key`,
`private_key`).
*/
package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/omni-box/omnibox-go/pkg/near"
)

// ErrKeyMismatch is returned when the public key of the credentials file
// doesn't match its private key.
var ErrKeyMismatch = errors.New("public key doesn't match private key")

// Account is a NEAR account with a full access key.
type Account struct {
	AccountID  near.AccountID
	PublicKey  near.PublicKey
	PrivateKey *near.PrivateKey
}

type accountAux struct {
	AccountID  string `json:"account_id"`
	PublicKey  string `json:"public_key,omitempty"`
	PrivateKey string `json:"private_key"`
}

// NewAccount creates an account from its ID and private key.
func NewAccount(id near.AccountID, priv *near.PrivateKey) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if priv == nil {
		return nil, errors.New("no private key")
	}
	return &Account{
		AccountID:  id,
		PublicKey:  priv.PublicKey(),
		PrivateKey: priv,
	}, nil
}

// NewAccountFromFile reads the account from the JSON credentials file.
func NewAccountFromFile(path string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	acc := new(Account)
	if err := json.Unmarshal(data, acc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return acc, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (a *Account) MarshalJSON() ([]byte, error) {
	aux := accountAux{
		AccountID: string(a.AccountID),
		PublicKey: a.PublicKey.String(),
	}
	if a.PrivateKey != nil {
		aux.PrivateKey = a.PrivateKey.String()
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Public key is
// optional, it's derived from the private key if missing.
func (a *Account) UnmarshalJSON(data []byte) error {
	var aux accountAux
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	priv, err := near.NewPrivateKeyFromString(aux.PrivateKey)
	if err != nil {
		return fmt.Errorf("private_key: %w", err)
	}
	acc, err := NewAccount(near.AccountID(aux.AccountID), priv)
	if err != nil {
		return fmt.Errorf("account_id: %w", err)
	}
	if aux.PublicKey != "" {
		pub, err := near.NewPublicKeyFromString(aux.PublicKey)
		if err != nil {
			return fmt.Errorf("public_key: %w", err)
		}
		if !bytes.Equal(pub, acc.PublicKey) {
			return ErrKeyMismatch
		}
	}
	*a = *acc
	return nil
}

// SaveToFile writes the account credentials to the file readable by the
// current user only.
func (a *Account) SaveToFile(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
