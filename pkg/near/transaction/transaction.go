/*
Package transaction implements NEAR transactions: Borsh serialization, hashing
and ed25519 signing.
*/
package transaction

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
	"github.com/omni-box/omnibox-go/pkg/io"
	"github.com/omni-box/omnibox-go/pkg/near"
)

const (
	// TGas is 10^12 gas units.
	TGas uint64 = 1_000_000_000_000
	// MaxGas is the maximum amount of gas attachable to a function call.
	MaxGas = 300 * TGas
)

// ErrNoActions is returned for transactions without actions.
var ErrNoActions = errors.New("transaction has no actions")

// Transaction is a NEAR transaction (V0 layout).
type Transaction struct {
	SignerID   near.AccountID
	PublicKey  near.PublicKey
	Nonce      uint64
	ReceiverID near.AccountID
	BlockHash  near.CryptoHash
	Actions    []Action
}

// SignedTransaction is a transaction along with its signature.
type SignedTransaction struct {
	Transaction *Transaction
	Signature   []byte

	hash near.CryptoHash
}

// EncodeBinary implements the io.Serializable interface.
func (t *Transaction) EncodeBinary(w *io.BinWriter) {
	w.WriteString(string(t.SignerID))
	t.PublicKey.EncodeBinary(w)
	w.WriteU64LE(t.Nonce)
	w.WriteString(string(t.ReceiverID))
	w.WriteBytes(t.BlockHash[:])
	actions := make([]taggedAction, len(t.Actions))
	for i := range t.Actions {
		actions[i] = taggedAction{t.Actions[i]}
	}
	io.WriteArray(w, actions)
}

// Bytes returns Borsh serialization of the transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	buf := io.NewBufBinWriter()
	t.EncodeBinary(buf.BinWriter)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

func (t *Transaction) validate() error {
	if err := t.SignerID.Validate(); err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	if err := t.ReceiverID.Validate(); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	if len(t.Actions) == 0 {
		return ErrNoActions
	}
	return nil
}

// Hash returns SHA-256 of the serialized transaction.
func (t *Transaction) Hash() (near.CryptoHash, error) {
	b, err := t.Bytes()
	if err != nil {
		return near.CryptoHash{}, err
	}
	return near.CryptoHash(hash.Sha256(b)), nil
}

// Sign signs the transaction hash with the given key.
func (t *Transaction) Sign(priv *near.PrivateKey) (*SignedTransaction, error) {
	h, err := t.Hash()
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Transaction: t,
		Signature:   priv.Sign(h[:]),
		hash:        h,
	}, nil
}

// Hash returns the hash of the signed transaction, it's the same as the
// hash of the transaction itself.
func (s *SignedTransaction) Hash() near.CryptoHash {
	return s.hash
}

// SignerID returns the sender of the transaction.
func (s *SignedTransaction) SignerID() near.AccountID {
	return s.Transaction.SignerID
}

// EncodeBinary implements the io.Serializable interface.
func (s *SignedTransaction) EncodeBinary(w *io.BinWriter) {
	s.Transaction.EncodeBinary(w)
	if len(s.Signature) != ed25519.SignatureSize {
		w.Err = fmt.Errorf("invalid signature length %d", len(s.Signature))
		return
	}
	w.WriteB(near.KeyTypeED25519)
	w.WriteBytes(s.Signature)
}

// Bytes returns Borsh serialization of the signed transaction.
func (s *SignedTransaction) Bytes() ([]byte, error) {
	buf := io.NewBufBinWriter()
	s.EncodeBinary(buf.BinWriter)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// Base64 returns base64 of the serialized signed transaction as expected by
// `send_tx`.
func (s *SignedTransaction) Base64() (string, error) {
	b, err := s.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
