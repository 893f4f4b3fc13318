/*
Package signer provides a client for the chain signatures MPC signer
contract. The contract signs 32-byte payloads with keys derived from the
caller account and derivation path (see the derivation package for the
matching public keys and addresses).

ContractReader only performs view calls, Contract also sends `sign`
transactions via the actor and reconstructs ECDSA signatures from the
signer's response.
*/
package signer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/omni-box/omnibox-go/pkg/near/result"
	"github.com/omni-box/omnibox-go/pkg/near/transaction"
	"github.com/omni-box/omnibox-go/pkg/rpcclient/unwrap"
)

const (
	// DefaultContract is the testnet signer contract.
	DefaultContract near.AccountID = "v1.signer-prod.testnet"

	depositMethod = "experimental_signature_deposit"
	signMethod    = "sign"
)

// ErrBadDeposit is returned when the deposit view call result is not a
// valid u128 number.
var ErrBadDeposit = errors.New("bad signature deposit")

type (
	// Invoker is used by ContractReader to perform view calls.
	Invoker interface {
		CallFunction(ctx context.Context, contract near.AccountID, method string, args []byte) (*result.CallResult, error)
	}

	// Actor is used by Contract to send transactions.
	Actor interface {
		SendCall(ctx context.Context, contract near.AccountID, method string, args any, gas uint64, deposit *uint256.Int) (*result.Transaction, error)
	}

	// ContractReader implements safe signer contract methods.
	ContractReader struct {
		invoker  Invoker
		contract near.AccountID
	}

	// Contract provides full signer contract interface.
	Contract struct {
		ContractReader
		actor Actor
	}

	// Request is a signing request.
	Request struct {
		Payload    [unwrap.PayloadSize]byte
		Path       string
		KeyVersion uint32
	}

	signArgs struct {
		Request signRequest `json:"request"`
	}

	signRequest struct {
		Payload    []uint16 `json:"payload"`
		Path       string   `json:"path"`
		KeyVersion uint32   `json:"key_version"`
	}
)

// NewReader creates an instance of ContractReader for the signer contract.
func NewReader(invoker Invoker, contract near.AccountID) *ContractReader {
	return &ContractReader{invoker, contract}
}

// New creates an instance of Contract for the signer contract.
func New(invoker Invoker, actor Actor, contract near.AccountID) *Contract {
	return &Contract{*NewReader(invoker, contract), actor}
}

// Contract returns the signer contract account.
func (c *ContractReader) Contract() near.AccountID {
	return c.contract
}

// Deposit returns the amount of yoctoNEAR to be attached to the next sign
// request.
func (c *ContractReader) Deposit(ctx context.Context) (*uint256.Int, error) {
	res, err := c.invoker.CallFunction(ctx, c.contract, depositMethod, []byte(`{}`))
	if err != nil {
		return nil, err
	}
	return parseU128(res.Result)
}

// parseU128 accepts both JSON number and JSON string encodings.
func parseU128(b []byte) (*uint256.Int, error) {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadDeposit, s, err)
	}
	if v.BitLen() > 128 {
		return nil, fmt.Errorf("%w: %s doesn't fit into u128", ErrBadDeposit, s)
	}
	return v, nil
}

func (r Request) args() signArgs {
	payload := make([]uint16, len(r.Payload))
	for i := range r.Payload {
		payload[i] = uint16(r.Payload[i])
	}
	return signArgs{Request: signRequest{
		Payload:    payload,
		Path:       r.Path,
		KeyVersion: r.KeyVersion,
	}}
}

// SignTransaction sends the sign request with the current deposit attached
// and returns the raw final transaction outcome.
func (c *Contract) SignTransaction(ctx context.Context, req Request) (*result.Transaction, error) {
	deposit, err := c.Deposit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	return c.actor.SendCall(ctx, c.contract, signMethod, req.args(), transaction.MaxGas, deposit)
}

// Sign requests a signature of the payload with the key derived for the
// sender account and path and reconstructs it.
func (c *Contract) Sign(ctx context.Context, payload [unwrap.PayloadSize]byte, path string, keyVersion uint32) (*keys.Signature, error) {
	return unwrap.ECDSASignature(c.SignTransaction(ctx, Request{
		Payload:    payload,
		Path:       path,
		KeyVersion: keyVersion,
	}))
}
