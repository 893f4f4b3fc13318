/*
Package actor provides a way to change chain state via RPC client.

This layer builds on top of the basic RPC client, it simplifies creating,
signing and sending transactions to the network on behalf of a single account
with a full access key. Contract-specific functions (like the chain signatures
signer) can build on top of it.
*/
package actor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/omni-box/omnibox-go/pkg/near/result"
	"github.com/omni-box/omnibox-go/pkg/near/transaction"
	"github.com/omni-box/omnibox-go/pkg/wallet"
)

// RPCActor is an interface required from the RPC client to successfully
// create and send transactions.
type RPCActor interface {
	GetNonceAndBlockHash(ctx context.Context, account near.AccountID, key near.PublicKey) (uint64, near.CryptoHash, error)
	SendTransaction(ctx context.Context, tx *transaction.SignedTransaction) (*result.Transaction, error)
}

// Actor keeps a connection to the RPC endpoint and allows to perform
// state-changing actions on behalf of the account. "Make" methods create
// signed transactions without sending them, "Send" methods also submit them
// and wait for the final execution outcome.
type Actor struct {
	client RPCActor
	acc    *wallet.Account
}

// ErrNoAccount is returned when Actor is created without account or the
// account has no private key.
var ErrNoAccount = errors.New("account with private key is required")

// New creates an Actor for the given account.
func New(ra RPCActor, acc *wallet.Account) (*Actor, error) {
	if acc == nil || acc.PrivateKey == nil {
		return nil, ErrNoAccount
	}
	return &Actor{
		client: ra,
		acc:    acc,
	}, nil
}

// Sender returns the account ID transactions are sent from.
func (a *Actor) Sender() near.AccountID {
	return a.acc.AccountID
}

// MakeTransaction creates a transaction with the given actions using the next
// access key nonce and the latest final block hash, then signs it.
func (a *Actor) MakeTransaction(ctx context.Context, receiver near.AccountID, actions ...transaction.Action) (*transaction.SignedTransaction, error) {
	nonce, bh, err := a.client.GetNonceAndBlockHash(ctx, a.acc.AccountID, a.acc.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get access key nonce: %w", err)
	}
	tx := &transaction.Transaction{
		SignerID:   a.acc.AccountID,
		PublicKey:  a.acc.PublicKey,
		Nonce:      nonce + 1,
		ReceiverID: receiver,
		BlockHash:  bh,
		Actions:    actions,
	}
	return tx.Sign(a.acc.PrivateKey)
}

// MakeCall creates a signed transaction with a single function call. args
// are marshaled to JSON, nil deposit means no deposit.
func (a *Actor) MakeCall(ctx context.Context, contract near.AccountID, method string, args any, gas uint64, deposit *uint256.Int) (*transaction.SignedTransaction, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if deposit == nil {
		deposit = new(uint256.Int)
	}
	return a.MakeTransaction(ctx, contract, &transaction.FunctionCall{
		MethodName: method,
		Args:       raw,
		Gas:        gas,
		Deposit:    deposit,
	})
}

// Send submits the transaction resiliently.
func (a *Actor) Send(ctx context.Context, tx *transaction.SignedTransaction) (*result.Transaction, error) {
	return a.client.SendTransaction(ctx, tx)
}

func (a *Actor) sendWrapper(ctx context.Context, tx *transaction.SignedTransaction, err error) (*result.Transaction, error) {
	if err != nil {
		return nil, err
	}
	return a.Send(ctx, tx)
}

// SendActions creates, signs and sends a transaction with the given actions.
func (a *Actor) SendActions(ctx context.Context, receiver near.AccountID, actions ...transaction.Action) (*result.Transaction, error) {
	tx, err := a.MakeTransaction(ctx, receiver, actions...)
	return a.sendWrapper(ctx, tx, err)
}

// SendCall creates, signs and sends a function call transaction, see
// MakeCall.
func (a *Actor) SendCall(ctx context.Context, contract near.AccountID, method string, args any, gas uint64, deposit *uint256.Int) (*result.Transaction, error) {
	tx, err := a.MakeCall(ctx, contract, method, args, gas, deposit)
	return a.sendWrapper(ctx, tx, err)
}

// DeployContract deploys the wasm code to the actor's own account.
func (a *Actor) DeployContract(ctx context.Context, code []byte) (*result.Transaction, error) {
	if len(code) == 0 {
		return nil, errors.New("empty contract code")
	}
	return a.SendActions(ctx, a.acc.AccountID, &transaction.DeployContract{Code: code})
}
