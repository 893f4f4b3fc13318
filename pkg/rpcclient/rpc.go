package rpcclient

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/omni-box/omnibox-go/pkg/near/result"
	"github.com/omni-box/omnibox-go/pkg/near/transaction"
	"github.com/omni-box/omnibox-go/pkg/nearrpc"
	"github.com/omni-box/omnibox-go/pkg/rpcclient/waiter"
)

// ErrQueryFailed is returned when the node reports query error in the result.
var ErrQueryFailed = errors.New("query failed")

// SendTx sends the signed transaction and waits for it to reach the
// configured finality level.
func (c *Client) SendTx(ctx context.Context, tx *transaction.SignedTransaction) (*result.Transaction, error) {
	b64, err := tx.Base64()
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}
	var (
		params = nearrpc.SendTxParams{
			SignedTxBase64: b64,
			WaitUntil:      c.opts.WaitUntil,
		}
		resp = new(result.Transaction)
	)
	if err := c.performRequest(ctx, nearrpc.MethodSendTx, params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TxStatus returns the status of the transaction identified by its hash and
// sender waiting for the configured finality level.
func (c *Client) TxStatus(ctx context.Context, hash near.CryptoHash, sender near.AccountID) (*result.Transaction, error) {
	var (
		params = nearrpc.TxStatusParams{
			TxHash:          hash.String(),
			SenderAccountID: string(sender),
			WaitUntil:       c.opts.WaitUntil,
		}
		resp = new(result.Transaction)
	)
	if err := c.performRequest(ctx, nearrpc.MethodTx, params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SendTransaction submits the transaction resiliently: gateway timeouts are
// followed by status polling until the transaction is final or the deadline
// passes.
func (c *Client) SendTransaction(ctx context.Context, tx *transaction.SignedTransaction) (*result.Transaction, error) {
	w := waiter.New(c, waiter.Config{
		Deadline: c.opts.Deadline,
		Logger:   c.log,
	})
	return w.Submit(ctx, tx)
}

// ViewAccessKey returns the access key of the account at the final block.
func (c *Client) ViewAccessKey(ctx context.Context, account near.AccountID, key near.PublicKey) (*result.AccessKeyView, error) {
	var (
		params = nearrpc.ViewAccessKeyParams{
			RequestType: "view_access_key",
			Finality:    nearrpc.FinalityFinal,
			AccountID:   string(account),
			PublicKey:   key.String(),
		}
		resp = new(result.AccessKeyView)
	)
	if err := c.performRequest(ctx, nearrpc.MethodQuery, params, resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrQueryFailed, resp.Error)
	}
	return resp, nil
}

// CallFunction invokes the view method of the contract with JSON args at the
// final block.
func (c *Client) CallFunction(ctx context.Context, contract near.AccountID, method string, args []byte) (*result.CallResult, error) {
	var (
		params = nearrpc.CallFunctionParams{
			RequestType: "call_function",
			Finality:    nearrpc.FinalityFinal,
			AccountID:   string(contract),
			MethodName:  method,
			ArgsBase64:  base64.StdEncoding.EncodeToString(args),
		}
		resp = new(result.CallResult)
	)
	if err := c.performRequest(ctx, nearrpc.MethodQuery, params, resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrQueryFailed, resp.Error)
	}
	return resp, nil
}

// GetNonceAndBlockHash returns the current nonce of the access key and the
// hash of the block it was observed at, both are needed to build a new
// transaction.
func (c *Client) GetNonceAndBlockHash(ctx context.Context, account near.AccountID, key near.PublicKey) (uint64, near.CryptoHash, error) {
	view, err := c.ViewAccessKey(ctx, account, key)
	if err != nil {
		return 0, near.CryptoHash{}, err
	}
	h, err := near.NewCryptoHashFromString(view.BlockHash)
	if err != nil {
		return 0, near.CryptoHash{}, fmt.Errorf("bad block hash: %w", err)
	}
	return view.Nonce, h, nil
}
