/*
Package waiter implements resilient transaction submission. A transaction is
sent once and if the gateway times out waiting for its finality the waiter
switches to polling its status by hash and sender until the transaction is
final, a non-timeout error is received or the deadline passes.
*/
package waiter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/omni-box/omnibox-go/pkg/near/result"
	"github.com/omni-box/omnibox-go/pkg/near/transaction"
	"github.com/omni-box/omnibox-go/pkg/nearrpc"
	"go.uber.org/zap"
)

// DefaultDeadline is the time limit for a transaction to be recognized
// counting from the first send.
const DefaultDeadline = 300 * time.Second

var (
	// ErrTimeoutRetryable is the classification of gateway timeouts. It's
	// never returned by Submit.
	ErrTimeoutRetryable = errors.New("gateway timeout, retryable")
	// ErrDeadlineExceeded is returned when the transaction wasn't recognized
	// before the deadline.
	ErrDeadlineExceeded = errors.New("time limit exceeded for the transaction to be recognized")
)

type (
	// RPC is the set of node methods the Waiter needs.
	RPC interface {
		SendTx(ctx context.Context, tx *transaction.SignedTransaction) (*result.Transaction, error)
		TxStatus(ctx context.Context, hash near.CryptoHash, sender near.AccountID) (*result.Transaction, error)
	}

	// Config is a Waiter configuration. All values are optional.
	Config struct {
		// Deadline is DefaultDeadline if not set.
		Deadline time.Duration
		// Clock is used to measure the deadline, wall clock by default.
		Clock clock.Clock
		// Logger is a no-op logger by default.
		Logger *zap.Logger
	}

	// Waiter submits transactions via RPC. It's safe for concurrent use,
	// every Submit is independent.
	Waiter struct {
		rpc    RPC
		config Config
		log    *zap.Logger
	}
)

type state byte

const (
	stateSending state = iota
	statePolling
)

func (s state) String() string {
	if s == stateSending {
		return "sending"
	}
	return "polling"
}

// New creates a Waiter.
func New(rpc RPC, config Config) *Waiter {
	if config.Deadline <= 0 {
		config.Deadline = DefaultDeadline
	}
	if config.Clock == nil {
		config.Clock = clock.New()
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Waiter{
		rpc:    rpc,
		config: config,
		log:    config.Logger,
	}
}

// IsTimeout returns true for gateway timeout signals: NEAR TIMEOUT_ERROR
// handler errors and HTTP 408 responses.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr *nearrpc.Error
	if errors.As(err, &rpcErr) && rpcErr.IsTimeout() {
		return true
	}
	var httpErr *nearrpc.HTTPError
	if errors.As(err, &httpErr) && httpErr.IsTimeout() {
		return true
	}
	return strings.Contains(err.Error(), "408 Request Timeout")
}

func classify(err error) error {
	if IsTimeout(err) {
		return ErrTimeoutRetryable
	}
	return err
}

// Submit sends the transaction and waits for its final execution outcome.
// Only gateway timeouts are retried, any other error is returned as is.
func (w *Waiter) Submit(ctx context.Context, tx *transaction.SignedTransaction) (*result.Transaction, error) {
	var (
		start = w.config.Clock.Now()
		st    = stateSending
		hash  = tx.Hash()
		log   = w.log.With(zap.Stringer("hash", hash), zap.Stringer("sender", tx.SignerID()))

		res *result.Transaction
		err error
	)
	defer func() {
		submitTime.Observe(w.config.Clock.Since(start).Seconds())
	}()

	for {
		switch st {
		case stateSending:
			log.Debug("sending transaction")
			sendsTotal.Inc()
			res, err = w.rpc.SendTx(ctx, tx)
		case statePolling:
			pollsTotal.Inc()
			res, err = w.rpc.TxStatus(ctx, hash, tx.SignerID())
			if elapsed := w.config.Clock.Since(start); elapsed > w.config.Deadline {
				log.Warn("transaction deadline exceeded", zap.Duration("elapsed", elapsed))
				return nil, fmt.Errorf("%w: %s after %s", ErrDeadlineExceeded, hash, elapsed)
			}
		}

		switch classify(err) {
		case nil:
			log.Debug("transaction result received", zap.Stringer("state", st))
			return res, nil
		case ErrTimeoutRetryable:
			timeoutsTotal.Inc()
			if st == stateSending {
				log.Info("gateway timeout, polling transaction status", zap.Error(err))
				st = statePolling
			}
		default:
			return nil, err
		}
	}
}
