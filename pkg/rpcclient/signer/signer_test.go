package signer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/omni-box/omnibox-go/pkg/crypto/hash"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/near"
	"github.com/omni-box/omnibox-go/pkg/near/result"
	"github.com/omni-box/omnibox-go/pkg/near/transaction"
	"github.com/omni-box/omnibox-go/pkg/rpcclient/unwrap"
	"github.com/stretchr/testify/require"
)

const (
	testPub = "030f47a16c4c6673fcec00a9a2fc9e83bd57af1407aa0a4a07ed9e3d86cecb3ff0"
	bigR    = "02e236049abd1d3cc5fe25ed802abded928fd1e4ad9f058b8935f3f0763ed87aa7"
	s       = "a94f036d248f507b4f5d595900a35c1fa590bb16554c7b85f059e8b01fbae714"
)

type testInv struct {
	err error
	res []byte

	contract near.AccountID
	method   string
	args     []byte
}

func (t *testInv) CallFunction(_ context.Context, contract near.AccountID, method string, args []byte) (*result.CallResult, error) {
	t.contract, t.method, t.args = contract, method, args
	return &result.CallResult{Result: t.res}, t.err
}

type testAct struct {
	err error
	res *result.Transaction

	contract near.AccountID
	method   string
	args     any
	gas      uint64
	deposit  *uint256.Int
}

func (t *testAct) SendCall(_ context.Context, contract near.AccountID, method string, args any, gas uint64, deposit *uint256.Int) (*result.Transaction, error) {
	t.contract, t.method, t.args, t.gas, t.deposit = contract, method, args, gas, deposit
	return t.res, t.err
}

func TestDeposit(t *testing.T) {
	inv := &testInv{res: []byte(`"1000000000000000000000000"`)}
	r := NewReader(inv, DefaultContract)
	require.Equal(t, DefaultContract, r.Contract())

	d, err := r.Deposit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000000", d.Dec())
	require.Equal(t, DefaultContract, inv.contract)
	require.Equal(t, "experimental_signature_deposit", inv.method)
	require.Equal(t, []byte(`{}`), inv.args)

	inv.res = []byte(`1`)
	d, err = r.Deposit(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(1), d)

	for _, bad := range []string{`"abc"`, `"-1"`, `340282366920938463463374607431768211456`} {
		inv.res = []byte(bad)
		_, err = r.Deposit(context.Background())
		require.ErrorIs(t, err, ErrBadDeposit, bad)
	}

	inv.err = errors.New("unreachable")
	_, err = r.Deposit(context.Background())
	require.ErrorIs(t, err, inv.err)
}

func TestSign(t *testing.T) {
	var (
		payload = [32]byte(hash.Sha256([]byte("hello")))
		inv     = &testInv{res: []byte(`"5"`)}
		act     = &testAct{res: &result.Transaction{Status: &result.ExecutionStatus{
			Kind:         result.StatusSuccessValue,
			SuccessValue: []byte(`{"big_r":{"affine_point":"` + bigR + `"},"s":{"scalar":"` + s + `"},"recovery_id":0}`),
		}}}
		c = New(inv, act, DefaultContract)
	)

	sig, err := c.Sign(context.Background(), payload, "bitcoin-1", 0)
	require.NoError(t, err)
	pub, err := keys.NewPublicKeyFromString(testPub)
	require.NoError(t, err)
	require.True(t, sig.Verify(pub, payload[:]))

	require.Equal(t, DefaultContract, act.contract)
	require.Equal(t, "sign", act.method)
	require.Equal(t, transaction.MaxGas, act.gas)
	require.Equal(t, uint256.NewInt(5), act.deposit)

	b, err := json.Marshal(act.args)
	require.NoError(t, err)
	var args struct {
		Request struct {
			Payload    []int  `json:"payload"`
			Path       string `json:"path"`
			KeyVersion uint32 `json:"key_version"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(b, &args))
	require.Len(t, args.Request.Payload, 32)
	for i := range payload {
		require.Equal(t, int(payload[i]), args.Request.Payload[i])
	}
	require.Equal(t, "bitcoin-1", args.Request.Path)
	require.Equal(t, uint32(0), args.Request.KeyVersion)

	t.Run("failure", func(t *testing.T) {
		act.res = &result.Transaction{Status: &result.ExecutionStatus{
			Kind:    result.StatusFailure,
			Failure: json.RawMessage(`{"ActionError":{}}`),
		}}
		_, err := c.Sign(context.Background(), payload, "bitcoin-1", 0)
		require.ErrorIs(t, err, unwrap.ErrMalformedSignerResponse)
	})
	t.Run("send error", func(t *testing.T) {
		act.err = errors.New("deadline")
		_, err := c.Sign(context.Background(), payload, "bitcoin-1", 0)
		require.ErrorIs(t, err, act.err)
		act.err = nil
	})
	t.Run("deposit error", func(t *testing.T) {
		act.method = ""
		inv.res = []byte(`"x"`)
		_, err := c.Sign(context.Background(), payload, "bitcoin-1", 0)
		require.ErrorIs(t, err, ErrBadDeposit)
		require.Empty(t, act.method)
	})
}
