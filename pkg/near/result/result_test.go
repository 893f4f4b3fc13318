package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const txResponse = `{
  "final_execution_status": "FINAL",
  "status": {"SuccessValue": "eyJiaWdfciI6MX0="},
  "transaction": {
    "signer_id": "omnitester.testnet",
    "public_key": "ed25519:8hSHprDq2StXwMtNd43wDTXQYsjXcD4MJTXQYsjXcc",
    "nonce": 15,
    "receiver_id": "v1.signer-prod.testnet",
    "actions": [{"FunctionCall": {"method_name": "sign"}}],
    "signature": "ed25519:1",
    "hash": "9FtHUFBQsZ2MG77K3x3MJ9wjX3UT8zE1TczCrhZEcG8U"
  },
  "transaction_outcome": {
    "id": "9FtHUFBQsZ2MG77K3x3MJ9wjX3UT8zE1TczCrhZEcG8U",
    "block_hash": "2",
    "outcome": {"logs": [], "receipt_ids": ["3"], "gas_burnt": 2428000000000, "tokens_burnt": "242800000000000000000", "executor_id": "omnitester.testnet", "status": {"SuccessReceiptId": "3"}}
  },
  "receipts_outcome": [
    {"id": "3", "block_hash": "4", "outcome": {"logs": ["sign: predecessor=omnitester.testnet"], "receipt_ids": [], "gas_burnt": 1, "tokens_burnt": "0", "executor_id": "v1.signer-prod.testnet", "status": {"Failure": {"ActionError": {"index": 0}}}}},
    {"id": "5", "block_hash": "6", "outcome": {"logs": [], "receipt_ids": [], "gas_burnt": 1, "tokens_burnt": "0", "executor_id": "v1.signer-prod.testnet", "status": "Unknown"}}
  ]
}`

func TestTransactionUnmarshal(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(txResponse), &tx))
	require.True(t, tx.HasOutcome())
	require.Equal(t, "FINAL", tx.FinalExecutionStatus)
	require.Equal(t, StatusSuccessValue, tx.Status.Kind)
	require.True(t, tx.Status.IsSuccess())
	require.Equal(t, []byte(`{"big_r":1}`), tx.Status.SuccessValue)
	require.Equal(t, "omnitester.testnet", tx.Transaction.SignerID)
	require.EqualValues(t, 15, tx.Transaction.Nonce)

	require.Equal(t, StatusSuccessReceiptID, tx.TransactionOutcome.Outcome.Status.Kind)
	require.Equal(t, "3", tx.TransactionOutcome.Outcome.Status.SuccessReceiptID)

	require.Len(t, tx.ReceiptsOutcome, 2)
	require.Equal(t, StatusFailure, tx.ReceiptsOutcome[0].Outcome.Status.Kind)
	require.False(t, tx.ReceiptsOutcome[0].Outcome.Status.IsSuccess())
	require.JSONEq(t, `{"ActionError": {"index": 0}}`, string(tx.ReceiptsOutcome[0].Outcome.Status.Failure))
	require.Equal(t, StatusUnknown, tx.ReceiptsOutcome[1].Outcome.Status.Kind)
}

func TestTransactionWithoutOutcome(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"final_execution_status":"NONE"}`), &tx))
	require.False(t, tx.HasOutcome())
}

func TestExecutionStatusJSON(t *testing.T) {
	testCases := map[string]ExecutionStatus{
		`"NotStarted"`:                  {Kind: StatusNotStarted},
		`"Started"`:                     {Kind: StatusStarted},
		`"Unknown"`:                     {Kind: StatusUnknown},
		`{"SuccessValue":""}`:           {Kind: StatusSuccessValue, SuccessValue: []byte{}},
		`{"SuccessValue":"AQI="}`:       {Kind: StatusSuccessValue, SuccessValue: []byte{1, 2}},
		`{"SuccessReceiptId":"abc"}`:    {Kind: StatusSuccessReceiptID, SuccessReceiptID: "abc"},
		`{"Failure":{"ActionError":1}}`: {Kind: StatusFailure, Failure: json.RawMessage(`{"ActionError":1}`)},
	}
	for js, expected := range testCases {
		var actual ExecutionStatus
		require.NoError(t, json.Unmarshal([]byte(js), &actual), js)
		assert.Equal(t, expected, actual, js)

		data, err := json.Marshal(actual)
		require.NoError(t, err)
		assert.JSONEq(t, js, string(data))
	}

	for _, js := range []string{`"Finished"`, `{}`, `{"SuccessValue":"!!"}`, `42`} {
		var actual ExecutionStatus
		require.Error(t, json.Unmarshal([]byte(js), &actual), js)
	}
}

func TestByteArray(t *testing.T) {
	var b ByteArray
	require.NoError(t, json.Unmarshal([]byte(`[0, 1, 255]`), &b))
	require.Equal(t, ByteArray{0, 1, 255}, b)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `[0,1,255]`, string(data))

	for _, js := range []string{`[256]`, `[-1]`, `"AAE="`, `[1.5]`} {
		require.Error(t, json.Unmarshal([]byte(js), &b), js)
	}
}

func TestCallResultUnmarshal(t *testing.T) {
	var res CallResult
	require.NoError(t, json.Unmarshal([]byte(`{"result":[34,49,34],"logs":[],"block_height":17,"block_hash":"abc"}`), &res))
	require.Equal(t, ByteArray(`"1"`), res.Result)
	require.EqualValues(t, 17, res.BlockHeight)
}
