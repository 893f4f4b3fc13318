/*
Package result contains NEAR JSON-RPC result types.
*/
package result

import "encoding/json"

type (
	// Transaction is a `tx`/`send_tx` result: the final execution outcome of
	// a transaction along with its finality level. Outcome fields are only
	// present when the requested finality level was reached.
	Transaction struct {
		FinalExecutionStatus string                   `json:"final_execution_status,omitempty"`
		Status               *ExecutionStatus         `json:"status,omitempty"`
		Transaction          *TransactionView         `json:"transaction,omitempty"`
		TransactionOutcome   *ExecutionOutcomeWithID  `json:"transaction_outcome,omitempty"`
		ReceiptsOutcome      []ExecutionOutcomeWithID `json:"receipts_outcome,omitempty"`
	}

	// TransactionView is the transaction as seen by the node.
	TransactionView struct {
		SignerID   string          `json:"signer_id"`
		PublicKey  string          `json:"public_key"`
		Nonce      uint64          `json:"nonce"`
		ReceiverID string          `json:"receiver_id"`
		Actions    json.RawMessage `json:"actions,omitempty"`
		Signature  string          `json:"signature,omitempty"`
		Hash       string          `json:"hash"`
	}

	// ExecutionOutcomeWithID is an execution outcome of a transaction or
	// receipt.
	ExecutionOutcomeWithID struct {
		ID        string           `json:"id"`
		BlockHash string           `json:"block_hash,omitempty"`
		Outcome   ExecutionOutcome `json:"outcome"`
	}

	// ExecutionOutcome describes execution results.
	ExecutionOutcome struct {
		Logs        []string        `json:"logs"`
		ReceiptIDs  []string        `json:"receipt_ids"`
		GasBurnt    uint64          `json:"gas_burnt"`
		TokensBurnt string          `json:"tokens_burnt"`
		ExecutorID  string          `json:"executor_id"`
		Status      ExecutionStatus `json:"status"`
	}
)

// HasOutcome returns true when the result contains the final execution
// outcome.
func (t *Transaction) HasOutcome() bool {
	return t.Status != nil
}
