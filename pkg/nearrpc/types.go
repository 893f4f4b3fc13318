/*
Package nearrpc contains a set of types used for JSON-RPC communication with
NEAR nodes. It defines basic request/response types, the structured error
NEAR servers return and method parameter types used by the client.
*/
package nearrpc

import (
	"encoding/json"
	"fmt"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"
)

// NEAR JSON-RPC method names.
const (
	MethodSendTx = "send_tx"
	MethodTx     = "tx"
	MethodQuery  = "query"
)

// TxExecutionStatus is the `wait_until` transaction finality level.
type TxExecutionStatus string

// Supported finality levels.
const (
	TxNone               TxExecutionStatus = "NONE"
	TxIncluded           TxExecutionStatus = "INCLUDED"
	TxExecutedOptimistic TxExecutionStatus = "EXECUTED_OPTIMISTIC"
	TxIncludedFinal      TxExecutionStatus = "INCLUDED_FINAL"
	TxExecuted           TxExecutionStatus = "EXECUTED"
	TxFinal              TxExecutionStatus = "FINAL"
)

// Validate checks that s is one of the levels nodes accept.
func (s TxExecutionStatus) Validate() error {
	switch s {
	case TxNone, TxIncluded, TxExecutedOptimistic, TxIncludedFinal, TxExecuted, TxFinal:
		return nil
	default:
		return fmt.Errorf("unknown wait_until level %q", string(s))
	}
}

// FinalityFinal is the query finality used for all view calls.
const FinalityFinal = "final"

type (
	// Request represents JSON-RPC request. NEAR methods take named parameters,
	// so Params is an object.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// Method is the method being called.
		Method string `json:"method"`
		// Params is a set of method-specific parameters passed to the call.
		Params any `json:"params"`
		// ID is an identifier associated with this request.
		ID uint64 `json:"id"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	Header struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}

	// HeaderAndError adds an Error (that can be empty) to the Header.
	HeaderAndError struct {
		Header
		Error *Error `json:"error,omitempty"`
	}

	// Response represents a standard raw JSON-RPC 2.0 response.
	Response struct {
		HeaderAndError
		Result json.RawMessage `json:"result,omitempty"`
	}

	// SendTxParams are `send_tx` parameters.
	SendTxParams struct {
		SignedTxBase64 string            `json:"signed_tx_base64"`
		WaitUntil      TxExecutionStatus `json:"wait_until,omitempty"`
	}

	// TxStatusParams are `tx` parameters.
	TxStatusParams struct {
		TxHash          string            `json:"tx_hash"`
		SenderAccountID string            `json:"sender_account_id"`
		WaitUntil       TxExecutionStatus `json:"wait_until,omitempty"`
	}

	// ViewAccessKeyParams are `query` parameters of `view_access_key` request.
	ViewAccessKeyParams struct {
		RequestType string `json:"request_type"`
		Finality    string `json:"finality"`
		AccountID   string `json:"account_id"`
		PublicKey   string `json:"public_key"`
	}

	// CallFunctionParams are `query` parameters of `call_function` request,
	// ArgsBase64 are base64-encoded method arguments.
	CallFunctionParams struct {
		RequestType string `json:"request_type"`
		Finality    string `json:"finality"`
		AccountID   string `json:"account_id"`
		MethodName  string `json:"method_name"`
		ArgsBase64  string `json:"args_base64"`
	}
)
