package nearrpc

import (
	"encoding/json"
	"fmt"
)

// Error names and causes returned by NEAR nodes.
const (
	HandlerError = "HANDLER_ERROR"

	// TimeoutCause is the cause of HANDLER_ERROR returned when transaction
	// wasn't finalized before the server gave up waiting.
	TimeoutCause = "TIMEOUT_ERROR"
	// UnknownTransactionCause is returned for transactions not yet known to
	// the node.
	UnknownTransactionCause = "UNKNOWN_TRANSACTION"
	// InvalidTransactionCause is returned for transactions rejected by the node.
	InvalidTransactionCause = "INVALID_TRANSACTION"
)

// ServerErrorCode is the code NEAR uses for all handler errors.
const ServerErrorCode = -32000

type (
	// Error is a NEAR JSON-RPC error. Besides standard JSON-RPC fields it has a
	// name and structured cause.
	Error struct {
		Name    string          `json:"name,omitempty"`
		Cause   *Cause          `json:"cause,omitempty"`
		Code    int64           `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
	}

	// Cause is a detailed error reason.
	Cause struct {
		Name string          `json:"name"`
		Info json.RawMessage `json:"info,omitempty"`
	}
)

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(name, cause string, code int64, message string) *Error {
	e := &Error{
		Name:    name,
		Code:    code,
		Message: message,
	}
	if cause != "" {
		e.Cause = &Cause{Name: cause}
	}
	return e
}

// NewTimeoutError creates a new handler error with TIMEOUT_ERROR cause.
func NewTimeoutError() *Error {
	return NewError(HandlerError, TimeoutCause, ServerErrorCode, "Server error")
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("%s (%d)", e.Message, e.Code)
	if e.Name != "" {
		s = e.Name + ": " + s
	}
	if e.Cause != nil {
		s += " - " + e.Cause.Name
	}
	if len(e.Data) != 0 {
		s += ": " + string(e.Data)
	}
	return s
}

// CauseName returns the cause name or an empty string.
func (e *Error) CauseName() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Name
}

// IsTimeout returns true for handler errors caused by transaction wait
// timeout.
func (e *Error) IsTimeout() bool {
	return e.CauseName() == TimeoutCause
}
