package transaction

import (
	"github.com/holiman/uint256"
	"github.com/omni-box/omnibox-go/pkg/io"
)

// ActionType is the Borsh enum tag of an action.
type ActionType byte

// Action types, the values follow NEAR actions enum ordering.
const (
	CreateAccountT  ActionType = 0
	DeployContractT ActionType = 1
	FunctionCallT   ActionType = 2
	TransferT       ActionType = 3
)

// String implements the stringer interface.
func (t ActionType) String() string {
	switch t {
	case CreateAccountT:
		return "CreateAccount"
	case DeployContractT:
		return "DeployContract"
	case FunctionCallT:
		return "FunctionCall"
	case TransferT:
		return "Transfer"
	default:
		return "Unknown"
	}
}

// Action is a single transaction action.
type Action interface {
	io.Serializable
	Type() ActionType
}

type (
	// FunctionCall calls a contract method with JSON-encoded arguments,
	// attaching Deposit yoctoNEAR.
	FunctionCall struct {
		MethodName string
		Args       []byte
		Gas        uint64
		Deposit    *uint256.Int
	}

	// DeployContract deploys WASM code to the receiver account.
	DeployContract struct {
		Code []byte
	}

	// Transfer sends Deposit yoctoNEAR to the receiver.
	Transfer struct {
		Deposit *uint256.Int
	}
)

func writeAmount(w *io.BinWriter, amount *uint256.Int) {
	if amount == nil {
		amount = new(uint256.Int)
	}
	w.WriteU128LE(amount)
}

// Type implements the Action interface.
func (*FunctionCall) Type() ActionType { return FunctionCallT }

// EncodeBinary implements the io.Serializable interface.
func (f *FunctionCall) EncodeBinary(w *io.BinWriter) {
	w.WriteString(f.MethodName)
	w.WriteVarBytes(f.Args)
	w.WriteU64LE(f.Gas)
	writeAmount(w, f.Deposit)
}

// Type implements the Action interface.
func (*DeployContract) Type() ActionType { return DeployContractT }

// EncodeBinary implements the io.Serializable interface.
func (d *DeployContract) EncodeBinary(w *io.BinWriter) {
	w.WriteVarBytes(d.Code)
}

// Type implements the Action interface.
func (*Transfer) Type() ActionType { return TransferT }

// EncodeBinary implements the io.Serializable interface.
func (t *Transfer) EncodeBinary(w *io.BinWriter) {
	writeAmount(w, t.Deposit)
}

// taggedAction serializes an action as a Borsh enum variant.
type taggedAction struct {
	Action
}

func (a taggedAction) EncodeBinary(w *io.BinWriter) {
	w.WriteB(byte(a.Type()))
	a.Action.EncodeBinary(w)
}
