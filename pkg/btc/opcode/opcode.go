package opcode

import "strconv"

// Opcode represents a single operation code of the Bitcoin script language.
type Opcode byte

// Subset of Bitcoin script opcodes needed to build standard scripts.
const (
	OP_0         Opcode = 0x00
	OP_DATA_20   Opcode = 0x14
	OP_DATA_65   Opcode = 0x41
	OP_DATA_75   Opcode = 0x4b
	OP_PUSHDATA1 Opcode = 0x4c
	OP_PUSHDATA2 Opcode = 0x4d
	OP_PUSHDATA4 Opcode = 0x4e
	OP_1NEGATE   Opcode = 0x4f
	OP_1         Opcode = 0x51
	OP_16        Opcode = 0x60

	OP_DUP         Opcode = 0x76
	OP_EQUALVERIFY Opcode = 0x88

	OP_HASH160  Opcode = 0xa9
	OP_CHECKSIG Opcode = 0xac
)

var names = map[Opcode]string{
	OP_0:           "OP_0",
	OP_PUSHDATA1:   "OP_PUSHDATA1",
	OP_PUSHDATA2:   "OP_PUSHDATA2",
	OP_PUSHDATA4:   "OP_PUSHDATA4",
	OP_1NEGATE:     "OP_1NEGATE",
	OP_DUP:         "OP_DUP",
	OP_EQUALVERIFY: "OP_EQUALVERIFY",
	OP_HASH160:     "OP_HASH160",
	OP_CHECKSIG:    "OP_CHECKSIG",
}

// IsDirectPush returns true for opcodes pushing the next op bytes.
func (op Opcode) IsDirectPush() bool {
	return op > OP_0 && op <= OP_DATA_75
}

// String implements the stringer interface.
func (op Opcode) String() string {
	if s, ok := names[op]; ok {
		return s
	}
	switch {
	case op.IsDirectPush():
		return "OP_DATA_" + strconv.Itoa(int(op))
	case op >= OP_1 && op <= OP_16:
		return "OP_" + strconv.Itoa(int(op-OP_1)+1)
	default:
		return "OP_UNKNOWN_" + strconv.Itoa(int(op))
	}
}
