package script

import (
	"encoding/binary"

	"github.com/omni-box/omnibox-go/pkg/btc/opcode"
	"github.com/omni-box/omnibox-go/pkg/io"
)

// Opcode emits a single opcode to the given buffer.
func Opcode(w *io.BinWriter, op opcode.Opcode) {
	w.WriteB(byte(op))
}

// Bytes emits a data push of b using the smallest push form: direct push for
// up to 75 bytes, then OP_PUSHDATA1/2/4.
func Bytes(w *io.BinWriter, b []byte) {
	var n = len(b)

	switch {
	case n == 0:
		Opcode(w, opcode.OP_0)
		return
	case n <= int(opcode.OP_DATA_75):
		w.WriteB(byte(n))
	case n < 0x100:
		Opcode(w, opcode.OP_PUSHDATA1)
		w.WriteB(byte(n))
	case n < 0x10000:
		Opcode(w, opcode.OP_PUSHDATA2)
		w.WriteU16LE(uint16(n))
	default:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(n))
		Opcode(w, opcode.OP_PUSHDATA4)
		w.WriteBytes(buf)
	}
	w.WriteBytes(b)
}

// Int emits a small integer (-1..16) with a dedicated opcode.
func Int(w *io.BinWriter, i int) {
	switch {
	case i == 0:
		Opcode(w, opcode.OP_0)
	case i == -1:
		Opcode(w, opcode.OP_1NEGATE)
	case i >= 1 && i <= 16:
		Opcode(w, opcode.OP_1+opcode.Opcode(i-1))
	default:
		w.Err = errSmallInt
	}
}
