package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringer(t *testing.T) {
	tests := map[Opcode]string{
		OP_0:           "OP_0",
		OP_DATA_20:     "OP_DATA_20",
		OP_DATA_65:     "OP_DATA_65",
		OP_PUSHDATA2:   "OP_PUSHDATA2",
		OP_1:           "OP_1",
		OP_16:          "OP_16",
		OP_DUP:         "OP_DUP",
		OP_HASH160:     "OP_HASH160",
		OP_EQUALVERIFY: "OP_EQUALVERIFY",
		OP_CHECKSIG:    "OP_CHECKSIG",
		OP_1NEGATE:     "OP_1NEGATE",
		0x6a:           "OP_UNKNOWN_106",
		0xff:           "OP_UNKNOWN_255",
	}
	for o, s := range tests {
		assert.Equal(t, s, o.String())
	}
}

func TestIsDirectPush(t *testing.T) {
	assert.False(t, OP_0.IsDirectPush())
	assert.True(t, OP_DATA_20.IsDirectPush())
	assert.True(t, OP_DATA_75.IsDirectPush())
	assert.False(t, OP_PUSHDATA1.IsDirectPush())
}
