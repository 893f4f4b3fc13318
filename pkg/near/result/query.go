package result

import (
	"encoding/json"
	"fmt"
)

type (
	// AccessKeyView is a `view_access_key` query result.
	AccessKeyView struct {
		Nonce       uint64          `json:"nonce"`
		Permission  json.RawMessage `json:"permission"`
		BlockHeight uint64          `json:"block_height"`
		BlockHash   string          `json:"block_hash"`
		Error       string          `json:"error,omitempty"`
	}

	// CallResult is a `call_function` query result.
	CallResult struct {
		Result      ByteArray `json:"result"`
		Logs        []string  `json:"logs"`
		BlockHeight uint64    `json:"block_height"`
		BlockHash   string    `json:"block_hash"`
		Error       string    `json:"error,omitempty"`
	}
)

// ByteArray is a byte slice encoded in JSON as an array of numbers.
type ByteArray []byte

// MarshalJSON implements the json.Marshaler interface.
func (b ByteArray) MarshalJSON() ([]byte, error) {
	ints := make([]uint16, len(b))
	for i := range b {
		ints[i] = uint16(b[i])
	}
	return json.Marshal(ints)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	var ints []uint16
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	res := make([]byte, len(ints))
	for i, v := range ints {
		if v > 0xff {
			return fmt.Errorf("element %d (%d) is not a byte", i, v)
		}
		res[i] = byte(v)
	}
	*b = res
	return nil
}
