package io

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/holiman/uint256"
)

// ErrU128Overflow is returned when a value doesn't fit into 128 bits.
var ErrU128Overflow = errors.New("value doesn't fit into u128")

// ErrTooLong is returned for slices that can't be length-prefixed with u32.
var ErrTooLong = errors.New("length doesn't fit into u32")

// BinWriter is a convenient wrapper around an io.Writer and err object.
// Used to simplify error handling when writing into an io.Writer
// from a struct with many fields. All multi-byte integers are written in
// little-endian format and variable-length data is prefixed with its u32
// length (Borsh layout).
type BinWriter struct {
	w   io.Writer
	Err error
	uv  [16]byte
}

// NewBinWriterFromIO makes a BinWriter from io.Writer.
func NewBinWriterFromIO(iow io.Writer) *BinWriter {
	return &BinWriter{w: iow}
}

// WriteU128LE writes an unsigned 128-bit value in little-endian format.
func (w *BinWriter) WriteU128LE(u *uint256.Int) {
	if w.Err != nil {
		return
	}
	if u.BitLen() > 128 {
		w.Err = ErrU128Overflow
		return
	}
	binary.LittleEndian.PutUint64(w.uv[:8], u[0])
	binary.LittleEndian.PutUint64(w.uv[8:16], u[1])
	w.WriteBytes(w.uv[:16])
}

// WriteU64LE writes a uint64 value into the underlying io.Writer in
// little-endian format.
func (w *BinWriter) WriteU64LE(u64 uint64) {
	binary.LittleEndian.PutUint64(w.uv[:8], u64)
	w.WriteBytes(w.uv[:8])
}

// WriteU32LE writes a uint32 value into the underlying io.Writer in
// little-endian format.
func (w *BinWriter) WriteU32LE(u32 uint32) {
	binary.LittleEndian.PutUint32(w.uv[:4], u32)
	w.WriteBytes(w.uv[:4])
}

// WriteU16LE writes a uint16 value into the underlying io.Writer in
// little-endian format.
func (w *BinWriter) WriteU16LE(u16 uint16) {
	binary.LittleEndian.PutUint16(w.uv[:2], u16)
	w.WriteBytes(w.uv[:2])
}

// WriteB writes a byte into the underlying io.Writer.
func (w *BinWriter) WriteB(u8 byte) {
	w.uv[0] = u8
	w.WriteBytes(w.uv[:1])
}

// WriteBool writes a boolean value into the underlying io.Writer encoded as
// a byte with values of 0 or 1.
func (w *BinWriter) WriteBool(b bool) {
	var i byte
	if b {
		i = 1
	}
	w.WriteB(i)
}

// WriteArray writes a slice arr into w prefixed with its u32 length.
func WriteArray[Slice ~[]E, E Serializable](w *BinWriter, arr Slice) {
	w.writeLen(len(arr))
	for i := range arr {
		arr[i].EncodeBinary(w)
	}
}

func (w *BinWriter) writeLen(n int) {
	if w.Err != nil {
		return
	}
	if uint64(n) > math.MaxUint32 {
		w.Err = ErrTooLong
		return
	}
	w.WriteU32LE(uint32(n))
}

// WriteBytes writes a variable byte into the underlying io.Writer without prefix.
func (w *BinWriter) WriteBytes(b []byte) {
	if w.Err != nil {
		return
	}
	_, w.Err = w.w.Write(b)
}

// WriteVarBytes writes a variable length byte array into the underlying
// io.Writer prefixed with its u32 length.
func (w *BinWriter) WriteVarBytes(b []byte) {
	w.writeLen(len(b))
	w.WriteBytes(b)
}

// WriteString writes a variable length string into the underlying io.Writer.
func (w *BinWriter) WriteString(s string) {
	w.writeLen(len(s))
	if w.Err != nil {
		return
	}
	_, w.Err = io.WriteString(w.w, s)
}
