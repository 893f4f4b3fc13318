package io

// Serializable defines the binary encoding interface. Errors are reported
// through BinWriter.Err.
type Serializable interface {
	EncodeBinary(*BinWriter)
}
