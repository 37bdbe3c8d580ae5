// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces from Go's
// standard encoding/binary package into a unified EndianEngine interface so a
// codec can decode and append integers through a single value.
//
// The ftab wire format is strictly little-endian; callers should normally use
// GetLittleEndianEngine(). The big-endian engine exists for code that needs to
// render tags or other fields in their natural byte order.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
//
// All on-disk integers in the ftab format are little-endian, so this is the
// engine used throughout the codec.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
