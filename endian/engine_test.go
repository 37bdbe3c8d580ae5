package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.LittleEndian
	require.Equal(t, binary.LittleEndian, engine)

	// Test actual endian behavior
	var testValue uint32 = 0x01020304
	bytes := make([]byte, 4)
	engine.PutUint32(bytes, testValue)
	// Little endian should put LSB first
	require.Equal(t, byte(0x04), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[3], "Little endian should put MSB last")

	// Test reading back
	readValue := engine.Uint32(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.BigEndian
	require.Equal(t, binary.BigEndian, engine)

	// Test actual endian behavior
	var testValue uint32 = 0x01020304
	bytes := make([]byte, 4)
	engine.PutUint32(bytes, testValue)
	// Big endian should put MSB first
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x04), bytes[3], "Big endian should put LSB last")

	// Test reading back
	readValue := engine.Uint32(bytes)
	require.Equal(t, testValue, readValue)
}

func TestAppendUint32(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint32(nil, 0xAABBCCDD)
	require.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA}, buf)

	buf = engine.AppendUint32(buf, 0x11223344)
	require.Len(t, buf, 8)
	require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, buf[4:])
}
