package section

import (
	"github.com/restorefw/ftab/endian"
	"github.com/restorefw/ftab/errs"
)

// SegmentEntry records information about a single segment in the segment list.
// It is a fixed size of 16 bytes.
//
// Offset is absolute from the start of the file; for a well-formed file it is
// always past the end of the header and the segment list. Length is the byte
// length of the segment data. The Unknown field is opaque and preserved
// verbatim; software interpreting the format appears to ignore it.
type SegmentEntry struct {
	// Tag is the 4-byte segment identifier.
	Tag Tag // byte offset 0-3
	// Offset is the absolute byte offset of the segment data.
	Offset uint32 // byte offset 4-7
	// Length is the byte length of the segment data.
	Length uint32 // byte offset 8-11
	// Unknown is an opaque entry field with no known purpose.
	Unknown uint32 // byte offset 12-15
}

// Parse parses the segment entry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be at least 16 bytes)
//
// Returns:
//   - error: errs.ErrInvalidSegmentEntrySize if data is shorter than 16 bytes
func (e *SegmentEntry) Parse(data []byte) error {
	if len(data) < SegmentEntrySize {
		return errs.ErrInvalidSegmentEntrySize
	}

	engine := endian.GetLittleEndianEngine()

	copy(e.Tag[:], data[0:4])
	e.Offset = engine.Uint32(data[4:8])
	e.Length = engine.Uint32(data[8:12])
	e.Unknown = engine.Uint32(data[12:16])

	return nil
}

// Bytes returns the segment entry as a 16-byte slice.
func (e *SegmentEntry) Bytes() []byte {
	b := make([]byte, SegmentEntrySize)
	e.WriteToSlice(b, 0)

	return b
}

// WriteToSlice writes the entry to a pre-allocated slice and returns the next
// write position. This is the most efficient method when writing the segment
// list sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in the data slice
//
// Returns:
//   - int: Next write position (offset + 16)
func (e *SegmentEntry) WriteToSlice(data []byte, offset int) int {
	engine := endian.GetLittleEndianEngine()

	copy(data[offset:offset+4], e.Tag[:])
	engine.PutUint32(data[offset+4:offset+8], e.Offset)
	engine.PutUint32(data[offset+8:offset+12], e.Length)
	engine.PutUint32(data[offset+12:offset+16], e.Unknown)

	return offset + SegmentEntrySize
}

// ParseSegmentEntry parses a SegmentEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be at least 16 bytes)
//
// Returns:
//   - SegmentEntry: Parsed entry
//   - error: errs.ErrInvalidSegmentEntrySize if data is too short
func ParseSegmentEntry(data []byte) (SegmentEntry, error) {
	e := SegmentEntry{}
	if err := e.Parse(data); err != nil {
		return SegmentEntry{}, err
	}

	return e, nil
}
