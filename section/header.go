package section

import (
	"bytes"

	"github.com/restorefw/ftab/endian"
	"github.com/restorefw/ftab/errs"
)

// Header represents the fixed-size record at the start of every ftab file.
//
// The seven Unknown fields are opaque: their semantics are undocumented
// upstream and they must survive reader-to-writer round trips verbatim.
type Header struct {
	// Unknown0 is an opaque header field with no known purpose.
	Unknown0 uint32 // byte offset 0-3
	// Unknown1 is an opaque header field with no known purpose.
	Unknown1 uint32 // byte offset 4-7
	// Unknown2 is an opaque header field with no known purpose.
	Unknown2 uint32 // byte offset 8-11
	// Unknown3 is an opaque header field with no known purpose.
	Unknown3 uint32 // byte offset 12-15
	// TicketOffset is the absolute byte offset of the ticket, or 0 when the
	// ticket is absent.
	TicketOffset uint32 // byte offset 16-19
	// TicketLength is the byte length of the ticket, or 0 when the ticket is
	// absent.
	TicketLength uint32 // byte offset 20-23
	// Unknown4 is an opaque header field with no known purpose.
	Unknown4 uint32 // byte offset 24-27
	// Unknown5 is an opaque header field with no known purpose.
	Unknown5 uint32 // byte offset 28-31
	// SegmentCount is the number of entries in the segment list.
	SegmentCount uint32 // byte offset 40-43
	// Unknown6 is an opaque header field with no known purpose.
	Unknown6 uint32 // byte offset 44-47
}

// HasTicket reports whether the header references a ticket. A ticket is
// absent only when both the offset and the length are zero; any other
// combination is treated as present and must be bounds-checked.
func (h Header) HasTicket() bool {
	return h.TicketOffset != 0 || h.TicketLength != 0
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 48 bytes)
//
// Returns:
//   - error: errs.ErrTooShort if data is shorter than 48 bytes, or
//     errs.ErrUnknownMagic if the magic value does not match
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrTooShort
	}

	engine := endian.GetLittleEndianEngine()

	h.Unknown0 = engine.Uint32(data[0:4])
	h.Unknown1 = engine.Uint32(data[4:8])
	h.Unknown2 = engine.Uint32(data[8:12])
	h.Unknown3 = engine.Uint32(data[12:16])
	h.TicketOffset = engine.Uint32(data[16:20])
	h.TicketLength = engine.Uint32(data[20:24])
	h.Unknown4 = engine.Uint32(data[24:28])
	h.Unknown5 = engine.Uint32(data[28:32])

	if !bytes.Equal(data[MagicOffset:MagicOffset+MagicSize], []byte(Magic)) {
		return errs.ErrUnknownMagic
	}

	h.SegmentCount = engine.Uint32(data[40:44])
	h.Unknown6 = engine.Uint32(data[44:48])

	return nil
}

// Bytes serializes the Header into a 48-byte slice, including the magic value.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b, 0)

	return b
}

// WriteToSlice writes the header to a pre-allocated slice and returns the next
// write position.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 48 bytes at offset)
//   - offset: Starting position in the data slice
//
// Returns:
//   - int: Next write position (offset + 48)
func (h *Header) WriteToSlice(data []byte, offset int) int {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(data[offset:offset+4], h.Unknown0)
	engine.PutUint32(data[offset+4:offset+8], h.Unknown1)
	engine.PutUint32(data[offset+8:offset+12], h.Unknown2)
	engine.PutUint32(data[offset+12:offset+16], h.Unknown3)
	engine.PutUint32(data[offset+16:offset+20], h.TicketOffset)
	engine.PutUint32(data[offset+20:offset+24], h.TicketLength)
	engine.PutUint32(data[offset+24:offset+28], h.Unknown4)
	engine.PutUint32(data[offset+28:offset+32], h.Unknown5)
	copy(data[offset+MagicOffset:offset+MagicOffset+MagicSize], Magic)
	engine.PutUint32(data[offset+40:offset+44], h.SegmentCount)
	engine.PutUint32(data[offset+44:offset+48], h.Unknown6)

	return offset + HeaderSize
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 48 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrTooShort or errs.ErrUnknownMagic
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
