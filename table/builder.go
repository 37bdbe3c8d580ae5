package table

import (
	"io"

	"github.com/restorefw/ftab/section"
)

// segmentAlignment is the byte alignment of each segment's data relative to
// the start of the data region. Only the padding between segments is aligned;
// the ticket is appended unpadded, as in files found in the wild.
const segmentAlignment = 4

// Builder accumulates segments and an optional signing ticket and serializes
// them into the ftab on-disk layout.
//
// The Builder owns every byte it accumulates: segment and ticket contents are
// copied on add, so callers may reuse their buffers. Serialization is
// idempotent; WriteTo may be called any number of times against the same
// accumulated state and always produces identical bytes.
type Builder struct {
	header    section.Header
	entries   []section.SegmentEntry // offsets relative to the data region start
	data      []byte
	ticket    []byte
	hasTicket bool
}

// NewBuilder creates a Builder carrying the seven opaque header fields of
// hdr. The ticket offset, ticket length, and segment count fields of hdr are
// ignored; WriteTo recomputes them from the accumulated state. Pass a zero
// Header when building a file from scratch.
func NewBuilder(hdr section.Header) *Builder {
	return &Builder{header: hdr}
}

// AddSegment appends a segment with the given tag, contents, and opaque entry
// field. Zero padding is inserted first so the segment's data starts at a
// 4-byte aligned offset relative to the data region; the data bytes are
// copied into the Builder.
func (b *Builder) AddSegment(tag section.Tag, data []byte, unknown uint32) {
	padding := (segmentAlignment - len(b.data)%segmentAlignment) % segmentAlignment
	b.data = append(b.data, make([]byte, padding)...)

	b.entries = append(b.entries, section.SegmentEntry{
		Tag:     tag,
		Offset:  uint32(len(b.data)), //nolint: gosec
		Length:  uint32(len(data)),   //nolint: gosec
		Unknown: unknown,
	})
	b.data = append(b.data, data...)
}

// SetTicket sets the signing ticket appended after the segment data. The
// bytes are copied. A Builder without a ticket writes zero ticket offset and
// length; an empty but set ticket is still recorded as present.
func (b *Builder) SetTicket(data []byte) {
	b.ticket = append(b.ticket[:0], data...)
	b.hasTicket = true
}

// SegmentCount returns the number of segments added so far.
func (b *Builder) SegmentCount() int {
	return len(b.entries)
}

// WriteTo serializes the accumulated state to w in one sequential pass:
// header, segment list, segment data, then the ticket if present. It
// implements io.WriterTo. Any error from w aborts the write and is returned
// verbatim; no partial-output cleanup is attempted.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	dataStart := section.HeaderSize + len(b.entries)*section.SegmentEntrySize

	hdr := b.header
	hdr.SegmentCount = uint32(len(b.entries)) //nolint: gosec
	hdr.TicketOffset = 0
	hdr.TicketLength = 0
	if b.hasTicket {
		hdr.TicketOffset = uint32(dataStart + len(b.data)) //nolint: gosec
		hdr.TicketLength = uint32(len(b.ticket))           //nolint: gosec
	}

	list := make([]byte, len(b.entries)*section.SegmentEntrySize)
	pos := 0
	for i := range b.entries {
		// Copy so repeated WriteTo calls keep relative offsets intact.
		entry := b.entries[i]
		entry.Offset += uint32(dataStart) //nolint: gosec
		pos = entry.WriteToSlice(list, pos)
	}

	var written int64
	for _, chunk := range [][]byte{hdr.Bytes(), list, b.data, b.ticket} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
