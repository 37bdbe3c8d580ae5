package table

import (
	"math"

	"github.com/restorefw/ftab/errs"
	"github.com/restorefw/ftab/section"
)

// Parser is an immutable, validated view over a ftab file held in memory.
//
// Parser borrows the buffer passed to Parse for its whole lifetime and never
// mutates or copies it; the ticket and every segment returned by the cursor
// are subslices of that buffer.
type Parser struct {
	header  section.Header
	entries []byte // raw segment list, SegmentCount entries of 16 bytes each
	data    []byte // segment data region plus trailing ticket bytes
	ticket  []byte // nil when the header has no ticket reference
}

// Parse validates data as a ftab file and returns a Parser over it.
//
// Validation order matters: the fixed header size is checked first, then the
// magic value, then the segment list bounds, then the ticket bounds. The
// segment list entries themselves are validated lazily, one at a time, by the
// cursor returned from Segments.
//
// Returns:
//   - *Parser: Validated view over data
//   - error: errs.ErrTooShort, errs.ErrUnknownMagic,
//     errs.ErrSegmentsLengthOverflow, errs.ErrSegmentsListOutOfBounds, or
//     errs.ErrTicketOutOfBounds
func Parse(data []byte) (*Parser, error) {
	hdr, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	// The count is attacker controlled; reject products that overflow int
	// before computing the list length. On 64-bit platforms a uint32 count
	// cannot overflow, but 32-bit platforms need the guard.
	if uint64(hdr.SegmentCount) > math.MaxInt/section.SegmentEntrySize {
		return nil, errs.ErrSegmentsLengthOverflow
	}
	listLen := int(hdr.SegmentCount) * section.SegmentEntrySize

	tail := data[section.HeaderSize:]
	if listLen > len(tail) {
		return nil, errs.ErrSegmentsListOutOfBounds
	}

	entries := tail[:listLen]
	rest := tail[listLen:]

	p := &Parser{header: hdr, entries: entries, data: rest}

	if hdr.HasTicket() {
		ticket, ok := cutRange(rest, int(hdr.TicketOffset), int(hdr.TicketLength), section.HeaderSize+listLen)
		if !ok {
			return nil, errs.ErrTicketOutOfBounds
		}
		p.ticket = ticket
	}

	return p, nil
}

// Header returns a copy of the parsed file header, including the seven opaque
// fields that must be carried through to a Builder on round trips.
func (p *Parser) Header() section.Header {
	return p.header
}

// Ticket returns the signing ticket bytes, or nil when the header references
// no ticket. The returned slice borrows from the parsed buffer.
func (p *Parser) Ticket() []byte {
	return p.ticket
}

// Segments returns a fresh cursor over the segment list. The Parser is
// immutable, so a new cursor can be obtained at any time.
func (p *Parser) Segments() *SegmentReader {
	return &SegmentReader{
		entries:    p.entries,
		data:       p.data,
		dataOffset: section.HeaderSize + len(p.entries),
	}
}
