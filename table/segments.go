package table

import (
	"github.com/restorefw/ftab/errs"
	"github.com/restorefw/ftab/section"
)

// Segment is a single materialized segment of a ftab file. Data borrows from
// the buffer the Parser was constructed over.
type Segment struct {
	// Tag is the segment's identifier from the segment list.
	Tag section.Tag
	// Data is the segment's contents.
	Data []byte
	// Unknown is the opaque segment list entry field, preserved verbatim.
	Unknown uint32
}

// SegmentReader is a single-pass cursor over the segment list of a parsed
// ftab file. Each NextSegment call decodes one entry and resolves it to a
// bounds-checked slice of the data region.
type SegmentReader struct {
	entries    []byte // remaining raw segment list entries
	data       []byte // segment data region plus trailing ticket bytes
	dataOffset int    // absolute byte offset of the data region start
}

// NextSegment decodes the next segment list entry and returns its segment
// view, or (nil, nil) once the list is exhausted.
//
// An entry whose range falls outside the data region yields a
// *errs.SegmentBoundsError carrying the entry's tag. The error does not
// poison the cursor: it advances past the failing entry, so the entries that
// follow remain retrievable and the caller decides whether one bad segment
// fails the whole scan.
func (r *SegmentReader) NextSegment() (*Segment, error) {
	if len(r.entries) == 0 {
		return nil, nil
	}

	// The list length was validated as a multiple of the entry size during
	// Parse, so this decode cannot fail.
	var entry section.SegmentEntry
	_ = entry.Parse(r.entries)
	r.entries = r.entries[section.SegmentEntrySize:]

	data, ok := cutRange(r.data, int(entry.Offset), int(entry.Length), r.dataOffset)
	if !ok {
		return nil, &errs.SegmentBoundsError{Tag: [4]byte(entry.Tag)}
	}

	return &Segment{Tag: entry.Tag, Data: data, Unknown: entry.Unknown}, nil
}

// Count returns the number of segment list entries not yet consumed.
func (r *SegmentReader) Count() int {
	return len(r.entries) / section.SegmentEntrySize
}
