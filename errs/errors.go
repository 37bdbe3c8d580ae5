// Package errs defines the error values returned by the ftab codec.
//
// All parse errors are sentinel values so callers can match them with
// errors.Is. A per-segment bounds failure is reported with the typed
// SegmentBoundsError, which carries the offending tag for diagnostics and
// matches the ErrSegmentOutOfBounds sentinel.
package errs

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrTooShort is returned when a buffer is shorter than the fixed ftab header size.
	ErrTooShort = errors.New("file is too short to be a ftab file")

	// ErrUnknownMagic is returned when a buffer does not contain the ftab magic
	// value at the expected offset.
	ErrUnknownMagic = errors.New("file is not a ftab file (invalid magic value)")

	// ErrSegmentsLengthOverflow is returned when the product of the segment count
	// from the header and the size of a segment list entry overflows int.
	ErrSegmentsLengthOverflow = errors.New("segments list byte length is too large")

	// ErrSegmentsListOutOfBounds is returned when the end of the segment list
	// exceeds the end of the buffer.
	ErrSegmentsListOutOfBounds = errors.New("segments list is larger than the space available in the file")

	// ErrTicketOutOfBounds is returned when the range of a ticket exceeds the end
	// of the buffer or overlaps the header or the segment list.
	ErrTicketOutOfBounds = errors.New("ticket range in file is out of bounds")

	// ErrInvalidSegmentEntrySize is returned when a segment list entry is parsed
	// from a slice shorter than the fixed entry size.
	ErrInvalidSegmentEntrySize = errors.New("segment list entry is too short")

	// ErrSegmentOutOfBounds is the sentinel matched by SegmentBoundsError.
	ErrSegmentOutOfBounds = errors.New("segment is out of bounds")
)

// SegmentBoundsError reports a segment list entry whose range exceeds the end
// of the buffer or overlaps the header or the segment list. The error is local
// to one entry; the segment cursor can still produce the entries that follow.
type SegmentBoundsError struct {
	// Tag is the tag specified in the offending segment list entry.
	Tag [4]byte
}

func (e *SegmentBoundsError) Error() string {
	return fmt.Sprintf("segment with tag %s is out of bounds", escapeTag(e.Tag))
}

// Is reports whether target is ErrSegmentOutOfBounds, so that
// errors.Is(err, ErrSegmentOutOfBounds) matches any SegmentBoundsError.
func (e *SegmentBoundsError) Is(target error) bool {
	return target == ErrSegmentOutOfBounds
}

// escapeTag renders a tag with non-printable bytes in \x hex form, mirroring
// how raw byte strings are usually shown in diagnostics.
func escapeTag(tag [4]byte) string {
	buf := make([]byte, 0, 16)
	for _, b := range tag {
		if b >= 0x20 && b <= 0x7e && b != '\\' {
			buf = append(buf, b)
			continue
		}
		buf = append(buf, '\\', 'x')
		buf = strconv.AppendUint(buf, uint64(b>>4), 16)
		buf = strconv.AppendUint(buf, uint64(b&0xf), 16)
	}

	return string(buf)
}
