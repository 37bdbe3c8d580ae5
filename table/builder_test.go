package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/restorefw/ftab/endian"
	"github.com/restorefw/ftab/section"
	"github.com/stretchr/testify/require"
)

// Two segments with one padding byte between them, the smallest layout that
// exercises alignment.
func TestBuilder_TwoSegmentLayout(t *testing.T) {
	b := NewBuilder(section.Header{})
	b.AddSegment(section.NewTag("AAAA"), []byte{0x01, 0x02, 0x03}, 0)
	b.AddSegment(section.NewTag("BBBB"), []byte{0xff}, 0)

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	data := buf.Bytes()
	dataStart := section.HeaderSize + 2*section.SegmentEntrySize
	// 3 bytes + 1 padding byte + 1 byte of data.
	require.Len(t, data, dataStart+5)

	p, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, uint32(2), p.Header().SegmentCount)

	reader := p.Segments()

	first, err := reader.NextSegment()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, first.Data)

	second, err := reader.NextSegment()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, second.Data)

	// The first segment starts right after the header and list; the second
	// starts after one zero padding byte.
	engine := endian.GetLittleEndianEngine()
	firstOff := engine.Uint32(data[section.HeaderSize+4:])
	secondOff := engine.Uint32(data[section.HeaderSize+section.SegmentEntrySize+4:])
	require.Equal(t, uint32(dataStart), firstOff)
	require.Equal(t, uint32(dataStart+4), secondOff)
	require.Equal(t, byte(0), data[dataStart+3], "padding byte must be zero")
}

func TestBuilder_RoundTrip(t *testing.T) {
	hdr := section.Header{
		Unknown0: 0xa0, Unknown1: 0xa1, Unknown2: 0xa2, Unknown3: 0xa3,
		Unknown4: 0xa4, Unknown5: 0xa5, Unknown6: 0xa6,
	}
	segments := []Segment{
		{Tag: section.NewTag("rkrn"), Data: []byte("kernel image bytes"), Unknown: 1},
		{Tag: section.Tag{0xde, 0xad, 0xbe, 0xef}, Data: []byte{0}, Unknown: 2},
		{Tag: section.NewTag("dtre"), Data: bytes.Repeat([]byte{0x5a}, 1023), Unknown: 3},
		{Tag: section.NewTag("zero"), Data: []byte{}, Unknown: 4},
	}
	ticket := []byte("signed ticket blob")

	b := NewBuilder(hdr)
	for _, seg := range segments {
		b.AddSegment(seg.Tag, seg.Data, seg.Unknown)
	}
	b.SetTicket(ticket)

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	p, err := Parse(buf.Bytes())
	require.NoError(t, err)

	require.Equal(t, ticket, p.Ticket())

	got := p.Header()
	require.Equal(t, hdr.Unknown0, got.Unknown0)
	require.Equal(t, hdr.Unknown1, got.Unknown1)
	require.Equal(t, hdr.Unknown2, got.Unknown2)
	require.Equal(t, hdr.Unknown3, got.Unknown3)
	require.Equal(t, hdr.Unknown4, got.Unknown4)
	require.Equal(t, hdr.Unknown5, got.Unknown5)
	require.Equal(t, hdr.Unknown6, got.Unknown6)

	reader := p.Segments()
	require.Equal(t, len(segments), reader.Count())
	for i, want := range segments {
		seg, err := reader.NextSegment()
		require.NoError(t, err)
		require.NotNil(t, seg, "segment %d", i)
		require.Equal(t, want.Tag, seg.Tag, "segment %d", i)
		require.Equal(t, want.Data, seg.Data, "segment %d", i)
		require.Equal(t, want.Unknown, seg.Unknown, "segment %d", i)
	}

	end, err := reader.NextSegment()
	require.NoError(t, err)
	require.Nil(t, end)
}

func TestBuilder_PaddingInvariant(t *testing.T) {
	// Every non-last segment must start 4-byte aligned relative to the data
	// region, whatever the segment sizes are.
	sizes := []int{3, 1, 7, 4, 13, 2, 1, 1, 8, 5}

	b := NewBuilder(section.Header{})
	for i, size := range sizes {
		b.AddSegment(section.Tag{byte(i), 'x', 'y', 'z'}, bytes.Repeat([]byte{byte(i + 1)}, size), 0)
	}

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)
	data := buf.Bytes()

	engine := endian.GetLittleEndianEngine()
	dataStart := section.HeaderSize + len(sizes)*section.SegmentEntrySize
	for i := 0; i < len(sizes)-1; i++ {
		off := engine.Uint32(data[section.HeaderSize+i*section.SegmentEntrySize+4:])
		require.Zero(t, (int(off)-dataStart)%4, "segment %d offset %d not aligned", i, off)
	}
}

func TestBuilder_NoTicket(t *testing.T) {
	b := NewBuilder(section.Header{TicketOffset: 0x1234, TicketLength: 0x99})
	b.AddSegment(section.NewTag("AAAA"), []byte{1}, 0)

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	// Stale ticket fields from the source header must not leak through.
	hdr, err := section.ParseHeader(buf.Bytes())
	require.NoError(t, err)
	require.Zero(t, hdr.TicketOffset)
	require.Zero(t, hdr.TicketLength)
	require.False(t, hdr.HasTicket())
}

func TestBuilder_TicketUnpadded(t *testing.T) {
	// A 3-byte segment leaves the data region unaligned; the ticket must
	// follow immediately with no padding.
	ticket := []byte{0xaa, 0xbb}

	b := NewBuilder(section.Header{})
	b.AddSegment(section.NewTag("AAAA"), []byte{1, 2, 3}, 0)
	b.SetTicket(ticket)

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)
	data := buf.Bytes()

	hdr, err := section.ParseHeader(data)
	require.NoError(t, err)

	dataStart := section.HeaderSize + section.SegmentEntrySize
	require.Equal(t, uint32(dataStart+3), hdr.TicketOffset)
	require.Equal(t, uint32(len(ticket)), hdr.TicketLength)
	require.Equal(t, ticket, data[len(data)-len(ticket):])
}

func TestBuilder_WriteToIdempotent(t *testing.T) {
	b := NewBuilder(section.Header{Unknown0: 42})
	b.AddSegment(section.NewTag("AAAA"), []byte{1, 2, 3}, 7)
	b.AddSegment(section.NewTag("BBBB"), []byte{4}, 8)
	b.SetTicket([]byte{9, 9, 9})

	var first, second bytes.Buffer
	n1, err := b.WriteTo(&first)
	require.NoError(t, err)
	n2, err := b.WriteTo(&second)
	require.NoError(t, err)

	require.Equal(t, n1, n2)
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestBuilder_OwnsInputBytes(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	ticket := []byte{5, 6}

	b := NewBuilder(section.Header{})
	b.AddSegment(section.NewTag("AAAA"), payload, 0)
	b.SetTicket(ticket)

	// Caller reuse of the input buffers must not affect the output.
	for i := range payload {
		payload[i] = 0xee
	}
	ticket[0] = 0xee

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	p, err := Parse(buf.Bytes())
	require.NoError(t, err)
	seg, err := p.Segments().NextSegment()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, seg.Data)
	require.Equal(t, []byte{5, 6}, p.Ticket())
}

// failingWriter fails after accepting limit bytes.
type failingWriter struct {
	limit   int
	written int
}

var errSinkClosed = errors.New("sink closed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		n := w.limit - w.written
		w.written = w.limit

		return n, errSinkClosed
	}
	w.written += len(p)

	return len(p), nil
}

func TestBuilder_WriteToPropagatesSinkErrors(t *testing.T) {
	b := NewBuilder(section.Header{})
	b.AddSegment(section.NewTag("AAAA"), bytes.Repeat([]byte{1}, 64), 0)

	for _, limit := range []int{0, 10, section.HeaderSize, section.HeaderSize + 8} {
		w := &failingWriter{limit: limit}
		n, err := b.WriteTo(w)
		require.ErrorIs(t, err, errSinkClosed, "limit %d", limit)
		require.LessOrEqual(t, n, int64(limit))
	}
}

func TestBuilder_EmptyTicket(t *testing.T) {
	b := NewBuilder(section.Header{})
	b.AddSegment(section.NewTag("AAAA"), []byte{1, 2, 3, 4}, 0)
	b.SetTicket([]byte{})

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	hdr, err := section.ParseHeader(buf.Bytes())
	require.NoError(t, err)
	// Offset is nonzero so the ticket reads back as present but empty.
	require.True(t, hdr.HasTicket())
	require.Zero(t, hdr.TicketLength)

	p, err := Parse(buf.Bytes())
	require.NoError(t, err)
	require.NotNil(t, p.Ticket())
	require.Empty(t, p.Ticket())
}
