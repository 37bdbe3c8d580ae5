// Package table implements the ftab container codec: a Parser that exposes a
// validated, lazy view over an untrusted in-memory ftab file, and a Builder
// that serializes a set of segments (plus an optional signing ticket) back
// into the exact on-disk layout.
//
// The format is treated as hostile input. Segment counts, offsets, and lengths
// are attacker or corruption controlled integers; every range is checked
// against the real buffer bounds before a subslice is taken, and malformed
// input is reported through the error values in the errs package, never via a
// panic or an out-of-bounds read.
//
// Reading:
//
//	p, err := table.Parse(data)
//	if err != nil {
//	    return err
//	}
//	segments := p.Segments()
//	for {
//	    seg, err := segments.NextSegment()
//	    if err != nil {
//	        // one entry is out of bounds; later entries are still reachable
//	    }
//	    if seg == nil {
//	        break
//	    }
//	    // use seg.Tag, seg.Data, seg.Unknown
//	}
//
// Writing:
//
//	b := table.NewBuilder(p.Header())
//	b.AddSegment(section.NewTag("rkrn"), kernel, 0)
//	b.SetTicket(ticket)
//	_, err := b.WriteTo(f)
//
// The Parser borrows the caller's buffer for its whole lifetime and never
// mutates it; it is safe to share across goroutines as long as the buffer
// stays immutable. The Builder owns the bytes it accumulates and requires
// external synchronization if shared.
package table
