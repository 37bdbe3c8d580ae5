// Package ftab reads and writes ftab ("rkosftab") firmware table files: a
// flat binary container bundling a 48-byte header, a list of tagged byte
// segments, and an optional trailing signing ticket.
//
// The codec treats input as untrusted. Offsets, lengths, and counts are
// validated against the real buffer bounds before any subslice is taken, so
// malformed or hostile files produce descriptive errors instead of panics or
// out-of-bounds reads.
//
// # Basic Usage
//
// Parsing a file and walking its segments:
//
//	import "github.com/restorefw/ftab"
//
//	p, err := ftab.Parse(data)
//	if err != nil {
//	    return err
//	}
//	segments := p.Segments()
//	for {
//	    seg, err := segments.NextSegment()
//	    if err != nil {
//	        return err // one entry out of bounds; the cursor can continue
//	    }
//	    if seg == nil {
//	        break
//	    }
//	    fmt.Printf("%s: %d bytes\n", seg.Tag, len(seg.Data))
//	}
//
// Building a file:
//
//	b := ftab.NewBuilder(p.Header()) // carry the opaque header fields over
//	b.AddSegment(ftab.NewTag("rkrn"), kernel, 0)
//	b.SetTicket(ticket)
//	_, err := b.WriteTo(f)
//
// # Package Structure
//
// This package provides thin wrappers around the table package, which holds
// the codec. The section package defines the fixed-size wire records and
// layout constants, the manifest package the TOML manifest used by the
// command-line tool, and errs the error values.
package ftab

import (
	"github.com/restorefw/ftab/section"
	"github.com/restorefw/ftab/table"
)

// Parse validates data as a ftab file and returns a parsed view over it.
// See table.Parse for the validation rules and error values.
func Parse(data []byte) (*table.Parser, error) {
	return table.Parse(data)
}

// NewBuilder creates a table Builder carrying the seven opaque header fields
// of hdr. Pass a zero section.Header when building a file from scratch.
func NewBuilder(hdr section.Header) *table.Builder {
	return table.NewBuilder(hdr)
}

// NewTag builds a segment Tag from up to 4 bytes of s, zero-padding on the
// right.
func NewTag(s string) section.Tag {
	return section.NewTag(s)
}
