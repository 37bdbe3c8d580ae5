// Package manifest implements the TOML manifest that describes the contents
// of a ftab file for the command-line tool.
//
// A manifest mirrors everything the codec needs to rebuild a file: the seven
// opaque header fields, an optional ticket path, and an ordered segment list
// of (path, tag, unk) entries. Paths are relative to the manifest's own
// directory unless absolute.
//
// Example:
//
//	unk_0 = 0
//	unk_1 = 0
//	unk_2 = 0
//	unk_3 = 0
//	unk_4 = 0
//	unk_5 = 0
//	unk_6 = 0
//	ticket = "ApImg4Ticket.der"
//
//	[[segments]]
//	path = "rkrn.bin"
//	tag = "rkrn"
//	unk = 0
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/restorefw/ftab/table"
)

// Segment describes one segment to be packed: the file holding its contents,
// its 4-byte tag, and the opaque entry field carried through verbatim.
type Segment struct {
	Path    string `toml:"path"`
	Tag     Tag    `toml:"tag"`
	Unknown uint32 `toml:"unk"`
}

// Manifest is the on-disk description of a ftab file.
type Manifest struct {
	Unknown0 uint32 `toml:"unk_0"`
	Unknown1 uint32 `toml:"unk_1"`
	Unknown2 uint32 `toml:"unk_2"`
	Unknown3 uint32 `toml:"unk_3"`
	Unknown4 uint32 `toml:"unk_4"`
	Unknown5 uint32 `toml:"unk_5"`
	Unknown6 uint32 `toml:"unk_6"`

	// Ticket is the path of the signing ticket file, empty when absent.
	Ticket string `toml:"ticket,omitempty"`

	Segments []Segment `toml:"segments"`
}

// FromParser seeds a Manifest with the opaque header fields of a parsed ftab
// file. The ticket path and segment list start empty; the caller fills them
// in as it extracts the file's contents.
func FromParser(p *table.Parser) *Manifest {
	hdr := p.Header()

	return &Manifest{
		Unknown0: hdr.Unknown0,
		Unknown1: hdr.Unknown1,
		Unknown2: hdr.Unknown2,
		Unknown3: hdr.Unknown3,
		Unknown4: hdr.Unknown4,
		Unknown5: hdr.Unknown5,
		Unknown6: hdr.Unknown6,
	}
}

// Decode parses a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	if _, err := toml.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest at path %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the manifest file at %s: %w", path, err)
	}

	return m, nil
}

// Encode writes the manifest to w as TOML.
func (m *Manifest) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(m)
}

// Bytes returns the manifest serialized as TOML.
func (m *Manifest) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
