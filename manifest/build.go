package manifest

import (
	"github.com/restorefw/ftab/internal/fsutil"
	"github.com/restorefw/ftab/section"
	"github.com/restorefw/ftab/table"
)

// Builder reads every segment and ticket file the manifest references,
// resolving relative paths against dir, and returns a table.Builder holding
// the accumulated contents, ready to be written out.
func (m *Manifest) Builder(dir string) (*table.Builder, error) {
	b := table.NewBuilder(section.Header{
		Unknown0: m.Unknown0,
		Unknown1: m.Unknown1,
		Unknown2: m.Unknown2,
		Unknown3: m.Unknown3,
		Unknown4: m.Unknown4,
		Unknown5: m.Unknown5,
		Unknown6: m.Unknown6,
	})

	for _, seg := range m.Segments {
		data, err := fsutil.ReadFile("segment", fsutil.Qualify(seg.Path, dir))
		if err != nil {
			return nil, err
		}
		b.AddSegment(seg.Tag.Section(), data, seg.Unknown)
	}

	if m.Ticket != "" {
		data, err := fsutil.ReadFile("ticket", fsutil.Qualify(m.Ticket, dir))
		if err != nil {
			return nil, err
		}
		b.SetTicket(data)
	}

	return b, nil
}
