package section

// Offsets and record sizes in the ftab file.
const (
	HeaderSize       = 48 // fixed header size in bytes
	SegmentEntrySize = 16 // fixed segment list entry size in bytes

	MagicOffset        = 32         // byte offset of the magic value within the header
	MagicSize          = 8          // magic value size in bytes
	SegmentListOffset  = HeaderSize // byte offset where the segment list starts
	SegmentCountOffset = 40         // byte offset of the segment count within the header
)

// Magic is the fixed ASCII constant found at byte offset 32 of every ftab file.
const Magic = "rkosftab"
