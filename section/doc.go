// Package section defines the low-level binary structures and constants of the
// ftab container format.
//
// This package provides the fixed-size records that define the physical layout
// of a ftab file. It handles binary serialization and deserialization of the
// file header and segment list entries, ensuring a consistent byte-level
// representation across platforms. All multi-byte integers are unsigned 32-bit
// and little-endian; offsets are absolute from the start of the file.
//
// # File Structure
//
// A ftab file consists of a fixed header, a segment list, the segment data
// region, and an optional trailing ticket:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (48 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Segment list (N × 16 bytes, fixed per entry)            │
//	│  - One entry per segment: tag, offset, length, unknown  │
//	├─────────────────────────────────────────────────────────┤
//	│ Segment data region (variable)                          │
//	│  - Segment payloads, 4-byte aligned between segments    │
//	├─────────────────────────────────────────────────────────┤
//	│ Ticket (variable, optional, unpadded)                   │
//	│  - Signing ticket referenced only from the header       │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
// Header (48 bytes):
//
//	Bytes  | Field        | Type    | Description
//	-------|--------------|---------|----------------------------------
//	0-3    | Unknown0     | uint32  | Opaque, preserved verbatim
//	4-7    | Unknown1     | uint32  | Opaque, preserved verbatim
//	8-11   | Unknown2     | uint32  | Opaque, preserved verbatim
//	12-15  | Unknown3     | uint32  | Opaque, preserved verbatim
//	16-19  | TicketOffset | uint32  | Absolute ticket offset, 0 if absent
//	20-23  | TicketLength | uint32  | Ticket byte length, 0 if absent
//	24-27  | Unknown4     | uint32  | Opaque, preserved verbatim
//	28-31  | Unknown5     | uint32  | Opaque, preserved verbatim
//	32-39  | Magic        | [8]byte | "rkosftab"
//	40-43  | SegmentCount | uint32  | Number of segment list entries
//	44-47  | Unknown6     | uint32  | Opaque, preserved verbatim
//
// The seven Unknown fields have no documented semantics upstream. They are
// modeled as plain integers and carried through reader-to-writer round trips
// unchanged; no meaning is guessed or attached.
//
// # Segment Entry Format
//
// SegmentEntry (16 bytes):
//
//	Bytes  | Field   | Type    | Description
//	-------|---------|---------|----------------------------------
//	0-3    | Tag     | [4]byte | Segment identifier, often ASCII
//	4-7    | Offset  | uint32  | Absolute byte offset of segment data
//	8-11   | Length  | uint32  | Segment data byte length
//	12-15  | Unknown | uint32  | Opaque, preserved verbatim
//
// # Thread Safety
//
// All types in this package are plain value types and are safe for concurrent
// use as long as callers do not mutate shared instances.
//
// Most users should interact with the table package instead of using section
// directly. Use this package only when you need fine-grained control over the
// binary layout.
package section
