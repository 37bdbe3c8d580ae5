package section

import "encoding/hex"

// TagSize is the fixed size of a segment tag in bytes.
const TagSize = 4

// Tag is the 4-byte identifier of a segment in the segment list. Tags are
// often printable ASCII (e.g. "rkrn", "dtre") but the format does not require
// it, so the raw bytes are preserved as-is.
type Tag [TagSize]byte

// NewTag builds a Tag from up to 4 bytes of s, zero-padding on the right.
// Longer input is truncated; use manifest parsing when strict length checks
// are needed.
func NewTag(s string) Tag {
	var t Tag
	copy(t[:], s)

	return t
}

// IsAlphanumeric reports whether all four tag bytes are ASCII letters or
// digits. Such tags are safe to use verbatim in file names and manifests.
func (t Tag) IsAlphanumeric() bool {
	for _, b := range t {
		switch {
		case b >= '0' && b <= '9':
		case b >= 'A' && b <= 'Z':
		case b >= 'a' && b <= 'z':
		default:
			return false
		}
	}

	return true
}

// Hex returns the tag bytes as an 8-character lowercase hex string.
func (t Tag) Hex() string {
	return hex.EncodeToString(t[:])
}

// String renders the tag as its four characters when alphanumeric, or as hex
// otherwise.
func (t Tag) String() string {
	if t.IsAlphanumeric() {
		return string(t[:])
	}

	return t.Hex()
}
