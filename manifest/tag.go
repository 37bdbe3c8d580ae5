package manifest

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/restorefw/ftab/section"
)

// Tag is a segment tag with the manifest's TOML representation: either a
// string of at most 4 bytes (zero-padded on the right) or a non-negative
// integer below 2^32, interpreted as the tag's big-endian byte value. A tag
// whose four bytes are all ASCII alphanumeric serializes as a string,
// anything else as an integer.
type Tag section.Tag

// Section returns the wire-level tag value.
func (t Tag) Section() section.Tag {
	return section.Tag(t)
}

func (t Tag) String() string {
	return section.Tag(t).String()
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Tag) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		if len(val) > section.TagSize {
			return fmt.Errorf("tag %q is longer than 4 bytes", val)
		}
		*t = Tag{}
		copy(t[:], val)

		return nil
	case int64:
		if val < 0 {
			return fmt.Errorf("tag value %d is negative", val)
		}
		if val > math.MaxUint32 {
			return fmt.Errorf("tag value %d does not fit in 32 bits", val)
		}
		binary.BigEndian.PutUint32(t[:], uint32(val))

		return nil
	default:
		return fmt.Errorf("tag must be a string of 4 bytes or less or a non-negative integer less than 2^32, got %T", v)
	}
}

// MarshalTOML implements toml.Marshaler.
func (t Tag) MarshalTOML() ([]byte, error) {
	if section.Tag(t).IsAlphanumeric() {
		return []byte(strconv.Quote(string(t[:]))), nil
	}

	return []byte(strconv.FormatUint(uint64(binary.BigEndian.Uint32(t[:])), 10)), nil
}
