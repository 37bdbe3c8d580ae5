package table

// cutRange takes a subslice of b addressed by an absolute offset and length,
// where b itself starts at the absolute byte offset anchor. It reports false
// when offset lies before the anchor or when [offset, offset+length) is not
// fully contained in b.
//
// This is the single bounds check backing both ticket and per-segment
// validation. The length comparison is written as a subtraction against
// len(b) so the offset+length sum is never formed and cannot overflow. A
// negative length is rejected outright: on 32-bit platforms a wire value of
// 2^31 or more goes negative when converted to int, and a negative length
// would slip past the subtraction check into the slice expression.
func cutRange(b []byte, offset, length, anchor int) ([]byte, bool) {
	if length < 0 || offset < anchor {
		return nil, false
	}

	rel := offset - anchor
	if rel > len(b) || length > len(b)-rel {
		return nil, false
	}

	return b[rel : rel+length], true
}
