package jpeginfo

// Segment is a length-bearing marker and its body. Length counts the two
// length bytes, so len(Body) == Length-2.
type Segment struct {
	Marker Marker
	Length uint16
	Body   []byte
}

// Size returns the number of input bytes the segment occupies, marker
// included.
func (s Segment) Size() int {
	return 2 + int(s.Length)
}

// DecodeSegment reads the segment whose marker pair starts at offset. The
// body aliases the cursor's buffer.
func DecodeSegment(c Cursor, offset int) (Segment, error) {
	b, err := c.Peek(offset + 1)
	if err != nil {
		return Segment{}, segmentError(offset, 0, ErrTruncatedSegment, err)
	}
	m := Classify(b)
	length, err := c.Uint16(offset + 2)
	if err != nil {
		return Segment{}, segmentError(offset, m.Code, ErrTruncatedSegment, err)
	}
	if length < 2 {
		return Segment{}, segmentError(offset, m.Code, ErrTruncatedSegment, nil)
	}
	body, err := c.Slice(offset+4, int(length)-2)
	if err != nil {
		return Segment{}, segmentError(offset, m.Code, ErrTruncatedSegment, err)
	}
	return Segment{Marker: m, Length: length, Body: body}, nil
}
