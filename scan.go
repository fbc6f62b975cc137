package jpeginfo

// Size of a JPEG file header.
const HeaderSize = 2

// IsJPEGHeader reports whether buf starts with an SOI marker.
func IsJPEGHeader(buf []byte) bool {
	return len(buf) >= HeaderSize && buf[0] == FILL && buf[1] == SOI
}

// visitFunc is called by walk for each marker found. seg is nil for
// markers without a length field.
type visitFunc func(offset int, m Marker, seg *Segment) error

// walk visits the markers of buf in order. APPn and SOF0..SOF2 segments
// are consumed whole; every other marker advances the position by its two
// bytes, and bytes outside a marker are stepped over one at a time. A
// fill byte (0xFF 0xFF) advances by one so the second 0xFF is read as a
// prefix. Stuffed bytes (0xFF 0x00) are stepped over without a visit.
func walk(c Cursor, visit visitFunc) error {
	for i := 0; i < c.Len(); {
		b, err := c.Peek(i)
		if err != nil {
			return segmentError(i, 0, ErrTruncatedSegment, err)
		}
		if b != FILL {
			i++
			continue
		}
		next, err := c.Peek(i + 1)
		if err != nil {
			return segmentError(i, 0, ErrTruncatedSegment, err)
		}
		m := Classify(next)
		switch m.Kind {
		case KindIndicator:
			i++
		case KindApplication, KindStartOfFrame:
			seg, err := DecodeSegment(c, i)
			if err != nil {
				return err
			}
			if err := visit(i, m, &seg); err != nil {
				return err
			}
			i += seg.Size()
		case KindStartOfImage, KindEndOfImage:
			if err := visit(i, m, nil); err != nil {
				return err
			}
			i += 2
		case KindOther:
			if m.Code != 0 {
				if err := visit(i, m, nil); err != nil {
					return err
				}
			}
			i += 2
		}
	}
	return nil
}

// Scan extracts the container identifier and frame header of a complete
// in-memory JPEG file, using the default frame selection policy.
func Scan(buf []byte) (Report, error) {
	return ScanWithOptions(buf, Options{})
}

// ScanWithOptions is like Scan with a caller-chosen frame selection
// policy.
func ScanWithOptions(buf []byte, opts Options) (Report, error) {
	if !IsJPEGHeader(buf) {
		return Report{}, ErrNotJPEG
	}
	var state ScanState
	if err := walk(NewCursor(buf), state.add); err != nil {
		return Report{}, err
	}
	return Aggregate(&state, opts.Policy)
}

// Entry is one marker found by Segments.
type Entry struct {
	Offset int
	Marker Marker
	// Length is the segment's length field, or 0 for a marker scanned
	// without one.
	Length uint16
}

// Size returns the number of bytes the entry occupies in the input.
func (e Entry) Size() int {
	if e.Length == 0 {
		return 2
	}
	return 2 + int(e.Length)
}

// Segments lists the markers of buf in the order the scanner meets them.
// On error it returns the entries read so far.
func Segments(buf []byte) ([]Entry, error) {
	entries := make([]Entry, 0, 20)
	if !IsJPEGHeader(buf) {
		return entries, ErrNotJPEG
	}
	err := walk(NewCursor(buf), func(offset int, m Marker, seg *Segment) error {
		e := Entry{Offset: offset, Marker: m}
		if seg != nil {
			e.Length = seg.Length
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}
