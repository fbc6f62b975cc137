package jpeginfo

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotJPEG is returned when the input does not start with an SOI marker.
	ErrNotJPEG = errors.New("jpeginfo: SOI marker not found")

	// ErrTruncatedSegment is returned when a marker pair, length field or
	// segment body extends past the end of the input.
	ErrTruncatedSegment = errors.New("jpeginfo: truncated segment")

	// ErrMalformedFrameHeader is returned for an SOF body shorter than 6 bytes.
	ErrMalformedFrameHeader = errors.New("jpeginfo: malformed frame header")

	// ErrNoFrameHeader is returned when the scan finds no SOF0..SOF2 segment.
	ErrNoFrameHeader = errors.New("jpeginfo: no frame header")

	// ErrOutOfBounds is returned by Cursor for any access past the end of
	// its buffer.
	ErrOutOfBounds = errors.New("jpeginfo: out of bounds")
)

// SegmentError records where in the input a failure occurred. It unwraps
// to Err (one of the sentinel errors above) and, when set, to its Cause.
type SegmentError struct {
	Offset int
	Code   Code
	Err    error
	Cause  error
}

func (e *SegmentError) Error() string {
	msg := fmt.Sprintf("%v at offset %d (%s)", e.Err, e.Offset, e.Code.Name())
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SegmentError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func segmentError(offset int, code Code, err, cause error) error {
	return &SegmentError{Offset: offset, Code: code, Err: err, Cause: cause}
}
