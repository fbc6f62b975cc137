package jpeginfo

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Size of the fixed part of an SOF body read by ParseFrameHeader.
const FrameHeaderSize = 6

// FrameHeader is the fixed part of an SOF segment body.
type FrameHeader struct {
	Precision  uint8  `json:"precision"`
	Height     uint16 `json:"height"`
	Width      uint16 `json:"width"`
	Components uint8  `json:"components"`
}

// ParseFrameHeader reads precision, height, width and component count
// from an SOF body. Component specifications after the first 6 bytes are
// ignored.
func ParseFrameHeader(body []byte) (FrameHeader, error) {
	if len(body) < FrameHeaderSize {
		return FrameHeader{}, errors.Wrapf(ErrMalformedFrameHeader, "%d byte body, need %d", len(body), FrameHeaderSize)
	}
	return FrameHeader{
		Precision:  body[0],
		Height:     binary.BigEndian.Uint16(body[1:3]),
		Width:      binary.BigEndian.Uint16(body[3:5]),
		Components: body[5],
	}, nil
}
