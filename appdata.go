package jpeginfo

import (
	"bytes"

	tiff "github.com/garyhouston/tiff66"
	"github.com/pkg/errors"
)

// Exif header, as found at the start of a JPEG APP1 segment.
var exifHeader = []byte("Exif\000\000")

// MPF header, as found in a JPEG APP2 segment.
var mpfHeader = []byte("MPF\000")

// TIFF tags read from the Exif IFD0.
const (
	tagMake        = 0x010F
	tagModel       = 0x0110
	tagOrientation = 0x0112
)

// MPF tag holding the number of images in the file.
const mpfNumberOfImages = 0xB001

// ExifInfo holds the few Exif fields reported alongside the frame header.
type ExifInfo struct {
	Orientation uint16 `json:"orientation,omitempty"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
}

// ParseExif reads IFD0 of the TIFF structure that follows the Exif header
// in an APP1 body.
func ParseExif(buf []byte) (*ExifInfo, error) {
	node, err := ifdTree(buf, tiff.TIFFSpace)
	if err != nil {
		return nil, errors.Wrap(err, "exif")
	}
	info := new(ExifInfo)
	for _, f := range node.Fields {
		switch f.Tag {
		case tagOrientation:
			if f.Count > 0 && len(f.Data) >= 2 {
				info.Orientation = f.Short(0, node.Order)
			}
		case tagMake:
			info.Make = asciiField(f.Data)
		case tagModel:
			info.Model = asciiField(f.Data)
		}
	}
	return info, nil
}

// ParseMPFImageCount reads the NumberOfImages field from the MPF index IFD
// that follows the MPF header in an APP2 body.
func ParseMPFImageCount(buf []byte) (int, error) {
	node, err := ifdTree(buf, tiff.MPFIndexSpace)
	if err != nil {
		return 0, errors.Wrap(err, "mpf")
	}
	for _, f := range node.Fields {
		if f.Tag == mpfNumberOfImages && f.Count > 0 && len(f.Data) >= 4 {
			return int(f.Long(0, node.Order)), nil
		}
	}
	return 0, errors.New("mpf: no NumberOfImages field")
}

// ifdTree reads the IFD tree of a TIFF structure. GetIFDTree indexes
// past the end of buf on some corrupt IFDs; those panics are returned as
// errors.
func ifdTree(buf []byte, space tiff.TagSpace) (node *tiff.IFDNode, err error) {
	defer func() {
		if p := recover(); p != nil {
			node, err = nil, errors.Errorf("tiff: %v", p)
		}
	}()
	if len(buf) < tiff.HeaderSize {
		return nil, errors.New("short TIFF header")
	}
	valid, order, ifdpos := tiff.GetHeader(buf)
	if !valid {
		return nil, errors.New("invalid TIFF header")
	}
	return tiff.GetIFDTree(buf, order, ifdpos, space)
}

// asciiField returns a TIFF ASCII value up to its first NUL.
func asciiField(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return string(bytes.TrimSpace(data))
}
