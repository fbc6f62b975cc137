package jpeginfo

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Identifier names the container format declared by the first APP0 or
// APP1 segment.
type Identifier string

const (
	IdentifierJFIF    Identifier = "JFIF"
	IdentifierEXIF    Identifier = "EXIF"
	IdentifierUnknown Identifier = "UNKNOWN"
)

// Size of the container tag kept from the first APP0/APP1 body.
const tagSize = 4

// Policy selects one frame header when a file has several.
type Policy int

const (
	// LastByKind orders frames by marker code, keeping stream order
	// between equal codes, and takes the last one.
	LastByKind Policy = iota
	// FirstSeen takes the first frame header in stream order.
	FirstSeen
)

var policyNames = map[Policy]string{
	LastByKind: "last-kind",
	FirstSeen:  "first-seen",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the policy named by s, as printed by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown frame selection policy %q", s)
}

// Options control ScanWithOptions. The zero value is the default.
type Options struct {
	Policy Policy
}

// Frame is a decoded SOF segment.
type Frame struct {
	Code   Code
	Header FrameHeader
}

// ScanState accumulates what a single pass has found. It is owned by one
// call to ScanWithOptions.
type ScanState struct {
	SeenStartOfImage bool
	SeenEndOfImage   bool
	// Tag holds up to 4 bytes from the start of the first APP0/APP1 body,
	// nil until one is seen.
	Tag        []byte
	Identifier Identifier
	Frames     []Frame
	Exif       *ExifInfo
	MPFImages  int
}

func (s *ScanState) add(offset int, m Marker, seg *Segment) error {
	switch m.Kind {
	case KindStartOfImage:
		s.SeenStartOfImage = true
	case KindEndOfImage:
		s.SeenEndOfImage = true
	case KindApplication:
		s.addApplication(seg)
	case KindStartOfFrame:
		header, err := ParseFrameHeader(seg.Body)
		if err != nil {
			return segmentError(offset, m.Code, err, nil)
		}
		s.Frames = append(s.Frames, Frame{Code: m.Code, Header: header})
	}
	return nil
}

func (s *ScanState) addApplication(seg *Segment) {
	code := seg.Marker.Code
	if s.Tag == nil && (code == APP0 || code == APP1) {
		n := len(seg.Body)
		if n > tagSize {
			n = tagSize
		}
		s.Tag = append(make([]byte, 0, tagSize), seg.Body[:n]...)
		if code == APP0 {
			s.Identifier = IdentifierJFIF
		} else {
			s.Identifier = IdentifierEXIF
		}
	}
	// Payload details are best effort; a body that fails to parse leaves
	// them unset.
	switch {
	case code == APP1 && s.Exif == nil && bytes.HasPrefix(seg.Body, exifHeader):
		if info, err := ParseExif(seg.Body[len(exifHeader):]); err == nil {
			s.Exif = info
		}
	case code == APP2 && s.MPFImages == 0 && bytes.HasPrefix(seg.Body, mpfHeader):
		if n, err := ParseMPFImageCount(seg.Body[len(mpfHeader):]); err == nil {
			s.MPFImages = n
		}
	}
}

// Report is the result of scanning one file.
type Report struct {
	Identifier Identifier  `json:"identifier"`
	Tag        string      `json:"tag,omitempty"`
	FrameCode  Code        `json:"-"`
	Frame      FrameHeader `json:"frame"`
	Exif       *ExifInfo   `json:"exif,omitempty"`
	MPFImages  int         `json:"mpfImages,omitempty"`
}

func (r Report) String() string {
	return fmt.Sprintf("%s %dx%d", r.Identifier, r.Frame.Width, r.Frame.Height)
}

// Aggregate selects the reported frame from state according to policy.
func Aggregate(state *ScanState, policy Policy) (Report, error) {
	if !state.SeenStartOfImage {
		return Report{}, ErrNotJPEG
	}
	if len(state.Frames) == 0 {
		return Report{}, ErrNoFrameHeader
	}
	frame, err := selectFrame(state.Frames, policy)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Identifier: state.Identifier,
		Tag:        strings.ToUpper(strings.TrimRight(string(state.Tag), "\x00")),
		FrameCode:  frame.Code,
		Frame:      frame.Header,
		Exif:       state.Exif,
		MPFImages:  state.MPFImages,
	}
	if r.Identifier == "" {
		r.Identifier = IdentifierUnknown
	}
	return r, nil
}

func selectFrame(frames []Frame, policy Policy) (Frame, error) {
	switch policy {
	case LastByKind:
		sorted := make([]Frame, len(frames))
		copy(sorted, frames)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Code < sorted[j].Code
		})
		return sorted[len(sorted)-1], nil
	case FirstSeen:
		return frames[0], nil
	}
	return Frame{}, errors.Errorf("unknown frame selection policy %d", int(policy))
}
