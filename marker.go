package jpeginfo

import "fmt"

const (
	TEM  = 0x01
	SOF0 = 0xC0 // SOFn = SOF0+n, n = 0-15 excluding 4, 8 and 12
	SOF1 = 0xC1
	SOF2 = 0xC2
	DHT  = 0xC4
	JPG  = 0xC8
	DAC  = 0xCC
	RST0 = 0xD0 // RSTn = RST0+n, n = 0-7
	SOI  = 0xD8
	EOI  = 0xD9
	SOS  = 0xDA
	DQT  = 0xDB
	DNL  = 0xDC
	DRI  = 0xDD
	DHP  = 0xDE
	EXP  = 0xDF
	APP0 = 0xE0 // APPn = APP0+n, n = 0-15
	APP1 = 0xE1
	APP2 = 0xE2
	JPG0 = 0xF0 // JPGn = JPG0+n  n = 0-13
	COM  = 0xFE
	FILL = 0xFF
)

// Code is the byte following the 0xFF prefix of a marker.
type Code uint8

var codeNames [256]string

// Initialize codeNames
func init() {
	codeNames[0] = "NUL"
	codeNames[TEM] = "TEM"
	codeNames[DHT] = "DHT"
	codeNames[JPG] = "JPG"
	codeNames[DAC] = "DAC"
	codeNames[SOI] = "SOI"
	codeNames[EOI] = "EOI"
	codeNames[SOS] = "SOS"
	codeNames[DQT] = "DQT"
	codeNames[DNL] = "DNL"
	codeNames[DRI] = "DRI"
	codeNames[DHP] = "DHP"
	codeNames[EXP] = "EXP"
	codeNames[COM] = "COM"
	codeNames[FILL] = "FILL"

	var i int
	for i = 0x02; i <= 0xBF; i++ {
		codeNames[i] = fmt.Sprintf("RES%.2X", i)
	}
	for i = SOF0; i <= SOF0+0xF; i++ {
		if i == SOF0+4 || i == SOF0+8 || i == SOF0+12 {
			continue
		}
		codeNames[i] = fmt.Sprintf("SOF%d", i-SOF0)
	}
	for i = RST0; i <= RST0+7; i++ {
		codeNames[i] = fmt.Sprintf("RST%d", i-RST0)
	}
	for i = APP0; i <= APP0+0xF; i++ {
		codeNames[i] = fmt.Sprintf("APP%d", i-APP0)
	}
	for i = JPG0; i <= JPG0+0xD; i++ {
		codeNames[i] = fmt.Sprintf("JPG%d", i-JPG0)
	}
}

// Name returns the short name of a marker code.
func (c Code) Name() string {
	return codeNames[c]
}

func (c Code) String() string {
	return fmt.Sprintf("%s(0x%.2X)", c.Name(), uint8(c))
}

// Kind is the variant of a classified marker.
type Kind int

const (
	// KindOther covers every code the scanner does not act on, including
	// the 0x00 of a stuffed byte.
	KindOther Kind = iota
	// KindIndicator is a 0xFF fill byte following the prefix.
	KindIndicator
	KindStartOfImage
	KindEndOfImage
	// KindApplication is APP0..APP15.
	KindApplication
	// KindStartOfFrame is SOF0..SOF2, the frame types whose headers are read.
	KindStartOfFrame
)

var kindNames = [...]string{
	KindOther:        "Other",
	KindIndicator:    "Indicator",
	KindStartOfImage: "StartOfImage",
	KindEndOfImage:   "EndOfImage",
	KindApplication:  "Application",
	KindStartOfFrame: "StartOfFrame",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Marker is a classified marker code. Code carries the APPn or SOFn
// sub-variant, or the raw byte for KindOther.
type Marker struct {
	Kind Kind
	Code Code
}

// Classify maps the byte following a 0xFF prefix to its marker variant.
func Classify(b byte) Marker {
	c := Code(b)
	switch {
	case c == FILL:
		return Marker{KindIndicator, c}
	case c == SOI:
		return Marker{KindStartOfImage, c}
	case c == EOI:
		return Marker{KindEndOfImage, c}
	case c >= APP0 && c <= APP0+0xF:
		return Marker{KindApplication, c}
	case c >= SOF0 && c <= SOF2:
		return Marker{KindStartOfFrame, c}
	}
	return Marker{KindOther, c}
}

// HasLength reports whether the scanner reads a length field after this
// marker.
func (m Marker) HasLength() bool {
	return m.Kind == KindApplication || m.Kind == KindStartOfFrame
}

func (m Marker) String() string {
	return m.Kind.String() + " " + m.Code.Name()
}
