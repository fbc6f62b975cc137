package jpeginfo

import (
	"testing"

	"go.viam.com/test"
)

// exifTIFF is a little-endian TIFF structure whose IFD0 holds Make "Foo",
// Model "Bar" and Orientation 6.
var exifTIFF = []byte{
	'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00,
	0x03, 0x00,
	0x0F, 0x01, 0x02, 0x00, 0x04, 0x00, 0x00, 0x00, 'F', 'o', 'o', 0x00,
	0x10, 0x01, 0x02, 0x00, 0x04, 0x00, 0x00, 0x00, 'B', 'a', 'r', 0x00,
	0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// mpfTIFF is a big-endian MPF index IFD declaring two images.
var mpfTIFF = []byte{
	'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08,
	0x00, 0x02,
	0xB0, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x04, '0', '1', '0', '0',
	0xB0, 0x01, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02,
	0x00, 0x00, 0x00, 0x00,
}

func TestParseExif(t *testing.T) {
	info, err := ParseExif(exifTIFF)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info, test.ShouldResemble, &ExifInfo{Orientation: 6, Make: "Foo", Model: "Bar"})
}

// malformedExif holds TIFF structures with a valid header and a broken IFD.
var malformedExif = []struct {
	name string
	buf  []byte
}{
	{name: "short header", buf: []byte{'I', 'I'}},
	{name: "bad byte order", buf: []byte{'X', 'X', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00}},
	{name: "entry cut short", buf: exifTIFF[:13]},
	{
		name: "entry count past end",
		buf:  append([]byte{'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00, 0xFF, 0x00}, exifTIFF[10:22]...),
	},
	{
		name: "IFD offset past end",
		buf:  []byte{'I', 'I', 0x2A, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00},
	},
	{
		name: "value offset past end",
		buf: []byte{
			'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00,
			0x01, 0x00,
			0x0F, 0x01, 0x02, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF,
			0x00, 0x00, 0x00, 0x00,
		},
	},
}

func TestParseExifInvalid(t *testing.T) {
	for _, tt := range malformedExif {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExif(tt.buf)
			test.That(t, err, test.ShouldNotBeNil)
		})
	}
}

func TestScanMalformedExif(t *testing.T) {
	for _, tt := range malformedExif {
		t.Run(tt.name, func(t *testing.T) {
			app1 := seg(APP1, append([]byte("Exif\x00\x00"), tt.buf...)...)
			r, err := Scan(file(app1, sof(SOF0, 8, 1, 1, 1)))
			test.That(t, err, test.ShouldBeNil)
			test.That(t, r.Identifier, test.ShouldEqual, IdentifierEXIF)
			test.That(t, r.Exif, test.ShouldBeNil)
		})
	}
}

func TestScanMutatedExif(t *testing.T) {
	frame := sof(SOF0, 8, 4, 5, 1)
	for n := 0; n < len(exifTIFF); n++ {
		app1 := seg(APP1, append([]byte("Exif\x00\x00"), exifTIFF[:n]...)...)
		r, err := Scan(file(app1, frame))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, r.Frame.Width, test.ShouldEqual, uint16(5))
	}
	for i := range exifTIFF {
		for _, v := range []byte{0x00, 0x7F, 0xFF} {
			buf := append([]byte(nil), exifTIFF...)
			buf[i] = v
			app1 := seg(APP1, append([]byte("Exif\x00\x00"), buf...)...)
			r, err := Scan(file(app1, frame))
			test.That(t, err, test.ShouldBeNil)
			test.That(t, r.Frame.Width, test.ShouldEqual, uint16(5))
		}
	}
}

func TestParseMPFImageCountMalformed(t *testing.T) {
	for _, tt := range malformedExif {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMPFImageCount(tt.buf)
			test.That(t, err, test.ShouldNotBeNil)
		})
	}
}

func TestParseMPFImageCount(t *testing.T) {
	n, err := ParseMPFImageCount(mpfTIFF)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 2)

	_, err = ParseMPFImageCount(nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestScanApplicationDetails(t *testing.T) {
	app1 := seg(APP1, append([]byte("Exif\x00\x00"), exifTIFF...)...)
	app2 := seg(APP2, append([]byte("MPF\x00"), mpfTIFF...)...)
	r, err := Scan(file(app1, app2, sof(SOF0, 8, 3000, 4000, 3)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Identifier, test.ShouldEqual, IdentifierEXIF)
	test.That(t, r.Exif, test.ShouldResemble, &ExifInfo{Orientation: 6, Make: "Foo", Model: "Bar"})
	test.That(t, r.MPFImages, test.ShouldEqual, 2)
}

func TestScanIgnoresBadPayload(t *testing.T) {
	app1 := seg(APP1, []byte("Exif\x00\x00XX\x2A\x00\x08\x00\x00\x00")...)
	r, err := Scan(file(app1, sof(SOF0, 8, 1, 1, 1)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Identifier, test.ShouldEqual, IdentifierEXIF)
	test.That(t, r.Exif, test.ShouldBeNil)
}

func TestASCIIField(t *testing.T) {
	test.That(t, asciiField([]byte("Canon\x00\x00")), test.ShouldEqual, "Canon")
	test.That(t, asciiField([]byte(" EOS ")), test.ShouldEqual, "EOS")
	test.That(t, asciiField(nil), test.ShouldEqual, "")
}
