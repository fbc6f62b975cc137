package jpeginfo

// seg builds a length-bearing segment for code with the given body.
func seg(code byte, body ...byte) []byte {
	n := len(body) + 2
	return append([]byte{0xFF, code, byte(n >> 8), byte(n)}, body...)
}

// jfif builds an APP0 segment with a JFIF 1.01 header.
func jfif() []byte {
	return seg(APP0, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00, 0x00, 0x48, 0x00, 0x48, 0x00, 0x00)
}

// sof builds an SOF segment carrying a frame header and one 3-byte
// component specification per component.
func sof(code byte, precision byte, height, width uint16, components byte) []byte {
	body := []byte{precision, byte(height >> 8), byte(height), byte(width >> 8), byte(width), components}
	for i := byte(0); i < components; i++ {
		body = append(body, i+1, 0x11, 0x00)
	}
	return seg(code, body...)
}

// file joins parts between SOI and EOI markers.
func file(parts ...[]byte) []byte {
	buf := []byte{0xFF, SOI}
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return append(buf, 0xFF, EOI)
}
