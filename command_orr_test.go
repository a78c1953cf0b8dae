package fe5comp

import (
	"bytes"
	"testing"
)

// Submethods 0-7 never prepend val; submethods 8+ do, which makes their
// emitted-byte count length+1 instead of length. These cases cover both
// sides of that split with submethods 3, 9, B and E.
func TestDecompress_ORRSubmethods(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"submethod3-repeated-lower", []byte{0x40, 0x35, 0x12, 0xFF}, []byte{0x15, 0x25}},
		{"submethod9-repeated-lower-zero", []byte{0x42, 0x9F, 0xAB, 0xCD, 0xFF}, []byte{0xF0, 0xA0, 0xB0, 0xC0, 0xD0}},
		{"submethodB-repeated-upper-F", []byte{0x40, 0xB7, 0x9A, 0xFF}, []byte{0xF7, 0xF9, 0xFA}},
		{"submethodE-repeated-lower-F", []byte{0x40, 0xE3, 0x56, 0xFF}, []byte{0x3F, 0x5F, 0x6F}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, _, err := Decompress(c.input, 0)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out.New(), c.want) {
				t.Errorf("decoded = % x, want % x", out.New(), c.want)
			}
		})
	}
}
