package fe5comp

import (
	"bytes"
	"testing"
)

func TestDecompress_AppendedMethod6Prefixed(t *testing.T) {
	// method 6: val appears before each data byte.
	input := []byte{0x62, 0x5A, 0x11, 0x22, 0x33, 0x44, 0xFF}
	out, consumed, err := Decompress(input, 0)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	want := []byte{0x5A, 0x11, 0x5A, 0x22, 0x5A, 0x33, 0x5A, 0x44}
	if !bytes.Equal(out.New(), want) {
		t.Errorf("decoded = % x, want % x", out.New(), want)
	}
	if consumed != 7 {
		t.Errorf("consumed = %d, want 7", consumed)
	}
}
