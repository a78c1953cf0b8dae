package fe5comp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Corpus-style test comparing decoded output against golden fixtures,
// exercising DecompressChunks across several back-to-back commands of
// different families in one pass.
func TestDecompressChunks_Corpus(t *testing.T) {
	// chunk 0: literal "AB", chunk 1: doubled "Z", chunk 2: RLE of 0x10 x5
	src := []byte{
		0x01, 0x41, 0x42, 0xFF, // literal: A B
		0x50, 0x5A, 0xFF, // doubled: Z Z
		0xE0, 0x02, 0x10, 0xFF, // RLE: 0x10 x5
	}

	out, starts, err := DecompressChunks(src, 0, 0)
	if err != nil {
		t.Fatalf("DecompressChunks failed: %v", err)
	}

	wantStarts := []int{0, 4, 7}
	if diff := cmp.Diff(wantStarts, starts); diff != "" {
		t.Errorf("chunk starts (-want +got):\n%s", diff)
	}

	want := []byte{
		0x41, 0x42,
		0x5A, 0x5A,
		0x10, 0x10, 0x10, 0x10, 0x10,
	}
	if diff := cmp.Diff(want, out.Bytes()); diff != "" {
		t.Errorf("decoded bytes (-want +got):\n%s", diff)
	}
}
