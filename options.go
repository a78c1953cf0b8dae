// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// DecompressChunks decodes consecutive compressed chunks from src, starting
// at offset, until maxChunks have been decoded or the input is exhausted.
// Each chunk's bytes are appended to a shared output buffer; the returned
// offsets slice holds each chunk's starting offset within src, which is
// useful for indexing a table of back-to-back compressed resources (as FE5
// graphics banks store them) without the caller re-deriving chunk
// boundaries by hand.
func DecompressChunks(src []byte, offset int, maxChunks int) (Output, []int, error) {
	var out []byte
	var starts []int

	for n := 0; (maxChunks <= 0 || n < maxChunks) && offset < len(src); n++ {
		starts = append(starts, offset)
		o, consumed, err := DecompressInto(src, offset, out)
		if err != nil {
			return o, starts, err
		}
		out = o.Bytes()
		offset += consumed
	}

	return Output{buf: out, newFrom: 0}, starts, nil
}
