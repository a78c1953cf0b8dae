// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// handleDoubled implements method 5: each source byte emitted twice.
//
// Layout: 5L DD ...
//
//	length = (b & 0x0F) + 1  (range 1..16)
//
// Consumed = length + 1. Output length = 2*length.
func handleDoubled(cu *cursor, offset int, out []byte) ([]byte, int, error) {
	b, err := cu.byteAt(offset)
	if err != nil {
		return out, 0, err
	}
	length := int(b&0x0F) + 1

	for i := 0; i < length; i++ {
		d, err := cu.byteAt(offset + 1 + i)
		if err != nil {
			return out, 0, err
		}
		out = append(out, d, d)
	}

	return out, length + 1, nil
}
