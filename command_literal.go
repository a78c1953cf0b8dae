// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// handleLiteral implements method 0-3: a raw byte run.
//
// Layout: NN DD ...
//
//	length = b + 1  (range 1..64, since b&0xFF spans the whole byte and the
//	                  method nybble 0-3 only constrains the top two bits)
//
// Consumed = length + 1.
func handleLiteral(cu *cursor, offset int, out []byte) ([]byte, int, error) {
	b, err := cu.byteAt(offset)
	if err != nil {
		return out, 0, err
	}
	length := int(b) + 1

	for i := 0; i < length; i++ {
		d, err := cu.byteAt(offset + 1 + i)
		if err != nil {
			return out, 0, err
		}
		out = append(out, d)
	}

	return out, length + 1, nil
}
