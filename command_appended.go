// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// handleAppended implements method 6-7: a common byte interleaved with a
// data run, either before (method 6) or after (method 7) each data byte.
//
// Layout: ML VV DD ...
//
//	length = (b & 0x0F) + 2  (range 2..17)
//	val    = C[offset+1]
//
// Consumed = length + 2. Output length = 2*length.
func handleAppended(cu *cursor, offset int, out []byte) ([]byte, int, error) {
	b, err := cu.byteAt(offset)
	if err != nil {
		return out, 0, err
	}
	length := int(b&0x0F) + 2
	before := (b >> 4) == 0x6

	val, err := cu.byteAt(offset + 1)
	if err != nil {
		return out, 0, err
	}

	for i := 0; i < length; i++ {
		d, err := cu.byteAt(offset + 2 + i)
		if err != nil {
			return out, 0, err
		}
		if before {
			out = append(out, val, d)
		} else {
			out = append(out, d, val)
		}
	}

	return out, length + 2, nil
}
