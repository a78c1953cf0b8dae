// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// handleORR implements method 4: a nybble list ORR'd with a common value.
//
// Layout: 4L SV DD ...
//
//	length    = (b & 0x0F) + 2           (range 2..17 nybbles)
//	submethod = hi-nybble(C[offset+1])
//	val       = lo-nybble(C[offset+1])
//
// Nybbles are packed two per byte, high nybble first, starting at
// offset+2; exactly `length` of them are read regardless of submethod.
// Submethods 8+ additionally prepend val as one more list member ahead of
// those `length` packed nybbles, so they emit length+1 bytes; submethods
// 0-7 use val as the shared half of every emitted byte and emit length
// bytes. (The teacher's packed-nybble read count and the emitted-byte
// count are the same variable in the original source for submethods 0-7
// only; keeping them distinct here is what makes submethod 8+ correct.)
//
// Consumed = ceil(length/2) + 2.
func handleORR(cu *cursor, offset int, out []byte) ([]byte, int, error) {
	b, err := cu.byteAt(offset)
	if err != nil {
		return out, 0, err
	}
	length := int(b&0x0F) + 2

	sv, err := cu.byteAt(offset + 1)
	if err != nil {
		return out, 0, err
	}
	submethod := sv >> 4
	val := sv & 0x0F

	packedStart := offset + 2

	nybbles := make([]byte, 0, length+1)
	if submethod >= 8 {
		nybbles = append(nybbles, val)
	}
	for i := 0; i < length; i++ {
		packed, err := cu.byteAt(packedStart + i/2)
		if err != nil {
			return out, 0, err
		}
		var n byte
		if i%2 == 0 {
			n = packed >> 4
		} else {
			n = packed & 0x0F
		}
		nybbles = append(nybbles, n)
	}

	for _, n := range nybbles {
		switch {
		case submethod == 0:
			out = append(out, (val<<4)|n)
		case submethod < 8:
			out = append(out, (n<<4)|val)
		case submethod == 8:
			out = append(out, n)
		case submethod == 9:
			out = append(out, n<<4)
		case submethod < 0x0E:
			out = append(out, 0xF0|n)
		default: // 0x0E
			out = append(out, (n<<4)|0x0F)
		}
	}

	disp := (length+1)/2 + 2
	return out, disp, nil
}
