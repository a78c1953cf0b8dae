// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// handleSpecial implements method F, which has two unrelated submethod
// families packed into the low nybble: a short run-length form, and a
// compressed-input lookback (two sizes) that re-executes earlier commands
// instead of copying output bytes.
func handleSpecial(cu *cursor, offset int, out []byte) ([]byte, int, error) {
	b, err := cu.byteAt(offset)
	if err != nil {
		return out, 0, err
	}
	s := b & 0x0F

	if s < 0x08 {
		return handleShortRLE(cu, offset, b, out)
	}
	return handleCompressedLookback(cu, offset, b, s, out)
}

// handleShortRLE: submethod 0-7.
//
// Layout: FL DD
//
//	length = (b & 0x07) + 3  (range 3..10)
//	val    = C[offset+1]
//
// Consumed = 2.
func handleShortRLE(cu *cursor, offset int, b byte, out []byte) ([]byte, int, error) {
	val, err := cu.byteAt(offset + 1)
	if err != nil {
		return out, 0, err
	}
	length := int(b&0x07) + 3
	for i := 0; i < length; i++ {
		out = append(out, val)
	}
	return out, 2, nil
}

// handleCompressedLookback: submethod 8-F (see SPEC_FULL.md Open Question 1
// for why 0xF is included here and not treated as a terminator).
//
// Long form (submethod 8-B), 3 command bytes:
//
//	length   = (((b & 0x03) << 3) | (C[offset+1] >> 5)) + 3 (range 3..34)
//	distance = ((C[offset+1] & 0x1F) << 8) | C[offset+2]    (range 0..8191)
//	dispDefault = 3
//
// Short form (submethod C-F), 2 command bytes:
//
//	length   = (((b & 0x01) << 2) | (C[offset+1] >> 6)) + 3 (range 3..10)
//	distance = C[offset+1] & 0x3F                            (range 0..63)
//	dispDefault = 2
//
// The re-executed commands read through a splice: position [offset,
// offset+tempSize) appears to contain C[p:p+tempSize] (p = offset -
// distance), as if the lookback command itself had been overwritten by the
// back-window. Reads at or past offset+tempSize fall through to whatever
// byte the stream would hold right after the lookback command's own
// dispDefault-byte encoding — not C[pos] itself, since the window's size
// rarely matches dispDefault and everything past it shifts to compensate.
// That shift is what lets a sub-command's tail run off the end of a short
// back-window straight into the real bytes that follow the lookback command
// in C, which is the whole point of the overrun case below. tempSize and
// the final disp follow the original decoder's arithmetic exactly,
// including its reuse of `length` (the sub-command loop bound, not
// literally "number of commands" once the loop is running) as a byte
// quantity on the overrun path — see SPEC_FULL.md Open Question 2.
func handleCompressedLookback(cu *cursor, offset int, b, s byte, out []byte) ([]byte, int, error) {
	b1, err := cu.byteAt(offset + 1)
	if err != nil {
		return out, 0, err
	}

	var length, distance, dispDefault int
	if s < 0x0C {
		b2, err := cu.byteAt(offset + 2)
		if err != nil {
			return out, 0, err
		}
		length = int((b&0x03)<<3|(b1>>5)) + 3
		distance = int(b1&0x1F)<<8 | int(b2)
		dispDefault = 3
	} else {
		length = int((b&0x01)<<2|(b1>>6)) + 3
		distance = int(b1 & 0x3F)
		dispDefault = 2
	}

	p := offset - distance
	if p < 0 {
		return out, 0, newDecodeError(KindBadCompressedLookback, offset, ErrBadCompressedLookback)
	}

	tempSize := length
	if p+length > offset {
		tempSize = distance
	}

	splice := cu.pushRedirect(offset, tempSize, p, dispDefault)

	i := offset
	for i < offset+length {
		var derr error
		out, i, derr = stepCompressedLookback(splice, i, out)
		if derr != nil {
			return out, 0, derr
		}
	}

	disp := dispDefault
	if i > offset+tempSize {
		disp = length
	}
	return out, disp, nil
}

// stepCompressedLookback decodes one sub-command at i through the spliced
// cursor and returns the updated out and the next cursor position.
func stepCompressedLookback(splice *cursor, i int, out []byte) ([]byte, int, error) {
	sb, err := splice.byteAt(i)
	if err != nil {
		return out, 0, err
	}
	out, disp, err := dispatch[sb>>4](splice, i, out)
	if err != nil {
		return out, 0, err
	}
	return out, i + disp, nil
}
