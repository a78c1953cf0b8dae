// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

package fe5comp

// terminator ends the top-level decode loop, which checks for it before
// dispatching, so 0xFF never reaches a handler there. Nested sub-command
// decode (inside a compressed lookback) never checks for it: a 0xFF met
// there dispatches to method F, whose low nybble 0xF selects the short
// compressed-lookback form (see command_special.go and SPEC_FULL.md's Open
// Question 1 resolution).
const terminator = 0xFF

// handlerFunc decodes one command starting at offset, appends its decoded
// bytes to out, and returns the updated out plus the number of input bytes
// the command occupies (disp). Handlers never advance the cursor themselves.
type handlerFunc func(cu *cursor, offset int, out []byte) ([]byte, int, error)

// dispatch maps a command byte's high nybble to its handler.
// It is filled in by init because the method F handler dispatches nested
// sub-commands through it, which a static initializer would make a cycle.
var dispatch [16]handlerFunc

func init() {
	dispatch = [16]handlerFunc{
		0x0: handleLiteral, 0x1: handleLiteral, 0x2: handleLiteral, 0x3: handleLiteral,
		0x4: handleORR,
		0x5: handleDoubled,
		0x6: handleAppended, 0x7: handleAppended,
		0x8: handleLookback, 0x9: handleLookback, 0xA: handleLookback, 0xB: handleLookback,
		0xC: handleLookback, 0xD: handleLookback,
		0xE: handleRLE,
		0xF: handleSpecial,
	}
}

// Output is a handle on a decode's output buffer. When the caller supplies a
// pre-existing buffer to DecompressInto, Output.New distinguishes the bytes
// emitted during this call from the caller's prefix.
type Output struct {
	buf     []byte
	newFrom int
}

// Bytes returns the full output buffer (caller prefix, if any, plus the
// newly decoded bytes).
func (o Output) Bytes() []byte { return o.buf }

// New returns only the bytes appended during this decode call.
func (o Output) New() []byte { return o.buf[o.newFrom:] }

// Decompress decodes one compressed chunk from src starting at offset into a
// freshly allocated buffer. It returns the decoded bytes and the number of
// input bytes consumed, including the terminator.
func Decompress(src []byte, offset int) (Output, int, error) {
	return DecompressInto(src, offset, nil)
}

// DecompressInto decodes one compressed chunk from src starting at offset,
// appending decoded bytes to out (which may be nil). It returns an Output
// handle, the number of input bytes consumed (including the terminator),
// and an error if the stream is malformed.
//
// Pre-allocating out's capacity (a typical chunk decodes to 32-4096 bytes)
// avoids most reallocations; that's a caller-side tuning knob, not part of
// this function's contract.
func DecompressInto(src []byte, offset int, out []byte) (Output, int, error) {
	start := offset
	newFrom := len(out)
	cu := &cursor{c: src}

	for {
		b, err := cu.byteAt(offset)
		if err != nil {
			return Output{buf: out, newFrom: newFrom}, offset - start, err
		}
		if b == terminator {
			offset++
			break
		}

		var disp int
		out, disp, err = dispatch[b>>4](cu, offset, out)
		if err != nil {
			return Output{buf: out, newFrom: newFrom}, offset - start, err
		}
		offset += disp
	}

	return Output{buf: out, newFrom: newFrom}, offset - start, nil
}
