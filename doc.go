// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thracia776/fe5comp

/*
Package fe5comp implements the graphics/data decompression codec used
throughout the Fire Emblem Thracia 776 ROM (a nybble-command LZ-family
format with nine command families, including back-references into both the
live output and the compressed input itself). Decode-only: the format has
no encoder in this package, by design.

# Decompress

	out, consumed, err := fe5comp.Decompress(rom, offset)
	if err != nil {
		var de *fe5comp.DecodeError
		if errors.As(err, &de) {
			log.Fatalf("malformed stream: %v", de)
		}
	}
	data := out.Bytes()

To append into an existing buffer (and later recover only the newly
decoded bytes):

	buf := make([]byte, 0, 4096)
	out, consumed, err := fe5comp.DecompressInto(rom, offset, buf)
	fresh := out.New()

# Back-to-back chunks

	out, starts, err := fe5comp.DecompressChunks(rom, offset, 0)
*/
package fe5comp
