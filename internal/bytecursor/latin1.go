package bytecursor

import "strings"

// DecodeLatin1 decodes b as ISO-8859-1 text. Every byte maps to the
// code point of the same value, so decoding never fails and re-encoding
// the result reproduces b exactly.
func DecodeLatin1(b []byte) string {
	// ASCII-only payloads need no transcoding.
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// AppendLatin1 appends s encoded as ISO-8859-1. Runes outside the
// Latin-1 range encode as '?'.
func AppendLatin1(dst []byte, s string) []byte {
	for _, r := range s {
		if r > 0xFF {
			r = '?'
		}
		dst = append(dst, byte(r))
	}
	return dst
}

// AppendTerminated appends s as ISO-8859-1 followed by a 0x00
// terminator, the inverse of Cursor.TakeTerminatedString.
func AppendTerminated(dst []byte, s string) []byte {
	dst = AppendLatin1(dst, s)
	return append(dst, 0x00)
}
