package emit

import "strings"

// CString returns s as a C++ narrow string literal, quotes included.
// Printable ASCII is kept except '"' and '\', which are backslash-escaped.
// Every other byte becomes a three-digit octal escape, which cannot run into
// a following digit the way a hex escape would.
func CString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte('0' + c>>6)
			b.WriteByte('0' + (c>>3)&7)
			b.WriteByte('0' + c&7)
		}
	}
	b.WriteByte('"')

	return b.String()
}
