// Package bytelit renders raw bytes as a C++ aggregate initializer for an
// unsigned char array and parses such initializers back.
package bytelit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPerLine is the number of values emitted on each initializer line.
const DefaultPerLine = 16

const indent = "    "

// ErrMalformedLiteral indicates input that Decode cannot parse.
var ErrMalformedLiteral = errors.New("malformed byte literal")

// Encode renders data with DefaultPerLine values per line.
func Encode(data []byte) string {
	return EncodeWidth(data, DefaultPerLine)
}

// EncodeWidth renders data as "{}" when empty, otherwise as a brace-delimited
// block of decimal values, perLine per line, each followed by a comma.
// perLine values below 1 fall back to DefaultPerLine.
func EncodeWidth(data []byte, perLine int) string {
	if len(data) == 0 {
		return "{}"
	}
	if perLine < 1 {
		perLine = DefaultPerLine
	}

	var b strings.Builder
	// "255, " is the widest value; add room for braces and line breaks.
	b.Grow(len(data)*5 + (len(data)/perLine+1)*(len(indent)+1) + 4)

	b.WriteString("{\n")
	for i, v := range data {
		col := i % perLine
		if col == 0 {
			b.WriteString(indent)
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
		b.WriteByte(',')
		if col == perLine-1 || i == len(data)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('}')

	return b.String()
}

// Decode parses a literal produced by Encode back into bytes.
// Whitespace and line layout are ignored; a trailing comma is allowed.
func Decode(lit string) ([]byte, error) {
	s := strings.TrimSpace(lit)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("%w: missing braces", ErrMalformedLiteral)
	}

	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return []byte{}, nil
	}
	body = strings.TrimSuffix(body, ",")

	parts := strings.Split(body, ",")
	out := make([]byte, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d %q", ErrMalformedLiteral, i, p)
		}
		out = append(out, byte(v))
	}

	return out, nil
}
