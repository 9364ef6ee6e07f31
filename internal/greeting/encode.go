package greeting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// EncodeBody serializes Body{Message: message} in the wire form clients already
// parse: `{"message": "..."}` with a single space after the colon and every
// code point outside printable ASCII escaped as \uXXXX.
func EncodeBody(message string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(message); err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}
	quoted := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	var b strings.Builder
	b.Grow(len(quoted) + 14)
	b.WriteString(`{"message": `)
	writeASCII(&b, quoted)
	b.WriteByte('}')
	return b.String(), nil
}

// writeASCII copies an already quoted JSON string, escaping DEL and non-ASCII
// runes. Input is valid UTF-8 because encoding/json replaces invalid bytes.
func writeASCII(b *strings.Builder, quoted []byte) {
	for i := 0; i < len(quoted); {
		c := quoted[i]
		if c < utf8.RuneSelf && c != 0x7f {
			b.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRune(quoted[i:])
		i += size
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			writeUnicodeEscape(b, r1)
			writeUnicodeEscape(b, r2)
			continue
		}
		writeUnicodeEscape(b, r)
	}
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[(r>>12)&0xf])
	b.WriteByte(hexDigits[(r>>8)&0xf])
	b.WriteByte(hexDigits[(r>>4)&0xf])
	b.WriteByte(hexDigits[r&0xf])
}
