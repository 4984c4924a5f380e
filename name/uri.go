package name

import (
	"runtime"
	"strings"

	"github.com/mwantia/vfsname/data/errors"
)

const hexDigits = "0123456789abcdef"

// driveLetters disables single-letter schemes so "C:/dir" stays a path.
var driveLetters = runtime.GOOS == "windows"

// ExtractScheme splits uri into its scheme and the remainder after the
// colon. ok is false when uri carries no scheme.
func ExtractScheme(uri string) (scheme, rest string, ok bool) {
	for pos := 0; pos < len(uri); pos++ {
		ch := uri[pos]
		if ch == ':' {
			if pos == 0 || (pos == 1 && driveLetters) {
				return "", uri, false
			}
			return uri[:pos], uri[pos+1:], true
		}
		if isAlpha(ch) {
			continue
		}
		if pos > 0 && (isDigit(ch) || ch == '+' || ch == '-' || ch == '.') {
			continue
		}
		break
	}

	return "", uri, false
}

// ExtractSchemeFrom is ExtractScheme with a list of known schemes that
// are matched first, case-insensitively.
func ExtractSchemeFrom(schemes []string, uri string) (scheme, rest string, ok bool) {
	for _, known := range schemes {
		if len(uri) > len(known) && uri[len(known)] == ':' && strings.EqualFold(uri[:len(known)], known) {
			return known, uri[len(known)+1:], true
		}
	}
	return ExtractScheme(uri)
}

// ExtractFirstElement splits off the first path element of name,
// ignoring a leading separator.
func ExtractFirstElement(name string) (first, rest string) {
	if name == "" {
		return "", ""
	}

	start := 0
	if name[0] == separatorChar {
		start = 1
	}

	if pos := strings.IndexByte(name[start:], separatorChar); pos >= 0 {
		return name[start : start+pos], name[:start] + name[start+pos+1:]
	}
	return name[start:], ""
}

// ExtractQueryString splits name at the first '?'.
func ExtractQueryString(name string) (path, query string, ok bool) {
	if pos := strings.IndexByte(name, '?'); pos >= 0 {
		return name[:pos], name[pos+1:], true
	}
	return name, "", false
}

// Decode replaces every %XX escape with the byte it encodes.
func Decode(encoded string) (string, error) {
	if !strings.ContainsRune(encoded, '%') {
		return encoded, nil
	}

	var b strings.Builder
	b.Grow(len(encoded))

	for i := 0; i < len(encoded); i++ {
		ch := encoded[i]
		if ch != '%' {
			b.WriteByte(ch)
			continue
		}

		value, err := decodeEscape(encoded, i)
		if err != nil {
			return "", err
		}
		b.WriteByte(value)
		i += 2
	}

	return b.String(), nil
}

// CheckURIEncoding fails if uri contains a malformed escape sequence.
func CheckURIEncoding(uri string) error {
	_, err := Decode(uri)
	return err
}

// Encode escapes '%' and every byte of reserved found in decoded.
func Encode(decoded string, reserved ...byte) string {
	return encodeFunc(decoded, func(ch byte) bool {
		return strings.IndexByte(string(reserved), ch) >= 0
	})
}

// CanonicalizePath decodes every escape that needs no encoding and
// encodes every character the encode predicate asks for, so equivalent
// spellings of a path produce the same string.
func CanonicalizePath(path string, encode func(byte) bool) (string, error) {
	var b strings.Builder
	b.Grow(len(path))

	for i := 0; i < len(path); i++ {
		ch := path[i]
		if ch == '%' {
			value, err := decodeEscape(path, i)
			if err != nil {
				return "", err
			}
			if value == '%' || (encode != nil && encode(value)) {
				// Reserved, keep it escaped.
				b.WriteString(path[i : i+3])
			} else {
				b.WriteByte(value)
			}
			i += 2
			continue
		}

		if encode != nil && encode(ch) {
			writeEscape(&b, ch)
			continue
		}
		b.WriteByte(ch)
	}

	return b.String(), nil
}

func encodeFunc(decoded string, reserved func(byte) bool) string {
	var b strings.Builder
	b.Grow(len(decoded))

	for i := 0; i < len(decoded); i++ {
		ch := decoded[i]
		if ch == '%' || reserved(ch) {
			writeEscape(&b, ch)
			continue
		}
		b.WriteByte(ch)
	}

	return b.String()
}

func decodeEscape(s string, i int) (byte, error) {
	if i+2 >= len(s) {
		return 0, errors.InvalidEscapeSequence(nil, s)
	}

	hi, ok1 := unhex(s[i+1])
	lo, ok2 := unhex(s[i+2])
	if !ok1 || !ok2 {
		return 0, errors.InvalidEscapeSequence(nil, s)
	}

	return hi<<4 | lo, nil
}

func writeEscape(b *strings.Builder, ch byte) {
	b.WriteByte('%')
	b.WriteByte(hexDigits[ch>>4])
	b.WriteByte(hexDigits[ch&0x0f])
}

func unhex(ch byte) (byte, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0', true
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10, true
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
