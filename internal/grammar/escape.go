package grammar

import (
	"bytes"

	"github.com/ghettovoice/uriparser/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed sequences are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isPctTriplet(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// EscapeAll escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// s is treated as raw text, so every '%' is escaped too.
// If shouldEscape is nil, everything except unreserved characters is escaped.
func EscapeAll[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '%' || shouldEscape(c) {
			writePct(&b, c)
		} else {
			b.WriteByte(c)
		}
	}
	return T(b.Bytes())
}

// NormalizePercentEncoding upper-cases hex digits of every percent-encoded triplet in s.
// If decodeUnreserved is true, triplets that encode unreserved characters are decoded (RFC 3986 Section 6.2.2.2).
func NormalizePercentEncoding[T constraints.Byteseq](s T, decodeUnreserved bool) T {
	if len(s) == 0 || bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isPctTriplet(s, i) {
			b.WriteByte(s[i])
			continue
		}
		c := unhex(s[i+1])<<4 | unhex(s[i+2])
		if decodeUnreserved && IsUnreserved(c) {
			b.WriteByte(c)
		} else {
			writePct(&b, c)
		}
		i += 2
	}
	return T(b.Bytes())
}

// EscapeFormComponent encodes s for application/x-www-form-urlencoded payloads:
// unreserved characters are kept, space becomes '+', everything else is percent-encoded.
func EscapeFormComponent[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ':
			b.WriteByte('+')
		case IsUnreserved(c):
			b.WriteByte(c)
		default:
			writePct(&b, c)
		}
	}
	return T(b.Bytes())
}

// UnescapeFormComponent reverses [EscapeFormComponent], '+' is decoded as space.
func UnescapeFormComponent[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			b.WriteByte(' ')
		case isPctTriplet(s, i):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func writePct(b *bytes.Buffer, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&15])
}

func isPctTriplet[T constraints.Byteseq](s T, i int) bool {
	return s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2])
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

func IsHexDigit(c byte) bool {
	return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsUnreserved checks on unreserved rule.
func IsUnreserved(c byte) bool {
	return IsAlpha(c) || IsDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// IsSubDelim checks on sub-delims rule.
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsPChar checks on pchar rule, pct-encoded excluded.
func IsPChar(c byte) bool {
	return IsUnreserved(c) || IsSubDelim(c) || c == ':' || c == '@'
}
