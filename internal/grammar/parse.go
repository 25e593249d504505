package grammar

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// SyntaxError is returned when the input is not entirely matched by the grammar.
type SyntaxError struct {
	// Input is the whole parsed text.
	Input string
	// Pos is the offset of the first byte that was not consumed.
	Pos int
}

// Remainder returns the unparsed tail of the input.
func (e *SyntaxError) Remainder() string {
	if e == nil || e.Pos < 0 || e.Pos > len(e.Input) {
		return ""
	}
	return e.Input[e.Pos:]
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: URI parse failed at: `%s'", ErrMalformedInput, e.Remainder())
}

func (*SyntaxError) Unwrap() error { return ErrMalformedInput }

func (*SyntaxError) Grammar() bool { return true }

// Reference is a URI reference split into raw components (RFC 3986 Section 4.1).
// Has* flags tell an empty component from an absent one.
type Reference struct {
	Scheme string

	HasAuthority bool
	UserInfo     string
	HasUserInfo  bool
	Host         string
	Port         string
	HasPort      bool

	Path string

	Query       string
	HasQuery    bool
	Fragment    string
	HasFragment bool
}

// ParseURIReference parses s with the URI-reference rule.
// The input is split at the component delimiters first (RFC 3986 Appendix B),
// then every component is checked against its own rule, so the work is linear in the input length.
// The empty input is a valid relative reference.
func ParseURIReference[T ~string | ~[]byte](s T) (*Reference, error) {
	in := string(s)
	ref := new(Reference)
	if pos, ok := scanURIReference(in, ref); !ok {
		return nil, errtrace.Wrap(&SyntaxError{Input: in, Pos: pos})
	}
	return ref, nil
}

// scanURIReference fills ref and returns the end of the input,
// or the offset of the first unmatched byte and false.
func scanURIReference(s string, ref *Reference) (int, bool) {
	var pos int
	if i := scanScheme(s); i > 0 && i < len(s) && s[i] == ':' {
		ref.Scheme = s[:i]
		pos = i + 1
	}

	if strings.HasPrefix(s[pos:], "//") {
		start := pos + 2
		end := len(s)
		if i := strings.IndexAny(s[start:], "/?#"); i >= 0 {
			end = start + i
		}
		if i, ok := scanAuthority(s, start, end, ref); !ok {
			return i, false
		}
		ref.HasAuthority = true
		pos = end
	}

	start := pos
	pos = scanChars(s, pos, len(s), isPathChar)
	if ref.Scheme == "" && !ref.HasAuthority {
		// path-noscheme: the first segment must not look like a scheme
		seg := s[start:pos]
		if i := strings.IndexByte(seg, '/'); i >= 0 {
			seg = seg[:i]
		}
		if i := strings.IndexByte(seg, ':'); i >= 0 {
			return start + i, false
		}
	}
	ref.Path = s[start:pos]

	if pos < len(s) && s[pos] == '?' {
		start = pos + 1
		pos = scanChars(s, start, len(s), isQueryChar)
		ref.Query, ref.HasQuery = s[start:pos], true
	}
	if pos < len(s) && s[pos] == '#' {
		start = pos + 1
		pos = scanChars(s, start, len(s), isQueryChar)
		ref.Fragment, ref.HasFragment = s[start:pos], true
	}
	if pos < len(s) {
		return pos, false
	}
	return pos, true
}

// scanAuthority checks s[start:end] against the authority rule.
func scanAuthority(s string, start, end int, ref *Reference) (int, bool) {
	hostStart := start
	if i := strings.IndexByte(s[start:end], '@'); i >= 0 {
		if j := scanChars(s, start, start+i, isUserinfoChar); j < start+i {
			return j, false
		}
		ref.UserInfo, ref.HasUserInfo = s[start:start+i], true
		hostStart = start + i + 1
	}

	hostEnd, ok := scanHost(s, hostStart, end)
	if !ok {
		return hostEnd, false
	}
	ref.Host = s[hostStart:hostEnd]

	if hostEnd < end {
		if s[hostEnd] != ':' {
			return hostEnd, false
		}
		i := hostEnd + 1
		for i < end && IsDigit(s[i]) {
			i++
		}
		if i < end {
			return i, false
		}
		ref.Port, ref.HasPort = s[hostEnd+1:end], true
	}
	return end, true
}

// scanHost returns the end of the host that starts at s[i],
// or the offset of the first unmatched byte and false.
func scanHost(s string, i, end int) (int, bool) {
	if i < end && s[i] == '[' {
		j := strings.IndexByte(s[i:end], ']')
		if j < 0 {
			return i, false
		}
		if ip := s[i+1 : i+j]; !IsIPv6Address(ip) && !IsIPvFuture(ip) {
			return i, false
		}
		return i + j + 1, true
	}
	// IPv4address is a subset of reg-name
	return scanChars(s, i, end, isRegNameChar), true
}

func scanScheme(s string) int {
	if len(s) == 0 || !IsAlpha(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	return i
}

// scanChars skips the bytes allowed by the predicate and pct-encoded triplets
// starting at s[i], and returns the offset of the first other byte or end.
func scanChars(s string, i, end int, allow func(c byte) bool) int {
	for i < end {
		switch {
		case allow(s[i]):
			i++
		case s[i] == '%' && i+2 < end && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]):
			i += 3
		default:
			return i
		}
	}
	return end
}

func isSchemeChar(c byte) bool {
	return IsAlpha(c) || IsDigit(c) || c == '+' || c == '-' || c == '.'
}

func isUserinfoChar(c byte) bool { return IsUnreserved(c) || IsSubDelim(c) || c == ':' }

func isRegNameChar(c byte) bool { return IsUnreserved(c) || IsSubDelim(c) }

func isPathChar(c byte) bool { return IsPChar(c) || c == '/' }

func isQueryChar(c byte) bool { return IsPChar(c) || c == '/' || c == '?' }
