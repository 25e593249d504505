// Package grammar implements the RFC 3986 URI-reference grammar and
// percent-encoding helpers shared by the uri package.
package grammar

//go:generate errtrace -w .

import "github.com/ghettovoice/abnf"

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrMalformedInput Error = "malformed input"

// IsURIReference reports whether s is entirely matched by the URI-reference rule.
func IsURIReference[T ~string | ~[]byte](s T) bool {
	_, ok := scanURIReference(string(s), new(Reference))
	return ok
}

// IsHost reports whether s is entirely matched by the host rule.
func IsHost[T ~string | ~[]byte](s T) bool {
	str := string(s)
	end, ok := scanHost(str, 0, len(str))
	return ok && end == len(str)
}

// IsScheme reports whether s is a syntactically valid scheme name.
func IsScheme[T ~string | ~[]byte](s T) bool {
	return len(s) > 0 && scanScheme(string(s)) == len(s)
}
