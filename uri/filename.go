package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparser/internal/errorutil"
	"github.com/ghettovoice/uriparser/internal/grammar"
	"github.com/ghettovoice/uriparser/internal/util"
)

func shouldEscapeFilenameChar(c byte) bool { return c != '/' && !grammar.IsUnreserved(c) }

func escapeFilename(s string) string { return grammar.EscapeAll(s, shouldEscapeFilenameChar) }

// FilenameToURIString converts a native filename into URI text.
// Absolute names become "file:" URIs, relative names become relative references.
//
// POSIX:
//
//	/x y/z      -> file:///x%20y/z
//	a b         -> a%20b
//
// Windows:
//
//	C:\a b\c    -> file:///C:/a%20b/c
//	\\host\s\x  -> file://host/s/x
//	a\b         -> a/b
//
// Windows drive-relative names like "C:foo" and rooted names without a drive
// can not be expressed and fail with [ErrConversion].
// The empty name fails with [ErrInvalidArgument].
func FilenameToURIString(name string, windows bool) (string, error) {
	if name == "" {
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("empty filename"))
	}
	if windows {
		return errtrace.Wrap2(windowsFilenameToURIString(name))
	}
	if strings.HasPrefix(name, "/") {
		return "file://" + escapeFilename(name), nil
	}
	return escapeFilename(name), nil
}

func windowsFilenameToURIString(name string) (string, error) {
	switch {
	case strings.HasPrefix(name, `\\`):
		return "file://" + escapeFilename(toSlash(name[2:])), nil
	case hasDrive(name):
		if len(name) == 2 || name[2] != '\\' && name[2] != '/' {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, "drive-relative filename %q", name))
		}
		return "file:///" + name[:2] + escapeFilename(toSlash(name[2:])), nil
	case strings.HasPrefix(name, `\`) || strings.HasPrefix(name, "/"):
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, "filename %q has no drive", name))
	default:
		return escapeFilename(toSlash(name)), nil
	}
}

// URIStringToFilename converts URI text produced by [FilenameToURIString] back into a native filename.
// Only "file" URIs and relative references are accepted, anything else fails with [ErrConversion].
func URIStringToFilename(s string, windows bool) (string, error) {
	u, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, err))
	}
	if u.Scheme != "" && !util.EqFold(u.Scheme, "file") {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, "unsupported scheme %q", u.Scheme))
	}
	if u.Scheme != "" && !u.HasAuthority && !u.AbsolutePath {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, "relative path in %q", s))
	}

	remote := u.HasAuthority && u.Host != "" && !util.EqFold(u.Host, "localhost")
	name := grammar.Unescape(u.Path())
	if !windows {
		if remote {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, "remote host %q", u.Host))
		}
		return name, nil
	}

	switch {
	case remote:
		return `\\` + grammar.Unescape(u.Host) + toBackslash(name), nil
	case u.HasAuthority || u.AbsolutePath:
		name = strings.TrimPrefix(name, "/")
		if !hasDrive(name) || len(name) > 2 && name[2] != '/' {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrConversion, "path %q has no drive", u.Path()))
		}
		if len(name) == 2 {
			return name + `\`, nil
		}
		return toBackslash(name), nil
	default:
		return toBackslash(name), nil
	}
}

func hasDrive(s string) bool { return len(s) >= 2 && grammar.IsAlpha(s[0]) && s[1] == ':' }

func toSlash(s string) string { return strings.ReplaceAll(s, `\`, "/") }

func toBackslash(s string) string { return strings.ReplaceAll(s, "/", `\`) }
