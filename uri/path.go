package uri

import "strings"

// SplitPath splits the path p into segments on "/".
// The leading "/" is not a segment, it is reported with absolute flag.
// A trailing "/" yields a trailing empty segment:
//
//	""     -> [],         false
//	"/"    -> [],         true
//	"a/b"  -> ["a" "b"],  false
//	"/a/"  -> ["a" ""],   true
//	"//a"  -> ["" "a"],   true
func SplitPath(p string) (segments []string, absolute bool) {
	if p == "" {
		return nil, false
	}
	if p[0] == '/' {
		absolute = true
		p = p[1:]
		if p == "" {
			return nil, true
		}
	}
	return strings.Split(p, "/"), absolute
}

// PathSegments returns segments of the path p, see [SplitPath].
func PathSegments(p string) []string {
	segs, _ := SplitPath(p)
	return segs
}

// JoinPath is the inverse of [SplitPath].
// A non-empty path of a URI with authority always starts with "/".
func JoinPath(segments []string, absolute, hasAuthority bool) string {
	p := strings.Join(segments, "/")
	if absolute || hasAuthority && p != "" {
		return "/" + p
	}
	return p
}
