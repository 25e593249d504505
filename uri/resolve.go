package uri

import (
	"strconv"

	"github.com/ghettovoice/uriparser/internal/grammar"
	"github.com/ghettovoice/uriparser/internal/util"
)

// RemoveDotSegments removes "." and ".." segments (RFC 3986 Section 5.2.4).
// A dot segment at the end leaves a trailing empty segment, so "a/b/.." becomes "a/".
// ".." never climbs above the root, leading ".." segments are dropped.
// The result is always backed by a fresh array.
func RemoveDotSegments(segments []string, absolute bool) []string {
	return removeDotSegments(segments, absolute, false)
}

// removeDotSegments with keepLeading set preserves ".." segments that climb
// above the start of a relative path, e.g. "../a" stays as is.
func removeDotSegments(segments []string, absolute, keepLeading bool) []string {
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		last := i == len(segments)-1
		switch seg {
		case ".":
			if last {
				out = append(out, "")
			}
		case "..":
			switch {
			case len(out) > 0 && (!keepLeading || out[len(out)-1] != ".."):
				out = out[:len(out)-1]
			case keepLeading && !absolute:
				out = append(out, "..")
				continue
			}
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, seg)
		}
	}
	return out
}

// Merge resolves the reference ref against the base URI and returns
// the result as a new URI (RFC 3986 Section 5.2.2).
// Neither base nor ref is modified.
func Merge(base, ref *URI) *URI {
	if base == nil {
		return ref.Clone()
	}
	return base.Clone().Merge(ref)
}

// Merge resolves the reference ref against u in place and returns u.
// ref is never modified and shares no storage with the result.
func (u *URI) Merge(ref *URI) *URI {
	if ref == nil {
		return u
	}

	switch {
	case ref.Scheme != "":
		*u = *ref.Clone()
		u.Segments = RemoveDotSegments(ref.Segments, ref.AbsolutePath || ref.hasAuthority())
		return u
	case ref.hasAuthority():
		u.setAuthority(ref)
		u.Segments = RemoveDotSegments(ref.Segments, true)
		u.AbsolutePath = ref.AbsolutePath
		u.Query, u.HasQuery = ref.Query, ref.HasQuery
	case len(ref.Segments) == 0 && !ref.AbsolutePath:
		if ref.HasQuery {
			u.Query, u.HasQuery = ref.Query, true
		}
	case ref.AbsolutePath:
		u.Segments = RemoveDotSegments(ref.Segments, true)
		u.AbsolutePath = true
		u.Query, u.HasQuery = ref.Query, ref.HasQuery
	default:
		var merged []string
		if len(u.Segments) > 0 {
			merged = append(merged, u.Segments[:len(u.Segments)-1]...)
		}
		merged = append(merged, ref.Segments...)
		u.AbsolutePath = u.AbsolutePath || u.hasAuthority()
		u.Segments = RemoveDotSegments(merged, u.AbsolutePath)
		u.Query, u.HasQuery = ref.Query, ref.HasQuery
	}
	u.Fragment, u.HasFragment = ref.Fragment, ref.HasFragment
	return u
}

// Plus is like [URI.Merge] but leaves u untouched and returns a new URI.
func (u *URI) Plus(ref *URI) *URI { return Merge(u, ref) }

func (u *URI) setAuthority(src *URI) {
	u.HasAuthority = src.hasAuthority()
	u.UserInfo, u.HasUserInfo = src.UserInfo, src.HasUserInfo
	u.Host = src.Host
	u.Port, u.HasPort = src.Port, src.HasPort
}

// RouteOptions are options of [URI.RouteFrom].
type RouteOptions struct {
	// DomainRoot makes RouteFrom produce an absolute-path reference
	// instead of a relative-path one.
	DomainRoot bool
}

// RouteFrom computes a reference that resolves to u against base,
// i.e. base.Merge(u.RouteFrom(base, nil)) is equivalent to u.
// If scheme, authority or path kind of u and base differ, a copy of u is returned.
// The result never shares storage with u or base.
func (u *URI) RouteFrom(base *URI, opts *RouteOptions) *URI {
	if u == nil {
		return nil
	}
	if opts == nil {
		opts = &RouteOptions{}
	}
	if base == nil ||
		!util.EqFold(u.Scheme, base.Scheme) ||
		!sameAuthority(u, base) ||
		u.AbsolutePath != base.AbsolutePath ||
		!u.AbsolutePath && !u.hasAuthority() {
		return u.Clone()
	}

	ref := &URI{
		Query:       u.Query,
		HasQuery:    u.HasQuery,
		Fragment:    u.Fragment,
		HasFragment: u.HasFragment,
	}

	if sameSegments(u.Segments, base.Segments) {
		switch {
		case u.HasQuery == base.HasQuery && u.Query == base.Query:
			ref.Query, ref.HasQuery = "", false
			return ref
		case u.HasQuery:
			return ref
		}
		// base query can be dropped only by repeating the last segment
		if opts.DomainRoot {
			ref.Segments, ref.AbsolutePath = util.CloneStrings(u.Segments), true
			return ref
		}
		if n := len(u.Segments); n > 0 && u.Segments[n-1] != "" {
			ref.Segments = []string{u.Segments[n-1]}
		} else {
			ref.Segments = []string{".", ""}
		}
		return ref
	}

	if opts.DomainRoot {
		ref.Segments, ref.AbsolutePath = util.CloneStrings(u.Segments), true
		return ref
	}

	var dir []string
	if len(base.Segments) > 0 {
		dir = base.Segments[:len(base.Segments)-1]
	}
	target := u.Segments
	if len(target) == 0 {
		// the root path "/" is the directory with an empty last segment
		target = []string{""}
	}
	n := 0
	for n < len(dir) && n < len(target)-1 && sameSegment(dir[n], target[n]) {
		n++
	}
	segs := make([]string, 0, len(dir)-n+len(target)-n)
	for range len(dir) - n {
		segs = append(segs, "..")
	}
	segs = append(segs, target[n:]...)
	if len(segs) == 0 || len(segs) == 1 && segs[0] == "" {
		segs = []string{".", ""}
	}
	ref.Segments = segs
	return ref
}

// Minus is an alias for [URI.RouteFrom] with default options.
func (u *URI) Minus(base *URI) *URI { return u.RouteFrom(base, nil) }

func sameAuthority(u1, u2 *URI) bool {
	if u1.hasAuthority() != u2.hasAuthority() {
		return false
	}
	if !u1.hasAuthority() {
		return true
	}
	return util.EqFold(u1.Host, u2.Host) &&
		u1.HasUserInfo == u2.HasUserInfo &&
		u1.UserInfo == u2.UserInfo &&
		effectivePort(u1) == effectivePort(u2)
}

// effectivePort returns the canonical port text, the scheme default port if the port is absent or empty.
func effectivePort(u *URI) string {
	if u.HasPort && u.Port != "" {
		return canonicalPort(u.Port)
	}
	if p, ok := DefaultPort(u.Scheme); ok {
		return strconv.FormatUint(uint64(p), 10)
	}
	return ""
}

func sameSegments(s1, s2 []string) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if !sameSegment(s1[i], s2[i]) {
			return false
		}
	}
	return true
}

func sameSegment(s1, s2 string) bool {
	return s1 == s2 || grammar.NormalizePercentEncoding(s1, true) == grammar.NormalizePercentEncoding(s2, true)
}
