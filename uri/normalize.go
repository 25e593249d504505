package uri

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/uriparser/internal/grammar"
	"github.com/ghettovoice/uriparser/internal/util"
)

// NormalizeOptions selects the components touched by [URI.Normalize].
type NormalizeOptions struct {
	Scheme   bool // lower-case the scheme
	UserInfo bool // upper-case percent-encoding hex digits
	Host     bool // lower-case the host, drop empty and default ports
	Path     bool // remove dot segments, decode percent-encoded unreserved characters
	Query    bool // upper-case percent-encoding hex digits
	Fragment bool // upper-case percent-encoding hex digits
}

// DefaultNormalizeOptions returns options with every component selected.
func DefaultNormalizeOptions() *NormalizeOptions {
	return &NormalizeOptions{
		Scheme:   true,
		UserInfo: true,
		Host:     true,
		Path:     true,
		Query:    true,
		Fragment: true,
	}
}

var defaultPorts = map[string]uint16{
	"ftp":    21,
	"gemini": 1965,
	"gopher": 70,
	"http":   80,
	"https":  443,
	"ssh":    22,
	"telnet": 23,
	"ws":     80,
	"wss":    443,
}

// DefaultPort returns the well-known port of the scheme.
func DefaultPort(scheme string) (uint16, bool) {
	p, ok := defaultPorts[util.LCase(scheme)]
	return p, ok
}

// Normalize normalizes the URI in place (RFC 3986 Section 6.2.2) and returns it.
// If opts is nil, [DefaultNormalizeOptions] are used.
// An empty path is left as is, no "/" is added.
func (u *URI) Normalize(opts *NormalizeOptions) *URI {
	if u == nil {
		return nil
	}
	if opts == nil {
		opts = DefaultNormalizeOptions()
	}

	if opts.Scheme {
		u.Scheme = util.LCase(u.Scheme)
	}
	if opts.UserInfo && u.HasUserInfo {
		u.UserInfo = grammar.NormalizePercentEncoding(u.UserInfo, false)
	}
	if opts.Host && u.hasAuthority() {
		u.Host = grammar.NormalizePercentEncoding(util.LCase(u.Host), false)
		if u.HasPort && isDefaultPort(u.Scheme, u.Port) {
			u.Port, u.HasPort = "", false
		}
	}
	if opts.Path {
		segs := make([]string, len(u.Segments))
		for i, seg := range u.Segments {
			segs[i] = grammar.NormalizePercentEncoding(seg, true)
		}
		absolute := u.AbsolutePath || u.hasAuthority() && len(segs) > 0
		u.Segments = removeDotSegments(segs, absolute, u.Scheme == "" && !absolute)
		if len(u.Segments) == 1 && u.Segments[0] == "" && !absolute {
			if u.Scheme == "" {
				// "./" still refers to the base directory
				u.Segments = []string{".", ""}
			} else {
				u.Segments = nil
			}
		}
		u.AbsolutePath = absolute
	}
	if opts.Query && u.HasQuery {
		u.Query = grammar.NormalizePercentEncoding(u.Query, false)
	}
	if opts.Fragment && u.HasFragment {
		u.Fragment = grammar.NormalizePercentEncoding(u.Fragment, false)
	}
	return u
}

// Normalize returns a normalized copy of u, see [URI.Normalize].
func Normalize(u *URI, opts *NormalizeOptions) *URI {
	return u.Clone().Normalize(opts)
}

func isDefaultPort(scheme, port string) bool {
	if port == "" {
		return true
	}
	def, ok := DefaultPort(scheme)
	return ok && canonicalPort(port) == strconv.FormatUint(uint64(def), 10)
}

// canonicalPort strips leading zeros of the port digits.
// Ports of any length are kept, so out of range ports never match a valid one.
func canonicalPort(port string) string {
	if p := strings.TrimLeft(port, "0"); p != "" {
		return p
	}
	return "0"
}
