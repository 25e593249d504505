package uri

//go:generate errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/urimock/syntax_parser.go -package=urimock . SyntaxParser

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/uriparser/internal/constraints"
	"github.com/ghettovoice/uriparser/internal/errorutil"
	"github.com/ghettovoice/uriparser/internal/grammar"
	"github.com/ghettovoice/uriparser/internal/ioutil"
	"github.com/ghettovoice/uriparser/internal/util"
)

// URI represents a parsed URI reference (RFC 3986 Section 4.1).
//
// Optional components carry a presence flag, because an absent component
// differs from an empty one: "http://h?" has an empty query, "http://h" has none.
// The path is stored as a list of segments plus the AbsolutePath flag, see [SplitPath].
// The zero value is the empty relative reference.
type URI struct {
	Scheme string // scheme without ":", empty for relative references

	HasAuthority bool   // "//" is present, implied by a non-empty Host, HasUserInfo or HasPort
	UserInfo     string // raw user[:password], not decoded
	HasUserInfo  bool
	Host         string // raw host, IP-literals keep brackets
	Port         string // verbatim port text
	HasPort      bool

	Segments     []string
	AbsolutePath bool

	Query       string
	HasQuery    bool
	Fragment    string
	HasFragment bool
}

// Components is a raw seven-slot split of a URI reference as produced by a [SyntaxParser].
type Components struct {
	Scheme   string
	UserInfo string
	Host     string
	Port     string
	Path     string
	Query    string
	Fragment string

	HasAuthority bool
	HasUserInfo  bool
	HasPort      bool
	HasQuery     bool
	HasFragment  bool
}

// SyntaxParser splits URI reference text into raw components.
// Implementations must report malformed input with an error wrapping [ErrMalformedInput].
type SyntaxParser interface {
	ParseSyntax(s string) (*Components, error)
}

// DefaultSyntaxParser is the RFC 3986 grammar backed [SyntaxParser].
// It works in time linear in the input length.
var DefaultSyntaxParser SyntaxParser = grammarSyntaxParser{}

type grammarSyntaxParser struct{}

func (grammarSyntaxParser) ParseSyntax(s string) (*Components, error) {
	ref, err := grammar.ParseURIReference(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buildComponentsFromRef(ref), nil
}

func buildComponentsFromRef(ref *grammar.Reference) *Components {
	return &Components{
		Scheme:       ref.Scheme,
		UserInfo:     ref.UserInfo,
		Host:         ref.Host,
		Port:         ref.Port,
		Path:         ref.Path,
		Query:        ref.Query,
		Fragment:     ref.Fragment,
		HasAuthority: ref.HasAuthority,
		HasUserInfo:  ref.HasUserInfo,
		HasPort:      ref.HasPort,
		HasQuery:     ref.HasQuery,
		HasFragment:  ref.HasFragment,
	}
}

// Parse parses a URI reference from the given input s (string or []byte).
// The empty input is a valid empty relative reference.
// Malformed input is reported with [*SyntaxError].
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(ParseWith(DefaultSyntaxParser, string(s)))
}

// ParseWith parses a URI reference using the given syntax parser.
// If p is nil, [DefaultSyntaxParser] is used.
func ParseWith(p SyntaxParser, s string) (*URI, error) {
	if p == nil {
		p = DefaultSyntaxParser
	}
	c, err := p.ParseSyntax(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, err))
	}
	return FromComponents(c), nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) *URI { return util.Must2(Parse(s)) }

// FromComponents builds a URI from raw components.
func FromComponents(c *Components) *URI {
	if c == nil {
		return new(URI)
	}
	u := &URI{
		Scheme:       c.Scheme,
		HasAuthority: c.HasAuthority,
		Query:        c.Query,
		HasQuery:     c.HasQuery,
		Fragment:     c.Fragment,
		HasFragment:  c.HasFragment,
	}
	if c.HasAuthority {
		u.UserInfo, u.HasUserInfo = c.UserInfo, c.HasUserInfo
		u.Host = c.Host
		u.Port, u.HasPort = c.Port, c.HasPort
	}
	u.SetPath(c.Path)
	return u
}

// Components returns the raw component split of the URI.
func (u *URI) Components() *Components {
	if u == nil {
		return nil
	}
	return &Components{
		Scheme:       u.Scheme,
		UserInfo:     u.UserInfo,
		Host:         u.Host,
		Port:         u.Port,
		Path:         u.Path(),
		Query:        u.Query,
		Fragment:     u.Fragment,
		HasAuthority: u.hasAuthority(),
		HasUserInfo:  u.HasUserInfo,
		HasPort:      u.HasPort,
		HasQuery:     u.HasQuery,
		HasFragment:  u.HasFragment,
	}
}

// IsAbsolute reports whether the URI has a scheme.
func (u *URI) IsAbsolute() bool { return u != nil && u.Scheme != "" }

// IsRelative reports whether the URI is a relative reference.
func (u *URI) IsRelative() bool { return !u.IsAbsolute() }

// Path returns the path text assembled from the segments.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return JoinPath(u.Segments, u.AbsolutePath, u.hasAuthority())
}

// SetPath replaces the path with the segments of p.
func (u *URI) SetPath(p string) {
	u.Segments, u.AbsolutePath = SplitPath(p)
}

// hasAuthority reports whether the URI has an authority component.
func (u *URI) hasAuthority() bool {
	return u.HasAuthority || u.Host != "" || u.HasUserInfo || u.HasPort
}

// Authority returns the "[userinfo@]host[:port]" text, or false if the URI has no authority.
func (u *URI) Authority() (string, bool) {
	if u == nil || !u.hasAuthority() {
		return "", false
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.renderAuthority(sb) //nolint:errcheck
	return sb.String(), true
}

// Hostname returns the host without IP-literal brackets.
func (u *URI) Hostname() string {
	if u == nil {
		return ""
	}
	if len(u.Host) >= 2 && u.Host[0] == '[' && u.Host[len(u.Host)-1] == ']' {
		return u.Host[1 : len(u.Host)-1]
	}
	return u.Host
}

// PortNumber returns the numeric port.
// It reports false if the port is absent, empty or out of range.
func (u *URI) PortNumber() (uint16, bool) {
	if u == nil || !u.HasPort || u.Port == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(u.Port, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// User returns the user name and the password parts of the user info.
func (u *URI) User() (name, password string, hasPassword bool) {
	if u == nil || !u.HasUserInfo {
		return "", "", false
	}
	name, password, hasPassword = strings.Cut(u.UserInfo, ":")
	return name, password, hasPassword
}

// HostKind classifies the host component.
type HostKind uint8

const (
	HostNone HostKind = iota
	HostRegName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "none"
	}
}

// HostKind returns the kind of the host.
func (u *URI) HostKind() HostKind {
	if u == nil || !u.hasAuthority() {
		return HostNone
	}
	if h := u.Hostname(); h != u.Host {
		if len(h) > 0 && (h[0] == 'v' || h[0] == 'V') {
			return HostIPvFuture
		}
		return HostIPv6
	}
	if grammar.IsIPv4Address(u.Host) {
		return HostIPv4
	}
	return HostRegName
}

// IsValid checks whether the URI is syntactically valid.
// Registered host names must also be valid domain names.
func (u *URI) IsValid() bool {
	if u == nil {
		return false
	}
	if u.Scheme != "" && !grammar.IsScheme(u.Scheme) {
		return false
	}
	if u.hasAuthority() {
		if !grammar.IsHost(u.Host) {
			return false
		}
		if u.HostKind() == HostRegName && u.Host != "" {
			if _, ok := dns.IsDomainName(grammar.Unescape(u.Host)); !ok {
				return false
			}
		}
		for i := 0; i < len(u.Port); i++ {
			if !grammar.IsDigit(u.Port[i]) {
				return false
			}
		}
	}
	return grammar.IsURIReference(u.String())
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Segments = util.CloneStrings(u.Segments)
	return &u2
}

// RenderTo writes the URI text to the provided writer.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.Scheme != "" {
		cw.Print(u.Scheme, ":")
	}
	if u.hasAuthority() {
		cw.Print("//")
		cw.Call(u.renderAuthority)
	}
	cw.Print(u.renderPath())
	if u.HasQuery {
		cw.Print("?", u.Query)
	}
	if u.HasFragment {
		cw.Print("#", u.Fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderAuthority(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.HasUserInfo {
		cw.Print(u.UserInfo, "@")
	}
	cw.Print(u.Host)
	if u.HasPort {
		cw.Print(":", u.Port)
	}
	return errtrace.Wrap2(cw.Result())
}

// renderPath protects the path from being read back as another component (RFC 3986 Sections 4.2 and 5.3).
func (u *URI) renderPath() string {
	p := u.Path()
	if u.hasAuthority() || u.AbsolutePath {
		if !u.hasAuthority() && strings.HasPrefix(p, "//") {
			return "/." + p
		}
		return p
	}
	if len(u.Segments) > 1 && u.Segments[0] == "" ||
		u.Scheme == "" && len(u.Segments) > 0 && strings.IndexByte(u.Segments[0], ':') >= 0 {
		return "./" + p
	}
	return p
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.AnyValue(nil)
	}
	return slog.StringValue(u.String())
}

// Equal reports whether both URIs are equivalent after default normalization.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return Normalize(u, nil).String() == Normalize(other, nil).String()
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
