// Package uri parses, composes, resolves and normalizes URI references according to RFC 3986.
//
// # Parsing
//
// [Parse] splits the text into components with the RFC 3986 grammar in linear time
// and returns a [*URI]. The path is kept as a list of segments:
//
//	u, err := uri.Parse("http://user@example.com:8080/a/b?x=1#top")
//	if err != nil {
//	    var se *uri.SyntaxError
//	    if errors.As(err, &se) {
//	        log.Printf("stopped at %q", se.Remainder())
//	    }
//	}
//	// u.Scheme == "http", u.Host == "example.com", u.Segments == []string{"a", "b"}
//
// Text is not decoded while parsing, components hold the raw percent-encoded text.
// Another syntax can be plugged in with [ParseWith] and a custom [SyntaxParser].
//
// # Composing
//
// [URI.String] and [URI.RenderTo] assemble the text back.
// Parsing and then rendering returns the original text unchanged.
// A path that would be read back differently is prefixed with "./" or "/.".
//
// # Resolving
//
// [URI.Merge] resolves a reference against a base URI (RFC 3986 Section 5.2),
// [URI.RouteFrom] does the opposite and computes a reference from a base to a target:
//
//	base := uri.MustParse("file:///one/two/three")
//	target := uri.MustParse("file:///one/TWO")
//	target.RouteFrom(base, nil).String()                              // "../TWO"
//	target.RouteFrom(base, &uri.RouteOptions{DomainRoot: true}).String() // "/one/TWO"
//
// # Normalizing
//
// [URI.Normalize] applies the syntax-based normalization of RFC 3986 Section 6.2.2,
// [NormalizeOptions] select the components to touch.
//
// # Filenames and forms
//
// [FilenameToURIString] and [URIStringToFilename] convert between native POSIX or Windows
// filenames and URI text. [EncodeWWWForm] and [DecodeWWWForm] handle
// application/x-www-form-urlencoded payloads.
//
// # Thread Safety
//
// URIs are not safe for concurrent modification. Use [URI.Clone] to share them across goroutines.
package uri
