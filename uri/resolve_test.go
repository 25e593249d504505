package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparser/uri"
)

const rfcBase = "http://a/b/c/d;p?q"

func TestMerge(t *testing.T) {
	t.Parallel()

	// RFC 3986 Section 5.4
	cases := []struct {
		ref  string
		want string
	}{
		// normal examples
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
		// abnormal examples
		{"../../../g", "http://a/g"},
		{"../../../../g", "http://a/g"},
		{"/./g", "http://a/g"},
		{"/../g", "http://a/g"},
		{"g.", "http://a/b/c/g."},
		{".g", "http://a/b/c/.g"},
		{"g..", "http://a/b/c/g.."},
		{"..g", "http://a/b/c/..g"},
		{"./../g", "http://a/b/g"},
		{"./g/.", "http://a/b/c/g/"},
		{"g/./h", "http://a/b/c/g/h"},
		{"g/../h", "http://a/b/c/h"},
		{"g;x=1/./y", "http://a/b/c/g;x=1/y"},
		{"g;x=1/../y", "http://a/b/c/y"},
		{"g?y/./x", "http://a/b/c/g?y/./x"},
		{"g?y/../x", "http://a/b/c/g?y/../x"},
		{"g#s/./x", "http://a/b/c/g#s/./x"},
		{"g#s/../x", "http://a/b/c/g#s/../x"},
		{"http:g", "http:g"},
	}

	base := uri.MustParse(rfcBase)
	for _, c := range cases {
		t.Run(c.ref, func(t *testing.T) {
			t.Parallel()

			ref := uri.MustParse(c.ref)
			if got := uri.Merge(base, ref).String(); got != c.want {
				t.Errorf("uri.Merge(%q, %q) = %q, want %q", rfcBase, c.ref, got, c.want)
			}
			if got := base.Plus(ref).String(); got != c.want {
				t.Errorf("uri.Plus(%q) = %q, want %q", c.ref, got, c.want)
			}
		})
	}

	if got := base.String(); got != rfcBase {
		t.Errorf("base changed after merges: %q, want %q", got, rfcBase)
	}
}

func TestMerge_Identity(t *testing.T) {
	t.Parallel()

	cases := []string{
		"http://a/b/c/d;p?q",
		"http://example.com",
		"file:///etc/hosts",
		"s://u:p@h:0/p?q#f",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			t.Parallel()

			u := uri.MustParse(c)
			if got := uri.Merge(u, u).String(); got != c {
				t.Errorf("uri.Merge(%q, %q) = %q, want %q", c, c, got, c)
			}
		})
	}
}

func TestURI_Merge_InPlace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"rfc base", rfcBase, "../g/h?y#s", "http://a/b/g/h?y#s"},
		{"parent sibling", "file:///one/two/three", "../TWO", "file:///one/TWO"},
		{"absolute", rfcBase, "http://x/y/./z", "http://x/y/z"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			base := uri.MustParse(c.base)
			ref := uri.MustParse(c.ref)

			got := base.Merge(ref)
			if got != base {
				t.Fatalf("uri.Merge(ref) = %p, want receiver %p", got, base)
			}
			if got, want := base.String(), c.want; got != want {
				t.Errorf("uri.Merge(%q) = %q, want %q", c.ref, got, want)
			}
			if got, want := ref.String(), c.ref; got != want {
				t.Errorf("ref changed after merge: %q, want %q", got, want)
			}

			for i := range base.Segments {
				base.Segments[i] = "changed"
			}
			if got, want := ref.String(), c.ref; got != want {
				t.Errorf("ref shares storage with merge result: %q, want %q", got, want)
			}
		})
	}
}

func TestRemoveDotSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want string
	}{
		{"/a/b/c/./../../g", "/a/g"},
		{"mid/content=5/../6", "mid/6"},
		{"/./", "/"},
		{"/..", "/"},
		{"/a/..", "/"},
		{"/a/b/..", "/a/"},
		{"/a/b//..", "/a/b/"},
		{"a/..", ""},
		{"../a", "a"},
		{"/a/./b/.", "/a/b/"},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			t.Parallel()

			segs, abs := uri.SplitPath(c.path)
			got := uri.RemoveDotSegments(segs, abs)
			if p := uri.JoinPath(got, abs, false); p != c.want {
				t.Errorf("uri.RemoveDotSegments(%q, %v) = %q, want %q", segs, abs, p, c.want)
			}
		})
	}
}

func TestURI_RouteFrom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		target string
		base   string
		opts   *uri.RouteOptions
		want   string
	}{
		{"parent sibling", "file:///one/TWO", "file:///one/two/three", nil, "../TWO"},
		{"domain root", "file:///one/TWO", "file:///one/two/three", &uri.RouteOptions{DomainRoot: true}, "/one/TWO"},
		{"sibling", "http://a/b/c/g", rfcBase, nil, "g"},
		{"same", rfcBase, rfcBase, nil, ""},
		{"same path other query", "http://a/b/c/d;p?y", rfcBase, nil, "?y"},
		{"same path without query", "http://a/b/c/d;p", rfcBase, nil, "d;p"},
		{"same path with fragment", "http://a/b/c/d;p?q#s", rfcBase, nil, "#s"},
		{"directory", "http://a/b/c/", rfcBase, nil, "./"},
		{"root", "http://a/", rfcBase, nil, "../../"},
		{"root from top level", "http://a/", "http://a/x", nil, "./"},
		{"up two", "http://a/g", rfcBase, nil, "../../g"},
		{"deeper", "http://a/b/c/g/h", rfcBase, nil, "g/h"},
		{"colon segment", "http://a/b/c/a:b", rfcBase, nil, "./a:b"},
		{"default port", "http://a:80/b/c/g", rfcBase, nil, "g"},
		{"host case", "http://A/b/c/g", rfcBase, nil, "g"},
		{"percent-encoding equivalence", "http://a/~user/y", "http://a/%7Euser/x", nil, "y"},
		{"other scheme", "https://a/b/c/g", rfcBase, nil, "https://a/b/c/g"},
		{"other host", "http://x/b", rfcBase, nil, "http://x/b"},
		{"other port", "http://a:8080/b", rfcBase, nil, "http://a:8080/b"},
		{"leading zeros port", "http://a:0080/b/c/g", rfcBase, nil, "g"},
		{
			"out of range port",
			"http://a:99999999999999999999/b/x",
			"http://a/b/y",
			nil,
			"http://a:99999999999999999999/b/x",
		},
		{"out of range port on both", "http://a:99999999999999999999/b/x", "http://a:99999999999999999999/b/y", nil, "x"},
		{"other user", "http://u@a/b", rfcBase, nil, "http://u@a/b"},
		{"rootless", "mailto:a@b", "mailto:c@d", nil, "mailto:a@b"},
		{"no base", "http://a/b", "", nil, "http://a/b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			target := uri.MustParse(c.target)
			var base *uri.URI
			if c.base != "" {
				base = uri.MustParse(c.base)
			}
			got := target.RouteFrom(base, c.opts)
			if s := got.String(); s != c.want {
				t.Errorf("uri.RouteFrom(%q) = %q, want %q", c.base, s, c.want)
			}
			if got, want := target.String(), c.target; got != want {
				t.Errorf("target changed after route: %q, want %q", got, want)
			}
			if base != nil && uri.Merge(base, got).String() != uri.Normalize(target, nil).String() &&
				!uri.Merge(base, got).Equal(target) {
				t.Errorf("uri.Merge(%q, %q) = %q, want equivalent of %q", c.base, got, uri.Merge(base, got), c.target)
			}
		})
	}
}

func TestURI_Minus(t *testing.T) {
	t.Parallel()

	base := uri.MustParse("http://h/a/b/c")
	target := uri.MustParse("http://h/a/x")
	got := target.Minus(base)
	want := &uri.URI{Segments: []string{"..", "x"}}
	if diff := cmp.Diff(got, want, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("uri.Minus(%q) = %+v, want %+v\ndiff (-got +want):\n%v", base, got, want, diff)
	}

	got.Segments[1] = "y"
	if got, want := target.String(), "http://h/a/x"; got != want {
		t.Errorf("target shares storage with route: %q, want %q", got, want)
	}
}
