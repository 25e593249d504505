package uri_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/uriparser/uri"
)

func TestEncodeWWWForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		pairs []uri.FormPair
		want  string
	}{
		{"nil", nil, ""},
		{"simple", []uri.FormPair{uri.Pair("a", "1"), uri.Pair("b", "2"), uri.Pair("c", "x yz")}, "a=1&b=2&c=x+yz"},
		{"key only", []uri.FormPair{uri.KeyOnly("f"), uri.Pair("e", "")}, "f&e="},
		{"reserved", []uri.FormPair{uri.Pair("a&b", "c=d+e")}, "a%26b=c%3Dd%2Be"},
		{"utf-8", []uri.FormPair{uri.Pair("é", "~")}, "%C3%A9=~"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uri.EncodeWWWForm(c.pairs); got != c.want {
				t.Errorf("uri.EncodeWWWForm(%+v) = %q, want %q", c.pairs, got, c.want)
			}
		})
	}
}

func TestEncodeWWWFormAny(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		val     any
		want    string
		wantErr error
	}{
		{"pairs", []uri.FormPair{uri.Pair("a", "1")}, "a=1", nil},
		{"string lists", [][]string{{"a", "1"}, {"b"}}, "a=1&b", nil},
		{"url values", url.Values{"b": {"2"}, "a": {"1", "3"}}, "", uri.ErrUnsupportedInput},
		{"multi map", map[string][]string{"z": {"x y"}}, "", uri.ErrUnsupportedInput},
		{"map", map[string]string{"k": "v w"}, "", uri.ErrUnsupportedInput},
		{"long list", [][]string{{"a", "b", "c"}}, "", uri.ErrUnsupportedInput},
		{"empty list", [][]string{{}}, "", uri.ErrUnsupportedInput},
		{"number", 42, "", uri.ErrUnsupportedInput},
		{"nil", nil, "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.EncodeWWWFormAny(c.val)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Errorf("uri.EncodeWWWFormAny(%v) error = %v, want %v", c.val, err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("uri.EncodeWWWFormAny(%v) error = %v, want nil", c.val, err)
			}
			if got != c.want {
				t.Errorf("uri.EncodeWWWFormAny(%v) = %q, want %q", c.val, got, c.want)
			}
		})
	}
}

func TestDecodeWWWForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []uri.FormPair
	}{
		{"empty", "", nil},
		{"duplicates and empties", "a=1&a=2&b=&c", []uri.FormPair{
			uri.Pair("a", "1"),
			uri.Pair("a", "2"),
			uri.Pair("b", ""),
			uri.KeyOnly("c"),
		}},
		{"plus and percent", "x+y=%41%2B", []uri.FormPair{uri.Pair("x y", "A+")}},
		{"empty pieces", "&&a=1&", []uri.FormPair{uri.Pair("a", "1")}},
		{"equals in value", "a=b=c", []uri.FormPair{uri.Pair("a", "b=c")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := uri.DecodeWWWForm(c.input)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.DecodeWWWForm(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
			if c.want != nil {
				if again := uri.DecodeWWWForm(uri.EncodeWWWForm(got)); !cmp.Equal(again, got) {
					t.Errorf("uri.DecodeWWWForm(uri.EncodeWWWForm(%+v)) = %+v", got, again)
				}
			}
		})
	}
}

func TestURI_QueryPairs(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://h/?a=1&b")
	want := []uri.FormPair{uri.Pair("a", "1"), uri.KeyOnly("b")}
	if diff := cmp.Diff(u.QueryPairs(), want); diff != "" {
		t.Errorf("uri.QueryPairs() = %+v, want %+v\ndiff (-got +want):\n%v", u.QueryPairs(), want, diff)
	}

	u.SetQueryPairs([]uri.FormPair{uri.Pair("q", "a b")})
	if got, want := u.String(), "http://h/?q=a+b"; got != want {
		t.Errorf("uri.SetQueryPairs(); uri.String() = %q, want %q", got, want)
	}

	if got := uri.MustParse("http://h/").QueryPairs(); got != nil {
		t.Errorf("uri.QueryPairs() without query = %+v, want nil", got)
	}
}
