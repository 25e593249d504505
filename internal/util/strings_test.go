package util_test

import (
	"testing"

	"github.com/ghettovoice/uriparser/internal/util"
)

func TestLCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lower", "example.com", "example.com"},
		{"upper", "EXAMPLE.Com", "example.com"},
		{"pct-encoded", "A%C3%89", "a%c3%89"},
		{"non-ascii kept", "ÉX", "Éx"},
		{"invalid utf-8 kept", "A\xffB", "a\xffb"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := util.LCase(c.in); got != c.want {
				t.Errorf("util.LCase(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEqFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s1, s2 string
		want   bool
	}{
		{"", "", true},
		{"HTTP", "http", true},
		{"File", "fILE", true},
		{"http", "https", false},
		{"é", "É", false},
		{"k", "K", false},
	}

	for _, c := range cases {
		t.Run(c.s1+"/"+c.s2, func(t *testing.T) {
			t.Parallel()

			if got := util.EqFold(c.s1, c.s2); got != c.want {
				t.Errorf("util.EqFold(%q, %q) = %v, want %v", c.s1, c.s2, got, c.want)
			}
		})
	}
}
