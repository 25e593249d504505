package grammar

import (
	"fmt"

	"github.com/ghettovoice/abnf"
)

// RFC 3986, Appendix A.
// Only the bounded host sub-rules are expressed as ABNF operators,
// the repeating parts of a reference are scanned by [ParseURIReference].

func lit(s string) abnf.Operator { return abnf.Literal(`"`+s+`"`, []byte(s)) }

func rng(lo, hi byte) abnf.Operator {
	return abnf.Range(fmt.Sprintf("%%x%02X-%02X", lo, hi), []byte{lo}, []byte{hi})
}

const (
	maxIPv4Len = len("255.255.255.255")
	maxIPv6Len = len("ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255")
)

var (
	digitOp  = rng('0', '9')
	hexdigOp = abnf.Alt("HEXDIG", digitOp, rng('A', 'F'), rng('a', 'f'))

	decOctetOp = abnf.Alt(
		"dec-octet",
		digitOp,
		abnf.Concat(`%x31-39 DIGIT`, rng('1', '9'), digitOp),
		abnf.Concat(`"1" 2DIGIT`, lit("1"), abnf.RepeatN("2DIGIT", 2, digitOp)),
		abnf.Concat(`"2" %x30-34 DIGIT`, lit("2"), rng('0', '4'), digitOp),
		abnf.Concat(`"25" %x30-35`, lit("25"), rng('0', '5')),
	)
	ipv4addressOp = abnf.Concat(
		"IPv4address",
		decOctetOp, lit("."),
		decOctetOp, lit("."),
		decOctetOp, lit("."),
		decOctetOp,
	)

	h16Op  = abnf.Repeat("h16", 1, 4, hexdigOp)
	h16cOp = abnf.Concat(`h16 ":"`, h16Op, lit(":"))
	ls32Op = abnf.Alt(
		"ls32",
		abnf.Concat(`h16 ":" h16`, h16Op, lit(":"), h16Op),
		ipv4addressOp,
	)
	ipv6addressOp = abnf.Alt(
		"IPv6address",
		abnf.Concat(`6( h16 ":" ) ls32`, abnf.RepeatN(`6( h16 ":" )`, 6, h16cOp), ls32Op),
		abnf.Concat(`"::" 5( h16 ":" ) ls32`, lit("::"), abnf.RepeatN(`5( h16 ":" )`, 5, h16cOp), ls32Op),
		abnf.Concat(
			`[ h16 ] "::" 4( h16 ":" ) ls32`,
			abnf.Optional("[ h16 ]", h16Op),
			lit("::"),
			abnf.RepeatN(`4( h16 ":" )`, 4, h16cOp),
			ls32Op,
		),
		abnf.Concat(
			`[ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32`,
			ipv6HeadOp(1),
			lit("::"),
			abnf.RepeatN(`3( h16 ":" )`, 3, h16cOp),
			ls32Op,
		),
		abnf.Concat(
			`[ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32`,
			ipv6HeadOp(2),
			lit("::"),
			abnf.RepeatN(`2( h16 ":" )`, 2, h16cOp),
			ls32Op,
		),
		abnf.Concat(`[ *3( h16 ":" ) h16 ] "::" h16 ":" ls32`, ipv6HeadOp(3), lit("::"), h16cOp, ls32Op),
		abnf.Concat(`[ *4( h16 ":" ) h16 ] "::" ls32`, ipv6HeadOp(4), lit("::"), ls32Op),
		abnf.Concat(`[ *5( h16 ":" ) h16 ] "::" h16`, ipv6HeadOp(5), lit("::"), h16Op),
		abnf.Concat(`[ *6( h16 ":" ) h16 ] "::"`, ipv6HeadOp(6), lit("::")),
	)
)

func ipv6HeadOp(n uint) abnf.Operator {
	return abnf.Optional(
		fmt.Sprintf(`[ *%d( h16 ":" ) h16 ]`, n),
		abnf.Concat(
			fmt.Sprintf(`*%d( h16 ":" ) h16`, n),
			abnf.Repeat(fmt.Sprintf(`*%d( h16 ":" )`, n), 0, n, h16cOp),
			h16Op,
		),
	)
}

func matchAll(op abnf.Operator, s []byte) bool {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsIPv4Address reports whether s is entirely matched by the IPv4address rule.
func IsIPv4Address[T ~string | ~[]byte](s T) bool {
	return len(s) > 0 && len(s) <= maxIPv4Len && matchAll(ipv4addressOp, []byte(s))
}

// IsIPv6Address reports whether s is entirely matched by the IPv6address rule.
func IsIPv6Address[T ~string | ~[]byte](s T) bool {
	return len(s) > 0 && len(s) <= maxIPv6Len && matchAll(ipv6addressOp, []byte(s))
}

// IsIPvFuture reports whether s matches the IPvFuture rule:
//
//	"v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
func IsIPvFuture[T ~string | ~[]byte](s T) bool {
	if len(s) < 4 || s[0] != 'v' && s[0] != 'V' {
		return false
	}
	i := 1
	for i < len(s) && IsHexDigit(s[i]) {
		i++
	}
	if i == 1 || i+1 >= len(s) || s[i] != '.' {
		return false
	}
	for i++; i < len(s); i++ {
		if c := s[i]; !IsUnreserved(c) && !IsSubDelim(c) && c != ':' {
			return false
		}
	}
	return true
}
