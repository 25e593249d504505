package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparser/internal/errorutil"
	"github.com/ghettovoice/uriparser/internal/grammar"
	"github.com/ghettovoice/uriparser/internal/util"
)

// FormPair is a single key/value pair of an application/x-www-form-urlencoded payload.
// A pair without value ("key" as opposed to "key=") has HasValue unset.
type FormPair struct {
	Key      string
	Value    string
	HasValue bool
}

// Pair returns a pair with the value.
func Pair(key, value string) FormPair { return FormPair{Key: key, Value: value, HasValue: true} }

// KeyOnly returns a pair without value.
func KeyOnly(key string) FormPair { return FormPair{Key: key} }

func (p FormPair) String() string {
	if !p.HasValue {
		return grammar.EscapeFormComponent(p.Key)
	}
	return grammar.EscapeFormComponent(p.Key) + "=" + grammar.EscapeFormComponent(p.Value)
}

// EncodeWWWForm encodes pairs in order as application/x-www-form-urlencoded text.
// Space is encoded as "+", only unreserved characters are left unescaped.
func EncodeWWWForm(pairs []FormPair) string {
	if len(pairs) == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

// EncodeWWWFormAny encodes a loosely shaped form value.
// It accepts ordered pairs only: []FormPair or [][]string of one or two elements per pair.
// Maps have no order and fail with [ErrUnsupportedInput] like any other shape.
// A nil value fails with [ErrInvalidArgument].
func EncodeWWWFormAny(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("nil form value"))
	case []FormPair:
		return EncodeWWWForm(v), nil
	case [][]string:
		pairs := make([]FormPair, 0, len(v))
		for _, kv := range v {
			switch len(kv) {
			case 1:
				pairs = append(pairs, KeyOnly(kv[0]))
			case 2:
				pairs = append(pairs, Pair(kv[0], kv[1]))
			default:
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedInput, "form pair of %d elements", len(kv)))
			}
		}
		return EncodeWWWForm(pairs), nil
	default:
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedInput, "form value of type %T", v))
	}
}

// DecodeWWWForm decodes application/x-www-form-urlencoded text into pairs, preserving order and duplicates.
// Empty pieces between "&" separators are skipped.
//
//	"a=1&a=2&b=&c" -> [a=1 a=2 b= c]
func DecodeWWWForm(s string) []FormPair {
	var pairs []FormPair
	for piece := range strings.SplitSeq(s, "&") {
		if piece == "" {
			continue
		}
		k, v, ok := strings.Cut(piece, "=")
		pairs = append(pairs, FormPair{
			Key:      grammar.UnescapeFormComponent(k),
			Value:    grammar.UnescapeFormComponent(v),
			HasValue: ok,
		})
	}
	return pairs
}

// QueryPairs decodes the query as a form payload.
func (u *URI) QueryPairs() []FormPair {
	if u == nil || !u.HasQuery {
		return nil
	}
	return DecodeWWWForm(u.Query)
}

// SetQueryPairs replaces the query with the encoded pairs.
func (u *URI) SetQueryPairs(pairs []FormPair) {
	u.Query, u.HasQuery = EncodeWWWForm(pairs), true
}
