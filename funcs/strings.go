package funcs

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/randalmurphal/tmplfn/value"
)

// initials concatenates the first byte of each whitespace-separated
// token. Empty and all-whitespace input yield the empty string.
func initials(s string) (string, error) {
	var b strings.Builder
	for _, w := range strings.Fields(s) {
		b.WriteString(w[:1])
	}
	return b.String(), nil
}

// untitle lowercases the first letter of every whitespace-delimited
// run and leaves everything else alone — the inverse of title casing,
// not a full lowercase.
func untitle(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	ws := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			ws = true
			b.WriteRune(r)
		case ws:
			ws = false
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func replace(old, new, s string) (string, error) {
	return strings.ReplaceAll(s, old, new), nil
}

func plural(one, many string, count int64) (string, error) {
	if count == 1 {
		return one, nil
	}
	return many, nil
}

// join concatenates the display form of each array element with sep
// between elements. The list argument is inspected as a raw value so
// a non-array can be rejected with a useful message.
func join(sep string, list value.Value) (string, error) {
	if list.Kind() != value.KindArray {
		return "", errors.New("second argument must be of type Array")
	}
	elems := list.ArrayVal()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.Text()
	}
	return strings.Join(parts, sep), nil
}

// split returns the substrings of s around sep, keyed _0, _1, ... in
// split order.
func split(sep, s string) (map[string]string, error) {
	parts := strings.Split(s, sep)
	m := make(map[string]string, len(parts))
	for i, p := range parts {
		m["_"+strconv.Itoa(i)] = p
	}
	return m, nil
}

func trim(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func trimAll(chars, s string) (string, error) {
	return strings.Trim(s, chars), nil
}

func trimSuffix(suffix, s string) (string, error) {
	return strings.TrimSuffix(s, suffix), nil
}

func trimPrefix(prefix, s string) (string, error) {
	return strings.TrimPrefix(s, prefix), nil
}

func contains(substr, s string) (bool, error) {
	return strings.Contains(s, substr), nil
}

func hasSuffix(suffix, s string) (bool, error) {
	return strings.HasSuffix(s, suffix), nil
}

func hasPrefix(prefix, s string) (bool, error) {
	return strings.HasPrefix(s, prefix), nil
}
