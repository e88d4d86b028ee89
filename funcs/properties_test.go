package funcs

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/randalmurphal/tmplfn/value"
)

var propertyInputs = []string{
	"",
	" ",
	"a",
	"foobar",
	"  foobar ",
	"hello world",
	"Matt Butcher",
	"\tmixed \n whitespace\t",
	"naïve café", // multi-byte input survives whole-string operations
	strings.Repeat("x", 300),
}

func TestProperty_TrimIdempotent(t *testing.T) {
	lib := New()

	for _, s := range propertyInputs {
		once := mustCall(t, lib, "trim", value.String(s)).StringVal()
		twice := mustCall(t, lib, "trim", value.String(once)).StringVal()
		if once != twice {
			t.Errorf("trim not idempotent on %q: %q then %q", s, once, twice)
		}
	}
}

func TestProperty_EncodingRoundTrips(t *testing.T) {
	lib := New()

	for _, s := range propertyInputs {
		enc := mustCall(t, lib, "base64encode", value.String(s)).StringVal()
		dec := mustCall(t, lib, "base64decode", value.String(enc)).StringVal()
		if dec != s {
			t.Errorf("base64 round trip lost %q: got %q", s, dec)
		}

		enc = mustCall(t, lib, "base32encode", value.String(s)).StringVal()
		dec = mustCall(t, lib, "base32decode", value.String(enc)).StringVal()
		if dec != s {
			t.Errorf("base32 round trip lost %q: got %q", s, dec)
		}
	}
}

func TestProperty_AbbrevLengthBound(t *testing.T) {
	lib := New()

	for _, s := range propertyInputs {
		for _, width := range []int64{-1, 0, 3, 4, 5, 10, 500} {
			got := mustCall(t, lib, "abbrev", value.Int(width), value.String(s)).StringVal()

			bound := int64(len(s))
			if width > bound {
				bound = width
			}
			if int64(len(got)) > bound {
				t.Errorf("abbrev(%d, %q) = %q exceeds bound %d", width, s, got, bound)
			}
			if width < 4 || int64(len(s)) < width {
				if got != s {
					t.Errorf("abbrev(%d, %q) should be unchanged, got %q", width, s, got)
				}
			}
		}
	}
}

func TestProperty_SubstringNeverErrors(t *testing.T) {
	lib := New()

	s := "foobar"
	for start := int64(-2); start <= 8; start++ {
		for size := int64(-2); size <= 8; size++ {
			got, err := call(t, lib, "substring",
				value.Int(start), value.Int(size), value.String(s))
			if err != nil {
				t.Fatalf("substring(%d, %d, %q) errored: %v", start, size, s, err)
			}
			out := got.StringVal()
			if out != s && !strings.Contains(s, out) {
				t.Errorf("substring(%d, %d, %q) = %q is not a slice of the input",
					start, size, s, out)
			}
		}
	}
}

func TestProperty_SplitJoinReassembly(t *testing.T) {
	lib := New()

	tests := []struct {
		sep string
		s   string
	}{
		{sep: " ", s: "foo bar"},
		{sep: "/", s: "a/b/c/d"},
		{sep: ", ", s: "one, two, three"},
		{sep: "-", s: "nodelimiter"},
	}

	for _, tt := range tests {
		m := mustCall(t, lib, "split", value.String(tt.sep), value.String(tt.s)).MapVal()

		// Reassemble in _N order.
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.Atoi(strings.TrimPrefix(keys[i], "_"))
			b, _ := strconv.Atoi(strings.TrimPrefix(keys[j], "_"))
			return a < b
		})
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i] = m[k]
		}

		got := mustCall(t, lib, "join",
			value.String(tt.sep), value.Array(elems...)).StringVal()
		if got != tt.s {
			t.Errorf("split then join with %q changed %q into %q", tt.sep, tt.s, got)
		}
	}
}
