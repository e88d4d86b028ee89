package funcs

import (
	"sort"

	"github.com/randalmurphal/tmplfn/bind"
)

// Library is the configured function table. The zero value is not
// usable; construct with New.
type Library struct {
	src        Source
	disabled   map[string]bool
	maxRandLen int64
}

// Option configures a Library.
type Option func(*Library)

// WithSource substitutes the randomness source used by the rand
// functions. The source must be safe for concurrent use.
func WithSource(src Source) Option {
	return func(l *Library) { l.src = src }
}

// WithDisabled removes the named functions from the table.
func WithDisabled(names ...string) Option {
	return func(l *Library) {
		for _, n := range names {
			l.disabled[n] = true
		}
	}
}

// WithMaxRandLen caps the length the rand functions will generate.
// Zero means uncapped.
func WithMaxRandLen(n int64) Option {
	return func(l *Library) { l.maxRandLen = n }
}

// New builds a Library with the default randomness source.
func New(opts ...Option) *Library {
	l := &Library{
		src:      stdSource{},
		disabled: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Param describes one parameter of a registered function.
type Param struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Info describes a registered function for catalog export.
type Info struct {
	Name    string  `yaml:"name" json:"name"`
	Doc     string  `yaml:"doc" json:"doc"`
	Params  []Param `yaml:"params" json:"params"`
	Returns string  `yaml:"returns" json:"returns"`
}

type entry struct {
	info Info
	fn   bind.Func
}

// FuncMap returns the adapted callables keyed by registered name,
// omitting disabled functions. The map is built fresh on each call
// and may be mutated by the caller.
func (l *Library) FuncMap() map[string]bind.Func {
	table := l.table()
	out := make(map[string]bind.Func, len(table))
	for _, e := range table {
		if l.disabled[e.info.Name] {
			continue
		}
		out[e.info.Name] = e.fn
	}
	return out
}

// Funcs returns the metadata of every enabled function, sorted by
// name.
func (l *Library) Funcs() []Info {
	table := l.table()
	out := make([]Info, 0, len(table))
	for _, e := range table {
		if l.disabled[e.info.Name] {
			continue
		}
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every registered function name, ignoring the disabled
// set, sorted. Used to validate configuration.
func Names() []string {
	table := New().table()
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.info.Name
	}
	sort.Strings(out)
	return out
}

func params(pairs ...string) []Param {
	out := make([]Param, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Param{Name: pairs[i], Type: pairs[i+1]})
	}
	return out
}

func (l *Library) table() []entry {
	return []entry{
		{Info{Name: "base64encode", Doc: "Base 64 encode a string.",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(base64encode)},
		{Info{Name: "base64decode", Doc: "Base 64 decode a string.",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(base64decode)},
		{Info{Name: "base32encode", Doc: "Base 32 encode a string.",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(base32encode)},
		{Info{Name: "base32decode", Doc: "Base 32 decode a string.",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(base32decode)},
		{Info{Name: "abbrev", Doc: "Truncate a string with ellipses. abbrev 5 \"hello world\" yields \"he...\".",
			Params: params("width", "int", "s", "string"), Returns: "string"}, bind.Func2(abbrev)},
		{Info{Name: "abbrevboth", Doc: "Abbreviate from both sides, yielding \"...lo wo...\".",
			Params: params("left", "int", "right", "int", "s", "string"), Returns: "string"}, bind.Func3(abbrevboth)},
		{Info{Name: "initials", Doc: "Given a multi-word string, return the initials. initials \"Matt Butcher\" returns \"MB\".",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(initials)},
		{Info{Name: "randAlphaNum", Doc: "Given a length, generate a random alphanumeric sequence.",
			Params: params("count", "uint"), Returns: "string"}, bind.Func1(l.randAlphaNum)},
		{Info{Name: "randAlpha", Doc: "Given a length, generate an alphabetic string.",
			Params: params("count", "uint"), Returns: "string"}, bind.Func1(l.randAlpha)},
		{Info{Name: "randAscii", Doc: "Given a length, generate a random ASCII string (symbols included).",
			Params: params("count", "uint"), Returns: "string"}, bind.Func1(l.randAscii)},
		{Info{Name: "randNumeric", Doc: "Given a length, generate a string of digits.",
			Params: params("count", "uint"), Returns: "string"}, bind.Func1(l.randNumeric)},
		{Info{Name: "untitle", Doc: "Remove title casing.",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(untitle)},
		{Info{Name: "replace", Doc: "Replace all occurrences of old with new.",
			Params: params("old", "string", "new", "string", "s", "string"), Returns: "string"}, bind.Func3(replace)},
		{Info{Name: "plural", Doc: "Return one if count is 1, else many.",
			Params: params("one", "string", "many", "string", "count", "int"), Returns: "string"}, bind.Func3(plural)},
		{Info{Name: "trunc", Doc: "Truncate a string (no suffix). trunc 5 \"Hello World\" yields \"Hello\".",
			Params: params("len", "int", "s", "string"), Returns: "string"}, bind.Func2(trunc)},
		{Info{Name: "join", Doc: "Join the elements of an array with a separator, as join SEP SLICE.",
			Params: params("sep", "string", "list", "array"), Returns: "string"}, bind.Func2(join)},
		{Info{Name: "split", Doc: "Split a string, as split SEP STRING. The results are returned as a map with the indexes set to _N, where N is an integer starting from 0.",
			Params: params("sep", "string", "s", "string"), Returns: "map"}, bind.Func2(split)},
		{Info{Name: "substring", Doc: "Given start, length, and a string, return a substring. The length is applied as an end offset into the string, kept for compatibility despite the name; out-of-range offsets return the string unchanged.",
			Params: params("start", "int", "len", "int", "s", "string"), Returns: "string"}, bind.Func3(substring)},
		{Info{Name: "trim", Doc: "Remove leading and trailing whitespace.",
			Params: params("s", "string"), Returns: "string"}, bind.Func1(trim)},
		{Info{Name: "trimAll", Doc: "Remove leading and trailing characters in the set, as trimAll \"$\" \"$5.00\".",
			Params: params("chars", "string", "s", "string"), Returns: "string"}, bind.Func2(trimAll)},
		{Info{Name: "trimSuffix", Doc: "Remove one trailing occurrence of the suffix, as trimSuffix \"-\" \"ends-with-\".",
			Params: params("suffix", "string", "s", "string"), Returns: "string"}, bind.Func2(trimSuffix)},
		{Info{Name: "trimPrefix", Doc: "Remove one leading occurrence of the prefix, as trimPrefix \"$\" \"$5\".",
			Params: params("prefix", "string", "s", "string"), Returns: "string"}, bind.Func2(trimPrefix)},
		{Info{Name: "contains", Doc: "Report whether the string contains the substring, as contains SUBSTR STRING.",
			Params: params("substr", "string", "s", "string"), Returns: "bool"}, bind.Func2(contains)},
		{Info{Name: "hasSuffix", Doc: "Report whether the string ends with the suffix, as hasSuffix SUFFIX STRING.",
			Params: params("suffix", "string", "s", "string"), Returns: "bool"}, bind.Func2(hasSuffix)},
		{Info{Name: "hasPrefix", Doc: "Report whether the string starts with the prefix, as hasPrefix PREFIX STRING.",
			Params: params("prefix", "string", "s", "string"), Returns: "bool"}, bind.Func2(hasPrefix)},
	}
}
