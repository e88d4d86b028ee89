// Package funcs implements the string function library registered
// into a template engine through the bind package.
//
// A Library holds the randomness source and runtime options; FuncMap
// returns the adapted callables keyed by their registered names:
//
//	lib := funcs.New()
//	fm := lib.FuncMap()
//	out, err := fm["abbrev"]([]any{value.Int(4), value.String("foobar")})
//	// out.(value.Value).StringVal() == "f..."
//
// # Functions
//
//   - base64encode, base64decode, base32encode, base32decode
//   - abbrev, abbrevboth, trunc, substring
//   - initials, untitle, replace, plural
//   - randAlphaNum, randAlpha, randAscii, randNumeric
//   - join, split
//   - trim, trimAll, trimSuffix, trimPrefix
//   - contains, hasSuffix, hasPrefix
//
// String operations index by byte offset. Offsets that fall inside a
// multi-byte UTF-8 sequence slice mid-character; abbrev, trunc, and
// substring are only boundary-safe on ASCII input.
//
// # Randomness
//
// The four rand functions draw from a shared Source. The default is
// backed by math/rand/v2 and safe for concurrent template
// evaluations; tests can substitute a deterministic source:
//
//	lib := funcs.New(funcs.WithSource(mySource))
//
// Counts beyond the 1 GiB allocation bound return an error rather
// than exhausting memory.
//
// # Options
//
// WithDisabled removes functions from the table without recompiling;
// WithMaxRandLen caps the length the rand functions will generate.
// Both are settable from a config file, see the config package.
package funcs
