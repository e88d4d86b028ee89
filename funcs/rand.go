package funcs

import (
	"fmt"
	"math/rand"
)

// maxRandAlloc bounds the length any rand function will allocate.
// Counts above it are well-typed but unallocatable; they return an
// error rather than letting make panic.
const maxRandAlloc = 1 << 30

// Source yields uniformly distributed integers in [0, n). It must be
// safe for concurrent use: template evaluations run in parallel and
// draw independently, with no ordering guarantee between them.
type Source interface {
	IntN(n int) int
}

// stdSource draws from the math/rand global generator, which is
// safe for concurrent use.
type stdSource struct{}

func (stdSource) IntN(n int) int { return rand.Intn(n) }

const (
	alphaChars    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numericChars  = "0123456789"
	alphaNumChars = alphaChars + numericChars
)

// asciiChars covers printable ASCII 33..126: symbols included, space
// excluded so generated values survive whitespace-sensitive contexts.
var asciiChars = func() string {
	b := make([]byte, 0, 94)
	for c := byte('!'); c <= '~'; c++ {
		b = append(b, c)
	}
	return string(b)
}()

func (l *Library) randAlphaNum(count uint64) (string, error) {
	return l.randString(count, alphaNumChars)
}

func (l *Library) randAlpha(count uint64) (string, error) {
	return l.randString(count, alphaChars)
}

func (l *Library) randAscii(count uint64) (string, error) {
	return l.randString(count, asciiChars)
}

func (l *Library) randNumeric(count uint64) (string, error) {
	return l.randString(count, numericChars)
}

func (l *Library) randString(count uint64, alphabet string) (string, error) {
	if l.maxRandLen > 0 && count > uint64(l.maxRandLen) {
		return "", fmt.Errorf("random length %d exceeds maximum %d", count, l.maxRandLen)
	}
	if count > maxRandAlloc {
		return "", fmt.Errorf("random length %d exceeds limit %d", count, maxRandAlloc)
	}
	b := make([]byte, count)
	for i := range b {
		b[i] = alphabet[l.src.IntN(len(alphabet))]
	}
	return string(b), nil
}
