// Package wordlist defines loader options, statistics and sentinel errors.
package wordlist

import "errors"

var (
	// ErrBadLength indicates a requested word length below 1.
	ErrBadLength = errors.New("wordlist: word length must be at least 1")
)

// Stats counts what happened to each input line.
// Lines = Kept + Blank + WrongLength + NonAlpha + NonASCII + Duplicates.
type Stats struct {
	Lines       int // lines read
	Kept        int // words returned
	Blank       int // empty after trimming
	WrongLength int // letter count differs from the requested length
	NonAlpha    int // contains a non-letter rune
	NonASCII    int // letters only, but not all a–z after lowercasing
	Duplicates  int // dropped by WithDedupe
}

// Option configures optional behavior of Load and LoadFile.
type Option func(*Options)

// Options holds loader settings.
type Options struct {
	// Dedupe drops repeated words, keeping the first occurrence.
	// Default false: duplicates are kept and each gets its own index.
	Dedupe bool
}

// DefaultOptions returns Options with duplicates kept.
func DefaultOptions() Options {
	return Options{Dedupe: false}
}

// WithDedupe returns an Option that drops repeated words.
func WithDedupe() Option {
	return func(o *Options) {
		o.Dedupe = true
	}
}
