// Package square defines the result type, options, hooks and sentinel errors
// for word-square enumeration.
package square

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNilIndex is returned when FindAll is given a nil *trie.Index.
	ErrNilIndex = errors.New("square: index is nil")

	// ErrIndexMismatch indicates the index was not built from the given word list.
	ErrIndexMismatch = errors.New("square: index does not match word list")

	// ErrInconsistentWordLength indicates the word list mixes word lengths.
	ErrInconsistentWordLength = errors.New("square: inconsistent word length")

	// ErrEmptyWord indicates the word list contains an empty string.
	ErrEmptyWord = errors.New("square: empty word")

	// ErrDictionary wraps index lookup failures; the word list broke the
	// a–z contract and the run cannot continue.
	ErrDictionary = errors.New("square: dictionary invariant violated")
)

// Square is one completed word square: row i equals column i for every i.
// Rows are taken verbatim from the word list.
type Square []string

// String renders the rows one per line.
func (s Square) String() string { return strings.Join(s, "\n") }

// Characters returns the distinct letters used across all rows, sorted.
func (s Square) Characters() []string {
	seen := make(map[rune]struct{}, 26)
	for _, row := range s {
		for _, r := range row {
			seen[r] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, string(r))
	}
	sort.Strings(out)

	return out
}

// IsValid reports whether s is an L×L grid whose rows equal its columns.
func IsValid(s Square) bool {
	n := len(s)
	for _, row := range s {
		if len(row) != n {
			return false
		}
	}
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			if s[r][c] != s[c][r] {
				return false
			}
		}
	}

	return true
}

// Option configures optional behavior of FindAll and Solve.
type Option func(*Options)

// Options holds configurable parameters for the search.
// Hooks always run on the goroutine that called FindAll, one at a time and
// in sequential search order. With Workers > 1 a seed's hook calls are
// replayed once that seed and every seed before it have finished.
type Options struct {
	// Ctx allows cancellation or a caller-imposed deadline; defaults to
	// context.Background(). Checked once per placed row.
	Ctx context.Context

	// OnPlace, if non-nil, is invoked after a row is placed at depth
	// (0 for the seed row). Returning an error aborts the search.
	OnPlace func(depth int, word string) error

	// OnBacktrack, if non-nil, is invoked after all completions under a
	// placed row have been explored. Returning an error aborts the search.
	OnBacktrack func(depth int, word string) error

	// OnComplete, if non-nil, is invoked with each completed square before
	// it is recorded. The square is a fresh copy owned by the callee.
	OnComplete func(sq Square) error

	// MaxResults, if positive, stops the search once that many squares
	// have been found. Default is 0 (no limit).
	MaxResults int

	// Workers is the number of seed words searched concurrently.
	// Values below 2 select the sequential search. Results, hook calls and
	// the point where MaxResults or a cancellation stops the search do not
	// depend on Workers.
	Workers int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No hooks
//   - No result limit
//   - Sequential search (Workers = 1)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxResults: 0,
		Workers:    1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace installs fn as the row-placed hook.
func WithOnPlace(fn func(depth int, word string) error) Option {
	return func(o *Options) {
		o.OnPlace = fn
	}
}

// WithOnBacktrack installs fn as the row-removed hook.
func WithOnBacktrack(fn func(depth int, word string) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithOnComplete installs fn as the completed-square hook.
func WithOnComplete(fn func(sq Square) error) Option {
	return func(o *Options) {
		o.OnComplete = fn
	}
}

// WithMaxResults limits the number of squares returned; n <= 0 means no limit.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		o.MaxResults = n
	}
}

// WithWorkers sets how many seed words are searched concurrently.
// n < 2 keeps the search sequential.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}
