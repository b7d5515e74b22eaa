// Package square enumerates word squares by depth-first backtracking over a
// trie.Index.
//
// Key features:
//   - FindAll(words, idx, opts...): every square, seeds and candidates tried in list order
//   - Solve(words, opts...): builds the index, then FindAll
//   - Hooks: OnPlace, OnBacktrack, OnComplete with error aborts
//   - Limits: MaxResults; cancellation via context.Context
//   - Workers: optional concurrent outer loop with order-preserving merge
//
// Complexity:
//
//   - Time:   O(N · B^(L-1) · L) worst case (N words, B = max candidates per prefix, L = word length).
//   - Memory: O(L) per active search plus the results.
package square

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordsquare/trie"
)

// errStop unwinds the recursion once MaxResults squares were collected.
var errStop = errors.New("square: result limit reached")

// walker holds the state of one depth-first search. The partial square is a
// fixed buffer of size rows addressed by depth; placing a row at depth k
// overwrites the previous sibling, so no pop is needed on any exit path.
type walker struct {
	ctx   context.Context
	words []string
	idx   *trie.Index
	opts  Options

	size   int      // side length L
	rows   []string // rows[0:depth] form the partial square
	prefix []byte   // scratch for the required next-row prefix
	found  []Square
}

func newWalker(ctx context.Context, words []string, idx *trie.Index, size int, opts Options) *walker {
	return &walker{
		ctx:    ctx,
		words:  words,
		idx:    idx,
		opts:   opts,
		size:   size,
		rows:   make([]string, size),
		prefix: make([]byte, size),
	}
}

// FindAll returns every word square whose rows come from words, using idx
// (built from the same words) to find legal next rows. Results are ordered
// by seed word, then depth-first with candidates in list order.
//
// On cancellation or a hook error, the squares found so far are returned
// together with the error.
func FindAll(words []string, idx *trie.Index, opts ...Option) ([]Square, error) {
	// 1. Validate inputs
	if idx == nil {
		return nil, ErrNilIndex
	}
	if idx.Len() != len(words) {
		return nil, fmt.Errorf("%w: index holds %d words, list has %d", ErrIndexMismatch, idx.Len(), len(words))
	}
	if idx.Fingerprint() != trie.Fingerprint(words) {
		return nil, fmt.Errorf("%w: index was built from a different list of %d words", ErrIndexMismatch, len(words))
	}
	size, err := ValidateWords(words)
	if err != nil {
		return nil, err
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Nothing to seed
	if len(words) == 0 {
		return []Square{}, nil
	}

	// 4. Concurrent outer loop
	if o.Workers > 1 && len(words) > 1 {
		return findParallel(words, idx, size, o)
	}

	// 5. Sequential: seed every word as row 0
	w := newWalker(o.Ctx, words, idx, size, o)
	for i := range words {
		if err = w.place(0, words[i]); err != nil {
			if errors.Is(err, errStop) {
				break
			}

			return w.found, err
		}
	}
	if w.found == nil {
		w.found = []Square{}
	}

	return w.found, nil
}

// Solve builds the index for words and enumerates their squares.
func Solve(words []string, opts ...Option) ([]Square, error) {
	idx, err := trie.Build(words)
	if err != nil {
		return nil, err
	}

	return FindAll(words, idx, opts...)
}

// ValidateWords returns the common word length L. All words must be non-empty
// and of equal length; an empty list yields L = 0.
func ValidateWords(words []string) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	size := len(words[0])
	for i, w := range words {
		if len(w) == 0 {
			return 0, fmt.Errorf("%w at index %d", ErrEmptyWord, i)
		}
		if len(w) != size {
			return 0, fmt.Errorf("%w: word %d %q has length %d, want %d", ErrInconsistentWordLength, i, w, len(w), size)
		}
	}

	return size, nil
}

// place puts word at depth, then either records a completed square or
// extends the search one row deeper.
func (w *walker) place(depth int, word string) error {
	// 1. Cancellation check
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	// 2. Place the row
	w.rows[depth] = word
	err := w.opts.onPlace(depth, word)
	if err != nil {
		return err
	}

	// 3. Complete or go deeper
	if depth+1 == w.size {
		err = w.complete()
	} else {
		err = w.extend(depth + 1)
	}
	if err != nil {
		return err
	}

	// 4. Row is about to be replaced by its next sibling
	return w.opts.onBacktrack(depth, word)
}

// extend tries every word that fits as row k. The next row must start with
// the letters at column k of rows 0..k-1.
func (w *walker) extend(k int) error {
	for j := 0; j < k; j++ {
		w.prefix[j] = w.rows[j][k]
	}

	candidates, err := w.idx.Search(string(w.prefix[:k]))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDictionary, err)
	}

	var i int
	for _, i = range candidates {
		if err = w.place(k, w.words[i]); err != nil {
			return err
		}
	}

	return nil
}

// complete copies the buffer into a new Square and records it.
func (w *walker) complete() error {
	sq := make(Square, w.size)
	copy(sq, w.rows)

	if err := w.opts.onComplete(sq); err != nil {
		return err
	}
	w.found = append(w.found, sq)

	if w.opts.MaxResults > 0 && len(w.found) >= w.opts.MaxResults {
		return errStop
	}

	return nil
}

// onPlace, onBacktrack and onComplete run the optional hooks and wrap their
// errors with the hook name.
func (o *Options) onPlace(depth int, word string) error {
	if o.OnPlace == nil {
		return nil
	}
	if err := o.OnPlace(depth, word); err != nil {
		return fmt.Errorf("square: OnPlace hook for %q: %w", word, err)
	}

	return nil
}

func (o *Options) onBacktrack(depth int, word string) error {
	if o.OnBacktrack == nil {
		return nil
	}
	if err := o.OnBacktrack(depth, word); err != nil {
		return fmt.Errorf("square: OnBacktrack hook for %q: %w", word, err)
	}

	return nil
}

func (o *Options) onComplete(sq Square) error {
	if o.OnComplete == nil {
		return nil
	}
	if err := o.OnComplete(sq); err != nil {
		return fmt.Errorf("square: OnComplete hook: %w", err)
	}

	return nil
}
