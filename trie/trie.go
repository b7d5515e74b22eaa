package trie

import (
	"fmt"
	"hash/fnv"
)

// Build indexes every word at every prefix length. For word i, i is appended
// to the root and to each node along the word's path, so a node at depth d
// holds exactly the indices of words whose first d letters spell its path.
//
// Returns an error wrapping ErrInvalidCharacter if any word contains a rune
// outside a–z; no partial index is returned in that case.
func Build(words []string) (*Index, error) {
	// 1. Start with a bare root
	idx := &Index{root: &node{matches: make([]int, 0, len(words))}, nodes: 1}

	// 2. Insert each word in list order so matches stay ascending
	var (
		i   int
		w   string
		err error
	)
	for i, w = range words {
		if err = idx.insert(w, i); err != nil {
			return nil, err
		}
	}
	idx.words = len(words)
	idx.sum = Fingerprint(words)

	return idx, nil
}

// insert walks word from the root, creating nodes as needed and recording
// index at every depth. The walk only moves forward, so index is appended
// once per depth.
func (x *Index) insert(word string, index int) error {
	n := x.root
	n.matches = append(n.matches, index)

	var (
		pos  int
		r    rune
		slot int
		ok   bool
	)
	for pos, r = range word {
		if slot, ok = letter(r); !ok {
			return fmt.Errorf("%w %q at position %d in word %q", ErrInvalidCharacter, r, pos, word)
		}
		if n.children[slot] == nil {
			n.children[slot] = &node{}
			x.nodes++
		}
		n = n.children[slot]
		n.matches = append(n.matches, index)
	}

	return nil
}

// Search returns the indices of all words starting with prefix, in word-list
// order. The empty prefix returns every index. An unknown prefix returns a
// nil slice and no error.
//
// The returned slice is shared with the index and must be treated as
// read-only; its capacity is clipped so appending to it copies.
func (x *Index) Search(prefix string) ([]int, error) {
	n, err := x.walk(prefix)
	if err != nil || n == nil {
		return nil, err
	}

	return n.matches[:len(n.matches):len(n.matches)], nil
}

// Len returns the number of words the index was built from.
func (x *Index) Len() int { return x.words }

// Nodes returns the number of nodes in the trie, root included.
func (x *Index) Nodes() int { return x.nodes }

// Fingerprint returns the checksum of the word list the index was built
// from; compare it with Fingerprint(words) before pairing the two.
func (x *Index) Fingerprint() uint64 { return x.sum }

// Fingerprint returns a 64-bit FNV-1a checksum of words in order.
// Each word is followed by a zero byte so ["ab","c"] and ["a","bc"] differ.
func Fingerprint(words []string) uint64 {
	h := fnv.New64a()
	sep := []byte{0}
	for _, w := range words {
		_, _ = h.Write([]byte(w))
		_, _ = h.Write(sep)
	}

	return h.Sum64()
}

// walk descends from the root along prefix. It returns (nil, nil) when some
// letter has no child.
func (x *Index) walk(prefix string) (*node, error) {
	n := x.root

	var (
		pos  int
		r    rune
		slot int
		ok   bool
	)
	for pos, r = range prefix {
		if slot, ok = letter(r); !ok {
			return nil, fmt.Errorf("%w %q at position %d in prefix %q", ErrInvalidCharacter, r, pos, prefix)
		}
		if n = n.children[slot]; n == nil {
			return nil, nil
		}
	}

	return n, nil
}

// letter maps a–z to 0..25.
func letter(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}

	return int(r - 'a'), true
}
