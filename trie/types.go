// Package trie defines the index and node types and the sentinel errors
// shared by Build and Search.
package trie

import "errors"

// AlphabetSize is the number of edges a node can have, one per letter a–z.
const AlphabetSize = 26

// ErrInvalidCharacter indicates a rune outside the a–z alphabet was found
// in a word passed to Build or in a prefix passed to Search.
var ErrInvalidCharacter = errors.New("trie: invalid character")

// node is a single trie vertex. Each node exclusively owns its children.
type node struct {
	children [AlphabetSize]*node // child per letter; nil when absent
	matches  []int               // word indices sharing this prefix, ascending
}

// Index is a prefix index built once from a word list.
// It exposes only lookups; node internals are not reachable from outside.
type Index struct {
	root  *node
	words int    // number of indexed words
	nodes int    // number of nodes, root included
	sum   uint64 // Fingerprint of the indexed list
}
