// Package trie implements a write-once prefix index over a fixed-alphabet
// word list (lowercase a–z), mapping every prefix to the ordered indices of
// the words that start with it.
//
// What:
//
//   - Build: indexes every word at every prefix length (0..len(word)).
//     The root (empty prefix) therefore holds every index.
//   - Search: walks the tree one letter at a time and returns the indices
//     stored at the reached node, in insertion (word-list) order.
//   - Len, Nodes: cheap read-only diagnostics.
//   - Fingerprint: checksum of the indexed list, so a search can refuse
//     an index built from other words.
//
// Why:
//   - Word-square and crossword search need "all words starting with p"
//     in O(len(p)) regardless of dictionary size.
//   - Insertion order is preserved so callers get deterministic,
//     list-ordered candidates without sorting.
//
// Key Types:
//
//   - Index: the built trie; immutable after Build and safe for
//     concurrent readers.
//
// Complexity:
//
//   - Build:  Time O(ΣL), Memory O(ΣL) nodes + O(ΣL) stored indices
//     (L = word length).
//   - Search: Time O(len(prefix)), no allocation.
//
// Errors:
//
//   - ErrInvalidCharacter  a rune outside a–z in a word or a prefix.
//     The index performs no case folding; callers normalize first.
//
// Functions:
//
//   - Build(words []string) (*Index, error)
//   - (*Index).Search(prefix string) ([]int, error)
//   - (*Index).Len() int, (*Index).Nodes() int
//   - (*Index).Fingerprint() uint64, Fingerprint(words []string) uint64
package trie
