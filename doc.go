// Package wordsquare finds every word square hidden in a dictionary: L words
// of length L stacked so that each row reads the same as the matching column.
//
//	b a l l
//	a r e a
//	l e a d
//	l a d y
//
// What's inside:
//
//	trie/      — write-once prefix index over a–z words; prefix → word indices in list order
//	square/    — backtracking search driven by the index, hooks, limits, optional workers
//	wordlist/  — dictionary loader: length filter, alphabetic filter, lowercasing
//	report/    — text listing and JSON/YAML records (rows, distinct letters, letter count)
//	config/    — YAML run configuration
//	cmd/wordsquare — command-line front end
//
// Quick start:
//
//	words := []string{"area", "lead", "wall", "lady", "ball"}
//	squares, err := square.Solve(words)
//	// squares == [[wall area lead lady] [ball area lead lady]]
//
// The search is deterministic: seeds and candidates are tried in word-list
// order, so the same input always yields the same sequence of squares,
// with or without workers.
package wordsquare
