// Package square enumerates every word square that can be built from a
// fixed-length word list.
//
// What:
//
//   - A word square of size L is L words of length L stacked so that row i
//     reads the same as column i:
//
//     b a l l
//     a r e a
//     l e a d
//     l a d y
//
//   - FindAll seeds each word as the first row, then at depth k asks the
//     trie.Index for every word starting with the letters already fixed in
//     column k. Candidates come back in word-list order and are tried in
//     that order, backtracking when a prefix has no match.
//
// Why:
//   - Querying by the exact required prefix means every partial square is
//     symmetric by construction; no post-hoc validation is needed.
//   - Deterministic order makes results reproducible and diffable.
//
// Key Types & Options:
//
//   - Square: one result ([]string), with String and Characters.
//   - Options: Ctx, OnPlace, OnBacktrack, OnComplete, MaxResults, Workers.
//   - WithContext, WithOnPlace, WithOnBacktrack, WithOnComplete,
//     WithMaxResults, WithWorkers.
//
// Concurrency:
//
//	The per-seed searches share only the immutable index. WithWorkers(n)
//	runs them on n goroutines; each records its squares and hook calls
//	privately, and the caller's goroutine replays finished seeds in seed
//	order. Hooks are never called concurrently, MaxResults stops the
//	remaining walkers as soon as the ordered results reach the limit, and
//	the output is identical to the sequential run.
//
// Errors:
//
//   - ErrNilIndex                 idx is nil
//   - ErrIndexMismatch            idx was built from a different list (length or Fingerprint)
//   - ErrInconsistentWordLength   words differ in length
//   - ErrEmptyWord                a word is ""
//   - ErrDictionary               index lookup failed (wraps trie.ErrInvalidCharacter)
//   - context.Canceled / DeadlineExceeded
//   - hook errors                 propagated from OnPlace, OnBacktrack, OnComplete
//
// An empty result is not an error.
package square
