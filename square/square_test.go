package square_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/wordsquare/square"
	"github.com/katalvlaran/wordsquare/trie"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// findAll builds the index and runs FindAll, failing the test on build errors.
func findAll(t *testing.T, words []string, opts ...square.Option) ([]square.Square, error) {
	t.Helper()
	idx, err := trie.Build(words)
	require.NoError(t, err)

	return square.FindAll(words, idx, opts...)
}

// assertWellFormed checks symmetry and that every row is a dictionary word.
func assertWellFormed(t *testing.T, words []string, squares []square.Square) {
	t.Helper()
	dict := make(map[string]bool, len(words))
	for _, w := range words {
		dict[w] = true
	}
	for n, sq := range squares {
		assert.True(t, square.IsValid(sq), "square %d not symmetric: %v", n, sq)
		for r := range sq {
			for c := range sq {
				assert.Equal(t, sq[r][c], sq[c][r], "square %d cell (%d,%d)", n, r, c)
			}
			assert.True(t, dict[sq[r]], "square %d row %q not in dictionary", n, sq[r])
		}
	}
}

func TestFindAll_FourLetterScenario(t *testing.T) {
	words := []string{"area", "lead", "wall", "lady", "ball"}

	got, err := findAll(t, words)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, []square.Square{
		{"wall", "area", "lead", "lady"},
		{"ball", "area", "lead", "lady"},
	}, got)
	assertWellFormed(t, words, got)
}

func TestFindAll_NoCompletion(t *testing.T) {
	got, err := findAll(t, []string{"abcd", "bcda"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindAll_SingleLetterWords(t *testing.T) {
	got, err := findAll(t, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []square.Square{{"a"}}, got)

	// One square per entry, duplicates included.
	got, err = findAll(t, []string{"a", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []square.Square{{"a"}, {"b"}, {"a"}}, got)
}

func TestFindAll_EmptyWordList(t *testing.T) {
	got, err := findAll(t, nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindAll_OrderAndRepetition(t *testing.T) {
	words := []string{"ab", "ba", "aa"}

	got, err := findAll(t, words)
	require.NoError(t, err)
	assert.Equal(t, []square.Square{
		{"ab", "ba"},
		{"ba", "ab"},
		{"ba", "aa"},
		{"aa", "ab"},
		{"aa", "aa"},
	}, got)
	assertWellFormed(t, words, got)
}

func TestFindAll_ThreeLetterProperties(t *testing.T) {
	words := []string{"bat", "ate", "tea", "ear", "art", "tar", "rat"}

	got, err := findAll(t, words)
	require.NoError(t, err)
	assert.Len(t, got, 4)
	assertWellFormed(t, words, got)
}

func TestFindAll_Idempotent(t *testing.T) {
	words := []string{"bat", "ate", "tea", "ear", "art", "tar", "rat"}
	idx, err := trie.Build(words)
	require.NoError(t, err)

	first, err := square.FindAll(words, idx)
	require.NoError(t, err)
	second, err := square.FindAll(words, idx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindAll_InputErrors(t *testing.T) {
	_, err := square.FindAll([]string{"ab"}, nil)
	assert.ErrorIs(t, err, square.ErrNilIndex)

	idx, err := trie.Build([]string{"ab", "ba"})
	require.NoError(t, err)
	_, err = square.FindAll([]string{"ab"}, idx)
	assert.ErrorIs(t, err, square.ErrIndexMismatch)

	_, err = findAll(t, []string{"ab", "abc"})
	assert.ErrorIs(t, err, square.ErrInconsistentWordLength)

	_, err = findAll(t, []string{"ab", ""})
	assert.ErrorIs(t, err, square.ErrEmptyWord)
}

func TestFindAll_IndexFromOtherList(t *testing.T) {
	// Same length as the searched list, different words.
	idx, err := trie.Build([]string{"bat", "ate", "tea"})
	require.NoError(t, err)

	got, err := square.FindAll([]string{"tar", "ear", "rat"}, idx)
	assert.ErrorIs(t, err, square.ErrIndexMismatch)
	assert.Nil(t, got)

	// A list that breaks a–z never shares a fingerprint with a built index.
	idx, err = trie.Build([]string{"abc"})
	require.NoError(t, err)
	_, err = square.FindAll([]string{"aBc"}, idx)
	assert.ErrorIs(t, err, square.ErrIndexMismatch)
}

func TestSolve(t *testing.T) {
	got, err := square.Solve([]string{"ab", "ba"})
	require.NoError(t, err)
	assert.Equal(t, []square.Square{{"ab", "ba"}, {"ba", "ab"}}, got)

	_, err = square.Solve([]string{"ab", "B4"})
	assert.ErrorIs(t, err, trie.ErrInvalidCharacter)
}

func TestFindAll_HookOrder(t *testing.T) {
	var trace []string
	got, err := findAll(t, []string{"ab", "ba"},
		square.WithOnPlace(func(depth int, word string) error {
			trace = append(trace, fmt.Sprintf("place %d %s", depth, word))
			return nil
		}),
		square.WithOnBacktrack(func(depth int, word string) error {
			trace = append(trace, fmt.Sprintf("back %d %s", depth, word))
			return nil
		}),
		square.WithOnComplete(func(sq square.Square) error {
			trace = append(trace, "done "+sq[0]+"/"+sq[1])
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{
		"place 0 ab", "place 1 ba", "done ab/ba", "back 1 ba", "back 0 ab",
		"place 0 ba", "place 1 ab", "done ba/ab", "back 1 ab", "back 0 ba",
	}, trace)
}

func TestFindAll_HookErrorAborts(t *testing.T) {
	boom := errors.New("boom")

	got, err := findAll(t, []string{"ab", "ba"},
		square.WithOnComplete(func(sq square.Square) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)

	_, err = findAll(t, []string{"ab", "ba"},
		square.WithOnPlace(func(depth int, word string) error {
			if depth == 1 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "OnPlace")

	got, err = findAll(t, []string{"ab", "ba"},
		square.WithOnBacktrack(func(depth int, word string) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, got, 1, "square completed before the first backtrack is kept")
}

func TestFindAll_MaxResults(t *testing.T) {
	got, err := findAll(t, []string{"ab", "ba", "aa"}, square.WithMaxResults(2))
	require.NoError(t, err)
	assert.Equal(t, []square.Square{{"ab", "ba"}, {"ba", "ab"}}, got)

	got, err = findAll(t, []string{"ab", "ba", "aa"}, square.WithMaxResults(0))
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestFindAll_ParallelMatchesSequential(t *testing.T) {
	lists := [][]string{
		{"area", "lead", "wall", "lady", "ball"},
		{"ab", "ba", "aa"},
		{"bat", "ate", "tea", "ear", "art", "tar", "rat"},
		{"abcd", "bcda"},
	}
	for _, words := range lists {
		seq, err := findAll(t, words)
		require.NoError(t, err)

		for _, workers := range []int{2, 4, 16} {
			par, err := findAll(t, words, square.WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, seq, par, "workers=%d words=%v", workers, words)
		}

		limited, err := findAll(t, words, square.WithWorkers(3), square.WithMaxResults(3))
		require.NoError(t, err)
		want := seq
		if len(want) > 3 {
			want = want[:3]
		}
		assert.Equal(t, want, limited)
	}
}

func TestFindAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := findAll(t, []string{"ab", "ba"}, square.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = findAll(t, []string{"ab", "ba"}, square.WithContext(ctx), square.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindAll_CancelFromHook(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got, err := findAll(t, []string{"ab", "ba", "aa"},
		square.WithContext(ctx),
		square.WithOnComplete(func(sq square.Square) error {
			cancel()
			return nil
		}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, got, 1, "first square is kept, search stops at the next row")
}

func TestValidateWords(t *testing.T) {
	n, err := square.ValidateWords(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)

	n, err = square.ValidateWords([]string{"wall", "ball"})
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = square.ValidateWords([]string{"wall", "bal"})
	assert.ErrorIs(t, err, square.ErrInconsistentWordLength)
}

func TestSquare_Helpers(t *testing.T) {
	sq := square.Square{"ball", "area", "lead", "lady"}
	assert.Equal(t, "ball\narea\nlead\nlady", sq.String())
	assert.Equal(t, []string{"a", "b", "d", "e", "l", "r", "y"}, sq.Characters())

	assert.True(t, square.IsValid(sq))
	assert.True(t, square.IsValid(square.Square{}))
	assert.False(t, square.IsValid(square.Square{"ab", "ab"}))
	assert.False(t, square.IsValid(square.Square{"ab", "b"}))
}

// hookCounter counts hook calls and records the completed squares.
type hookCounter struct {
	places, backtracks int
	completed          []square.Square
}

func (h *hookCounter) options() []square.Option {
	return []square.Option{
		square.WithOnPlace(func(int, string) error { h.places++; return nil }),
		square.WithOnBacktrack(func(int, string) error { h.backtracks++; return nil }),
		square.WithOnComplete(func(sq square.Square) error {
			h.completed = append(h.completed, sq)
			return nil
		}),
	}
}

func TestFindAll_ParallelLimitStopsLikeSequential(t *testing.T) {
	lists := [][]string{
		{"ab", "ba", "aa", "bb"},
		{"ab", "ba", "aa"},
		{"bat", "ate", "tea", "ear", "art", "tar", "rat"},
	}
	for _, words := range lists {
		for _, limit := range []int{1, 2, 3} {
			var seq hookCounter
			want, err := findAll(t, words, append(seq.options(), square.WithMaxResults(limit))...)
			require.NoError(t, err)

			for _, workers := range []int{2, 3, 4} {
				var par hookCounter
				opts := append(par.options(), square.WithMaxResults(limit), square.WithWorkers(workers))
				got, err := findAll(t, words, opts...)
				require.NoError(t, err)

				assert.Equal(t, want, got, "words=%v limit=%d workers=%d", words, limit, workers)
				assert.Equal(t, seq, par, "hook calls words=%v limit=%d workers=%d", words, limit, workers)
				assert.Len(t, par.completed, len(got), "OnComplete fires only for returned squares")
			}
		}
	}
}

func TestFindAll_ParallelLimitOneCounts(t *testing.T) {
	var par hookCounter
	opts := append(par.options(), square.WithMaxResults(1), square.WithWorkers(4))
	got, err := findAll(t, []string{"ab", "ba", "aa", "bb"}, opts...)
	require.NoError(t, err)

	assert.Equal(t, []square.Square{{"ab", "ba"}}, got)
	assert.Equal(t, 2, par.places, "seed ab and its one completion")
	assert.Equal(t, []square.Square{{"ab", "ba"}}, par.completed)
}

func TestFindAll_ParallelHookTraceMatchesSequential(t *testing.T) {
	words := []string{"bat", "ate", "tea", "ear", "art", "tar", "rat"}
	trace := func(out *[]string) []square.Option {
		return []square.Option{
			square.WithOnPlace(func(depth int, word string) error {
				*out = append(*out, fmt.Sprintf("place %d %s", depth, word))
				return nil
			}),
			square.WithOnBacktrack(func(depth int, word string) error {
				*out = append(*out, fmt.Sprintf("back %d %s", depth, word))
				return nil
			}),
		}
	}

	var seq, par []string
	_, err := findAll(t, words, trace(&seq)...)
	require.NoError(t, err)
	_, err = findAll(t, words, append(trace(&par), square.WithWorkers(4))...)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestFindAll_ParallelHookErrors(t *testing.T) {
	boom := errors.New("boom")
	words := []string{"ab", "ba", "aa"}

	got, err := findAll(t, words, square.WithWorkers(2),
		square.WithOnComplete(func(sq square.Square) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)

	calls := 0
	got, err = findAll(t, words, square.WithWorkers(3),
		square.WithOnComplete(func(sq square.Square) error {
			calls++
			if calls == 3 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []square.Square{{"ab", "ba"}, {"ba", "ab"}}, got)
	assert.Equal(t, 3, calls, "no hook runs after the failing one")

	got, err = findAll(t, words, square.WithWorkers(2),
		square.WithOnBacktrack(func(depth int, word string) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "OnBacktrack")
	assert.Len(t, got, 1)
}

func TestFindAll_ParallelDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	got, err := findAll(t, []string{"ab", "ba", "aa"}, square.WithContext(ctx), square.WithWorkers(2))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, got)
}

func TestFindAll_ParallelCancelFromHook(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got, err := findAll(t, []string{"ab", "ba", "aa"},
		square.WithContext(ctx),
		square.WithWorkers(3),
		square.WithOnComplete(func(sq square.Square) error {
			cancel()
			return nil
		}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []square.Square{{"ab", "ba"}}, got, "same prefix as the sequential search")
}
