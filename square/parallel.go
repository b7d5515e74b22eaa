package square

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordsquare/trie"
)

type eventKind uint8

const (
	eventPlace eventKind = iota
	eventBacktrack
	eventComplete
)

// event is one hook call recorded by a seed walker for later replay.
type event struct {
	kind  eventKind
	depth int
	word  string
	sq    Square
}

// seedRun is what one seed's walker leaves behind.
type seedRun struct {
	events []event
	err    error // nil, errStop, a context error or a dictionary error
}

// findParallel runs one walker per seed word on up to o.Workers goroutines.
// Walkers share only the read-only index and never call the user hooks
// themselves: each records its hook calls and completed squares privately.
// The calling goroutine replays finished seeds in seed order, exactly where
// the sequential search would call the hooks, and cancels the remaining
// walkers once the limit is met or a hook fails. Results, hook calls and
// partial results on cancellation therefore match the sequential search.
func findParallel(words []string, idx *trie.Index, size int, o Options) ([]Square, error) {
	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	runs := make([]*seedRun, len(words))
	done := make(chan int, len(words))

	// 1. Launch walkers in seed order; the feeder closes done once all finished
	go func() {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i := range words {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				runs[i] = runSeed(ctx, words, idx, size, o, i)
				done <- i
				return nil
			})
		}
		_ = g.Wait()
		close(done)
	}()

	// 2. Replay the contiguous prefix of finished seeds as it grows
	r := replayer{opts: &o, out: []Square{}}
	ready := make([]bool, len(words))
	next := 0
	var err error
	stopped := false
	for i := range done {
		ready[i] = true
		for !stopped && next < len(words) && ready[next] {
			if err = r.replay(runs[next]); err != nil {
				stopped = true
				cancel()
			}
			runs[next] = nil
			next++
		}
	}

	// 3. Decide the outcome
	switch {
	case errors.Is(err, errStop):
		return r.out, nil
	case err != nil:
		return r.out, err
	case next < len(words):
		// Launching stopped early; only the caller's context does that.
		return r.out, o.Ctx.Err()
	}

	return r.out, nil
}

// runSeed searches from words[i] with recording hooks in place of the
// caller's. Place events are kept whenever any hook is set, since the
// sequential search checks the context before every placement and a hook
// may cancel it.
func runSeed(ctx context.Context, words []string, idx *trie.Index, size int, o Options, i int) *seedRun {
	run := &seedRun{}
	rec := o
	rec.OnPlace, rec.OnBacktrack, rec.OnComplete = nil, nil, nil

	if o.OnPlace != nil || o.OnBacktrack != nil || o.OnComplete != nil {
		rec.OnPlace = func(depth int, word string) error {
			run.events = append(run.events, event{kind: eventPlace, depth: depth, word: word})
			return nil
		}
	}
	if o.OnBacktrack != nil {
		rec.OnBacktrack = func(depth int, word string) error {
			run.events = append(run.events, event{kind: eventBacktrack, depth: depth, word: word})
			return nil
		}
	}
	rec.OnComplete = func(sq Square) error {
		run.events = append(run.events, event{kind: eventComplete, sq: sq})
		return nil
	}

	w := newWalker(ctx, words, idx, size, rec)
	run.err = w.place(0, words[i])

	return run
}

// replayer feeds recorded events to the caller's hooks and collects results.
type replayer struct {
	opts *Options
	out  []Square
}

// replay returns errStop once MaxResults squares are collected, a hook or
// context error, or the seed's own error after its events are consumed.
func (r *replayer) replay(run *seedRun) error {
	o := r.opts
	for _, ev := range run.events {
		switch ev.kind {
		case eventPlace:
			if err := o.Ctx.Err(); err != nil {
				return err
			}
			if err := o.onPlace(ev.depth, ev.word); err != nil {
				return err
			}
		case eventBacktrack:
			if err := o.onBacktrack(ev.depth, ev.word); err != nil {
				return err
			}
		case eventComplete:
			if err := o.onComplete(ev.sq); err != nil {
				return err
			}
			r.out = append(r.out, ev.sq)
			if o.MaxResults > 0 && len(r.out) >= o.MaxResults {
				return errStop
			}
		}
	}

	return run.err
}
