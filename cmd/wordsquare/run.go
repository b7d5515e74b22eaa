package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordsquare/config"
	"github.com/katalvlaran/wordsquare/report"
	"github.com/katalvlaran/wordsquare/square"
	"github.com/katalvlaran/wordsquare/trie"
	"github.com/katalvlaran/wordsquare/wordlist"
)

// run executes one load → index → search → report pass.
// A search timeout is not fatal: whatever was found is still reported.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load the dictionary
	var loadOpts []wordlist.Option
	if cfg.Dedupe {
		loadOpts = append(loadOpts, wordlist.WithDedupe())
	}
	words, st, err := wordlist.LoadFile(cfg.Input, cfg.WordLength, loadOpts...)
	if err != nil {
		return err
	}
	logger.Info("dictionary loaded",
		zap.String("path", cfg.Input),
		zap.Int("length", cfg.WordLength),
		zap.Int("lines", st.Lines),
		zap.Int("kept", st.Kept),
		zap.Int("wrong_length", st.WrongLength),
		zap.Int("non_alpha", st.NonAlpha),
		zap.Int("non_ascii", st.NonASCII),
		zap.Int("duplicates", st.Duplicates),
	)

	// 2. Build the prefix index
	idx, err := trie.Build(words)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	logger.Info("index built", zap.Int("words", idx.Len()), zap.Int("nodes", idx.Nodes()))

	// 3. Search
	limit, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	opts := []square.Option{
		square.WithContext(ctx),
		square.WithWorkers(cfg.Search.Workers),
		square.WithMaxResults(cfg.Search.MaxResults),
	}
	opts = append(opts, narration(logger)...)

	start := time.Now()
	squares, err := square.FindAll(words, idx, opts...)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("search timed out, reporting partial results",
			zap.Duration("timeout", limit), zap.Int("squares", len(squares)))
	case err != nil:
		return fmt.Errorf("search: %w", err)
	}
	logger.Info("search finished",
		zap.Duration("elapsed", elapsed),
		zap.String("elapsed_seconds", fmt.Sprintf("%.2f", elapsed.Seconds())),
		zap.Int("squares", len(squares)),
		zap.Int("workers", cfg.Search.Workers),
	)

	// 4. Echo to stdout
	if cfg.Output.Print {
		if err = echo(stdout, cfg.Output.PrintFormat, squares); err != nil {
			return err
		}
	}

	// 5. Reports
	outputs := []struct {
		path   string
		format report.Format
	}{
		{cfg.Output.Text, report.FormatText},
		{cfg.Output.JSON, report.FormatJSON},
		{cfg.Output.YAML, report.FormatYAML},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err = report.WriteFile(out.path, out.format, squares); err != nil {
			return err
		}
		logger.Info("results written", zap.String("path", out.path), zap.Stringer("format", out.format))
	}

	return nil
}

// echo renders squares to w: the plain listing when format is empty,
// otherwise the named report format.
func echo(w io.Writer, format string, squares []square.Square) error {
	if format == "" {
		return printSquares(w, squares)
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	return report.Write(w, f, squares)
}

// printSquares writes each square's rows followed by a blank line, or the
// no-result message.
func printSquares(w io.Writer, squares []square.Square) error {
	if len(squares) == 0 {
		_, err := fmt.Fprintln(w, report.NoSquaresMessage)
		return err
	}

	if _, err := fmt.Fprintln(w, "Word Squares:"); err != nil {
		return err
	}
	for _, sq := range squares {
		if _, err := fmt.Fprintf(w, "%s\n\n", sq); err != nil {
			return err
		}
	}

	return nil
}

// narration returns search hooks that log every step at debug level.
// They are omitted entirely when debug is disabled.
func narration(logger *zap.Logger) []square.Option {
	if !logger.Core().Enabled(zap.DebugLevel) {
		return nil
	}

	return []square.Option{
		square.WithOnPlace(func(depth int, word string) error {
			if depth == 0 {
				logger.Debug("starting new word square", zap.String("word", word))
			} else {
				logger.Debug("trying word", zap.Int("depth", depth), zap.String("word", word))
			}
			return nil
		}),
		square.WithOnBacktrack(func(depth int, word string) error {
			if depth > 0 {
				logger.Debug("backtracking", zap.Int("depth", depth), zap.String("word", word))
			}
			return nil
		}),
		square.WithOnComplete(func(sq square.Square) error {
			logger.Debug("completed word square", zap.Strings("rows", sq))
			return nil
		}),
	}
}
