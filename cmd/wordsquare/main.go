// Command wordsquare loads a dictionary, enumerates every word square that
// can be built from it, prints them and writes text/JSON/YAML reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wordsquare/config"
)

var (
	// Global flags
	configPath string
	length     int
	textOut    string
	jsonOut    string
	yamlOut    string
	printAs    string
	workers    int
	timeout    time.Duration
	maxResults int
	dedupe     bool
	quiet      bool
	verbose    bool
)

// newRootCmd builds the command tree. It is a constructor rather than a
// package-level var so tests get fresh flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordsquare [wordlist]",
		Short: "Enumerate every word square buildable from a word list",
		Long: `wordsquare reads a dictionary (one word per line), keeps the words of the
requested length, and finds every square whose rows read the same as its
columns:

  b a l l
  a r e a
  l e a d
  l a d y

Results are printed and written to results.txt and results.json by default.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&length, "length", "n", 4, "word length (square size)")
	f.StringVar(&textOut, "text-out", "results.txt", "text report path (empty to skip)")
	f.StringVar(&jsonOut, "json-out", "results.json", "JSON report path (empty to skip)")
	f.StringVar(&yamlOut, "yaml-out", "", "YAML report path (empty to skip)")
	f.StringVar(&printAs, "print-format", "", "stdout rendering: text, json or yaml (default plain listing)")
	f.IntVarP(&workers, "workers", "w", 1, "seed words searched concurrently")
	f.DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	f.IntVar(&maxResults, "max", 0, "stop after this many squares (0 = all)")
	f.BoolVar(&dedupe, "dedupe", false, "drop repeated dictionary words")
	f.BoolVarP(&quiet, "quiet", "q", false, "do not print squares to stdout")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging, including search narration")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
}

// resolveConfig layers defaults, the optional config file, the positional
// word-list argument and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Input = args[0]
	}

	f := cmd.Flags()
	if f.Changed("length") {
		cfg.WordLength = length
	}
	if f.Changed("text-out") {
		cfg.Output.Text = textOut
	}
	if f.Changed("json-out") {
		cfg.Output.JSON = jsonOut
	}
	if f.Changed("yaml-out") {
		cfg.Output.YAML = yamlOut
	}
	if f.Changed("print-format") {
		cfg.Output.PrintFormat = printAs
	}
	if f.Changed("workers") {
		cfg.Search.Workers = workers
	}
	if f.Changed("timeout") {
		cfg.Search.Timeout = timeout.String()
		if timeout == 0 {
			cfg.Search.Timeout = ""
		}
	}
	if f.Changed("max") {
		cfg.Search.MaxResults = maxResults
	}
	if f.Changed("dedupe") {
		cfg.Dedupe = dedupe
	}
	if f.Changed("quiet") {
		cfg.Output.Print = !quiet
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds a production zap logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zcfg.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "wordsquare:", err)
		stop()
		os.Exit(1)
	}
}
