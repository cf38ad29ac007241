// chessrules plays, validates and previews chess positions from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeOutput := setupOutputFile(cfg)
	log := cfg.Log.NewLogger(cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, log, optionsFromFlags(), flag.Args(), os.Stdin)
	stop()
	closeOutput()

	if err != nil {
		log.Debug().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional configuration file, applies flag overrides
// and validates the result.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupOutputFile configures the output file based on command-line flags
// and returns a function that closes it.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return func() {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// run dispatches to validation, query, analysis preview or plain play.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts options, args []string, stdin io.Reader) error {
	if opts.validate != "" {
		return runValidate(ctx, cfg, log, opts.validate, stdin)
	}

	g, err := playGame(cfg, log, opts.moves, args)
	if err != nil {
		return err
	}

	switch {
	case opts.query:
		return writeQuery(g, cfg)
	case opts.analysis != "":
		return runAnalysis(g, cfg, log, opts, stdin)
	}
	return writeGame(g, cfg)
}

// openInput opens path for reading, with "-" meaning stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves from a start position and prints the game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)   play -moves and the remaining arguments, print the game\n")
	fmt.Fprintf(os.Stderr, "  -query      print the move-search query for the resulting position\n")
	fmt.Fprintf(os.Stderr, "  -analysis   preview a move-search reply; with -human the computer replies\n")
	fmt.Fprintf(os.Stderr, "  -validate   check one FEN per line and report duplicates\n")
}
