// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// General options
	configFile = flag.String("config", "", "YAML configuration file")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")

	// Game options
	startFEN  = flag.String("fen", "", "Start position (default: the standard initial position)")
	movesFlag = flag.String("moves", "", "Coordinate moves to play, e.g. \"e2e4 e7e5 g1f3\"")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("json", false, "Output in JSON format")
	lineLength  = flag.Int("w", -1, "Maximum movetext line length (0 = no limit)")
	historyFlag = flag.Bool("history", false, "Print the position after every ply")

	// Batch validation
	validateFile = flag.String("validate", "", "Validate one FEN per line from this file (\"-\" for stdin)")
	workers      = flag.Int("workers", 0, "Number of validation workers (default: from config)")
	maxPositions = flag.Int("duplicate-capacity", -1, "Maximum positions remembered for duplicate reports (0 = unlimited)")

	// Analysis options
	analysisFile = flag.String("analysis", "", "Move-search response to preview (JSON, or raw UCI output with -uci)")
	uciOutput    = flag.Bool("uci", false, "The analysis file holds raw UCI engine output")
	level        = flag.Int("level", 0, "Computer strength 1-5 (default: from config)")
	human        = flag.String("human", "", "Colour played by the person (white or black); the computer plays the other side")
	queryOnly    = flag.Bool("query", false, "Print the move-search query for the current position")

	// Logging
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error (default: from config)")
	logFormat = flag.String("log-format", "", "Log format: console or json (default: from config)")
)

// applyFlags overrides configuration with the flags that were given.
func applyFlags(cfg *config.Config) {
	b := config.FromConfig(cfg)
	applyGameFlags(b)
	applyOutputFlags(b)
	applyBatchFlags(b)
	applyAnalysisFlags(b)
	applyLogFlags(b)
}

// applyGameFlags configures the start position.
func applyGameFlags(b *config.ConfigBuilder) {
	if *startFEN != "" {
		b.WithStartFEN(*startFEN)
	}
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(b *config.ConfigBuilder) {
	if *jsonOutput {
		b.WithOutputFormat(config.JSON)
	}
	if *lineLength >= 0 {
		b.WithMaxLineLength(uint(*lineLength))
	}
	if *historyFlag {
		b.WithHistory(true)
	}
}

// applyBatchFlags configures the validation pool and duplicate reports.
func applyBatchFlags(b *config.ConfigBuilder) {
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
	if *maxPositions >= 0 {
		b.WithDuplicateReport(true, *maxPositions)
	}
}

// applyAnalysisFlags configures the computer opponent.
func applyAnalysisFlags(b *config.ConfigBuilder) {
	if *level != 0 {
		b.WithLevel(*level)
	}
	if *human != "" {
		b.WithHuman(*human)
	}
}

// applyLogFlags configures logging.
func applyLogFlags(b *config.ConfigBuilder) {
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *logFormat != "" {
		b.WithLogFormat(*logFormat)
	}
}

// options selects what run does.
type options struct {
	moves    string
	validate string
	analysis string
	uci      bool
	query    bool
}

func optionsFromFlags() options {
	return options{
		moves:    *movesFlag,
		validate: *validateFile,
		analysis: *analysisFile,
		uci:      *uciOutput,
		query:    *queryOnly,
	}
}
