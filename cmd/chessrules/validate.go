// validate.go - Batch FEN validation
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runValidate checks every position in path and reports the results. It
// fails when any position is invalid.
func runValidate(ctx context.Context, cfg *config.Config, log zerolog.Logger, path string, stdin io.Reader) error {
	in, err := openInput(path, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	fens, err := readFENs(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	v := worker.NewValidator(
		worker.WithPoolSize(cfg.Batch.Workers, cfg.Batch.QueueSize),
		worker.WithDuplicateCapacity(cfg.Duplicate.MaxPositions),
		worker.WithLog(log),
	)
	results, err := v.ValidateAll(ctx, fens)
	if err != nil {
		return err
	}

	if err := output.OutputValidation(results, cfg); err != nil {
		return err
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid() {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d positions", errors.ErrInvalidFEN, invalid, len(results))
	}
	return nil
}

// readFENs returns the non-blank lines of r.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}
