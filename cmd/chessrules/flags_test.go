package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// saveRestoreBool sets a bool flag and returns a function restoring it.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	want := config.NewConfig()
	applyFlags(cfg)

	if cfg.Game != want.Game || cfg.Output != want.Output || cfg.Batch != want.Batch {
		t.Errorf("applyFlags without flags changed the configuration: %+v", cfg)
	}
	if cfg.Analysis != want.Analysis || cfg.Duplicate != want.Duplicate || cfg.Log != want.Log {
		t.Errorf("applyFlags without flags changed the configuration: %+v", cfg)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name        string
		json        bool
		width       int
		history     bool
		wantFormat  config.OutputFormat
		wantLength  uint
		wantHistory bool
	}{
		{name: "defaults", width: -1, wantFormat: config.Text, wantLength: 80},
		{name: "json", json: true, width: -1, wantFormat: config.JSON, wantLength: 80},
		{name: "no wrapping", width: 0, wantFormat: config.Text, wantLength: 0},
		{name: "narrow", width: 40, wantFormat: config.Text, wantLength: 40},
		{name: "history", width: -1, history: true, wantFormat: config.Text, wantLength: 80, wantHistory: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(jsonOutput, tt.json)()
			defer saveRestoreInt(lineLength, tt.width)()
			defer saveRestoreBool(historyFlag, tt.history)()

			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Output.Format != tt.wantFormat {
				t.Errorf("Format = %q; want %q", cfg.Output.Format, tt.wantFormat)
			}
			if cfg.Output.MaxLineLength != tt.wantLength {
				t.Errorf("MaxLineLength = %d; want %d", cfg.Output.MaxLineLength, tt.wantLength)
			}
			if cfg.Output.History != tt.wantHistory {
				t.Errorf("History = %v; want %v", cfg.Output.History, tt.wantHistory)
			}
		})
	}
}

func TestApplyGameAndAnalysisFlags(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	defer saveRestoreString(startFEN, fen)()
	defer saveRestoreInt(level, 5)()
	defer saveRestoreString(human, "black")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.StartFEN() != fen {
		t.Errorf("StartFEN() = %q; want %q", cfg.StartFEN(), fen)
	}
	if cfg.Analysis.Level != 5 {
		t.Errorf("Level = %d; want 5", cfg.Analysis.Level)
	}
	if cfg.Analysis.Human != "black" {
		t.Errorf("Human = %q; want black", cfg.Analysis.Human)
	}
}

func TestApplyBatchFlags(t *testing.T) {
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreInt(maxPositions, 100)()

	cfg := config.NewConfig()
	cfg.Duplicate.Report = false
	applyFlags(cfg)

	if cfg.Batch.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Batch.Workers)
	}
	if !cfg.Duplicate.Report || cfg.Duplicate.MaxPositions != 100 {
		t.Errorf("Duplicate = %+v; want report with 100 positions", cfg.Duplicate)
	}
}

func TestApplyLogFlags(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreString(logFormat, "json")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v; want debug/json", cfg.Log)
	}
}

func TestOptionsFromFlags(t *testing.T) {
	defer saveRestoreString(movesFlag, "e2e4")()
	defer saveRestoreString(analysisFile, "-")()
	defer saveRestoreBool(uciOutput, true)()

	got := optionsFromFlags()
	want := options{moves: "e2e4", analysis: "-", uci: true}
	if got != want {
		t.Errorf("optionsFromFlags() = %+v; want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// loadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chessrules.yaml")
	data := "analysis:\n  level: 5\n  human: white\nbatch:\n  workers: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("file values", func(t *testing.T) {
		defer saveRestoreString(configFile, path)()
		cfg, err := loadConfig()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, cfg.Analysis.Level, 5)
		testutil.AssertEqual(t, cfg.Analysis.Human, "white")
		testutil.AssertEqual(t, cfg.Batch.Workers, 2)
	})

	t.Run("flags override the file", func(t *testing.T) {
		defer saveRestoreString(configFile, path)()
		defer saveRestoreInt(level, 1)()
		cfg, err := loadConfig()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, cfg.Analysis.Level, 1)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		defer saveRestoreString(human, "green")()
		_, err := loadConfig()
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		defer saveRestoreString(configFile, filepath.Join(t.TempDir(), "missing.yaml"))()
		_, err := loadConfig()
		testutil.AssertErrorIs(t, err, os.ErrNotExist)
	})
}
