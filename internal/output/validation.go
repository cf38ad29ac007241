package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// JSONValidation represents the validation of one input line. Line numbers
// are 1-based.
type JSONValidation struct {
	Line        int    `json:"line"`
	FEN         string `json:"fen"`
	Valid       bool   `json:"valid"`
	Error       string `json:"error,omitempty"`
	LegalMoves  int    `json:"legalMoves,omitempty"`
	Check       bool   `json:"check,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	DuplicateOf int    `json:"duplicateOf,omitempty"`
}

// ValidationToJSON converts a validation result.
func ValidationToJSON(r worker.ProcessResult) JSONValidation {
	jv := JSONValidation{
		Line:  r.Index + 1,
		FEN:   r.FEN,
		Valid: r.Valid(),
	}
	if !r.Valid() {
		jv.Error = r.Error.Error()
		return jv
	}
	jv.LegalMoves = r.LegalMoves
	jv.Check = r.Check
	if r.Outcome.Over() {
		jv.Outcome = r.Outcome.Message()
	}
	if r.DuplicateOf >= 0 {
		jv.DuplicateOf = r.DuplicateOf + 1
	}
	return jv
}

// OutputValidation prints one line per result, or a JSON array.
func OutputValidation(results []worker.ProcessResult, cfg *config.Config) error {
	w := cfg.OutputFile

	if cfg.Output.Format == config.JSON {
		out := make([]JSONValidation, len(results))
		for i, r := range results {
			out[i] = ValidationToJSON(r)
			if !cfg.Duplicate.Report {
				out[i].DuplicateOf = 0
			}
		}
		return encodeJSON(w, out)
	}

	for _, r := range results {
		jv := ValidationToJSON(r)
		if !jv.Valid {
			fmt.Fprintf(w, "%d: error: %s\n", jv.Line, jv.Error)
			continue
		}

		notes := []string{fmt.Sprintf("%d legal moves", jv.LegalMoves)}
		if jv.Check {
			notes = append(notes, "check")
		}
		if jv.Outcome != "" {
			notes = append(notes, jv.Outcome)
		}
		if cfg.Duplicate.Report && jv.DuplicateOf > 0 {
			notes = append(notes, fmt.Sprintf("same position as line %d", jv.DuplicateOf))
		}
		fmt.Fprintf(w, "%d: ok (%s)\n", jv.Line, strings.Join(notes, ", "))
	}
	return nil
}
