// Package analysis adapts the external move-search service to the game
// controller. The service itself is never contacted here: callers hand in
// its responses, and this package turns them into coordinate moves,
// evaluations and previews of the suggested line.
package analysis

import (
	"fmt"
	"math"
)

// Evaluation is a position score from White's point of view: either a
// centipawn score or a distance to mate. The zero value is an even
// centipawn score.
type Evaluation struct {
	centipawns int
	mate       int
	isMate     bool
}

// Centipawns returns a centipawn evaluation.
func Centipawns(cp int) Evaluation {
	return Evaluation{centipawns: cp}
}

// Pawns returns an evaluation from a score in pawns, rounded to centipawns.
func Pawns(p float64) Evaluation {
	return Evaluation{centipawns: int(math.Round(p * 100))}
}

// MateIn returns a mate evaluation. Positive n means White mates in n
// moves, negative n means Black does.
func MateIn(n int) Evaluation {
	return Evaluation{mate: n, isMate: true}
}

// IsMate reports whether the evaluation is a forced mate.
func (e Evaluation) IsMate() bool {
	return e.isMate
}

// Mate returns the mate distance, if any.
func (e Evaluation) Mate() (int, bool) {
	return e.mate, e.isMate
}

// Centipawns returns the centipawn score, if the evaluation is not a mate.
func (e Evaluation) Centipawns() (int, bool) {
	return e.centipawns, !e.isMate
}

// Pawns returns the score in pawns, if the evaluation is not a mate.
func (e Evaluation) Pawns() (float64, bool) {
	return float64(e.centipawns) / 100, !e.isMate
}

// String formats the evaluation for display: "+1.23", "-0.45", "+M3", "-M5".
func (e Evaluation) String() string {
	if e.isMate {
		if e.mate < 0 {
			return fmt.Sprintf("-M%d", -e.mate)
		}
		return fmt.Sprintf("+M%d", e.mate)
	}

	sign := "+"
	cp := e.centipawns
	if cp < 0 {
		sign = "-"
		cp = -cp
	}
	return fmt.Sprintf("%s%d.%02d", sign, cp/100, cp%100)
}

// Evaluation bar bounds. A centipawn score never fills the bar; only a
// forced mate reaches 0 or 100.
const (
	barScalePawns = 8.0
	barCeiling    = 90.0
	barFloor      = 10.0
)

// BarPercentage returns White's share of an evaluation bar, 0 to 100.
func (e Evaluation) BarPercentage() float64 {
	if e.isMate {
		if e.mate < 0 {
			return 0
		}
		return 100
	}

	pawns, _ := e.Pawns()
	return math.Max(barFloor, math.Min(barCeiling, 50+pawns/barScalePawns*100))
}
