package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestComputeSafeSquares_InitialPosition(t *testing.T) {
	pos := NewPosition()
	safe := pos.SafeSquares()

	if got := safe.Len(); got != 20 {
		t.Errorf("Len() = %d, want 20", got)
	}
	if got := len(safe.Origins()); got != 10 {
		t.Errorf("len(Origins()) = %d, want 10 (8 pawns, 2 knights)", got)
	}

	want := []chess.Coord{sq("f3"), sq("h3")}
	if diff := cmp.Diff(want, safe.For(sq("g1")), cmpopts.SortSlices(chess.Coord.Less)); diff != "" {
		t.Errorf("For(g1) mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeSafeSquares_LeavesBoardUntouched(t *testing.T) {
	pos := mustLoad(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos.Board.View()

	_ = pos.SafeSquares()

	if diff := cmp.Diff(before, pos.Board.View()); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}

func TestComputeSafeSquares_Pins(t *testing.T) {
	// The e-file knight is pinned against its king by the rook.
	pos := mustLoad(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	safe := pos.SafeSquares()

	if dests := safe.For(sq("e2")); len(dests) != 0 {
		t.Errorf("pinned knight has destinations %v", dests)
	}
	if safe.Contains(sq("e1"), sq("e2")) {
		t.Error("king may not step onto its own knight")
	}
}

func TestComputeSafeSquares_MustAnswerCheck(t *testing.T) {
	// Black rook checks along the e-file; only blocks and king moves remain.
	pos := mustLoad(t, "4r1k1/8/8/8/8/8/3B4/4K3 w - - 0 1")
	safe := pos.SafeSquares()

	if !safe.Contains(sq("d2"), sq("e3")) {
		t.Error("Be3 should block the check")
	}
	if safe.Contains(sq("d2"), sq("c3")) {
		t.Error("Bc3 ignores the check")
	}
	if safe.Contains(sq("e1"), sq("e2")) {
		t.Error("Ke2 stays on the checked file")
	}
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingside  bool
		queenside bool
	}{
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"kingside only right", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", true, false},
		{"through check on f1", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"into check on g1", "r3k2r/8/8/2b5/8/8/8/R3K2R w KQkq - 0 1", false, true},
		{"out of check", "4k3/8/8/4r3/8/8/8/R3K2R w KQ - 0 1", false, false},
		{"queenside blocked by knight", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"b1 attacked does not matter", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", true, true},
		{"initial position blocked", InitialFEN, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			safe := pos.SafeSquares()

			if got := safe.Contains(sq("e1"), sq("g1")); got != tt.kingside {
				t.Errorf("O-O allowed = %v, want %v", got, tt.kingside)
			}
			if got := safe.Contains(sq("e1"), sq("c1")); got != tt.queenside {
				t.Errorf("O-O-O allowed = %v, want %v", got, tt.queenside)
			}
		})
	}
}

func TestEnPassant(t *testing.T) {
	t.Run("available after double push", func(t *testing.T) {
		pos := mustLoad(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
		if !pos.SafeSquares().Contains(sq("e5"), sq("d6")) {
			t.Fatal("exd6 e.p. not offered")
		}

		result := play(t, pos, "e5d6")
		if !result.Move.Types.Has(chess.Capture) {
			t.Errorf("Types = %v, want Capture", result.Move.Types)
		}
		if result.SAN != "exd6" {
			t.Errorf("SAN = %q, want %q", result.SAN, "exd6")
		}
		if got := pos.Board.At(sq("d5")); !got.IsEmpty() {
			t.Errorf("captured pawn still on d5: %v", got)
		}
		if pos.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d, want 0", pos.HalfmoveClock)
		}
	})

	t.Run("expires after one move", func(t *testing.T) {
		pos := mustLoad(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
		play(t, pos, "g1f3", "g8f6")
		if pos.SafeSquares().Contains(sq("e5"), sq("d6")) {
			t.Error("en passant still offered a move later")
		}
	})

	t.Run("rank pin forbids capture", func(t *testing.T) {
		pos := mustLoad(t, "4k3/8/8/KPp4r/8/8/8/8 w - c6 0 2")
		safe := pos.SafeSquares()
		if safe.Contains(sq("b5"), sq("c6")) {
			t.Error("bxc6 e.p. exposes the king on the fifth rank")
		}
		if !safe.Contains(sq("b5"), sq("b6")) {
			t.Error("b6 push should remain legal")
		}
	})
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"pawn gives check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"pawn does not attack ahead", "4k3/4P3/8/8/8/8/8/4K3 b - - 0 1", chess.Black, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"blocked rook", "4k3/4p3/8/8/8/8/8/4RK2 b - - 0 1", chess.Black, false},
		{"bishop on long diagonal", "7k/8/8/8/8/8/8/B3K3 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := Decode(tt.fen)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.fen, err)
			}
			if got := IsInCheck(pos.Board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.want)
			}

			state := CheckStateFor(pos.Board, tt.colour)
			if state.IsCheck() != tt.want {
				t.Errorf("CheckStateFor().IsCheck() = %v, want %v", state.IsCheck(), tt.want)
			}
			if king, ok := state.King(); ok {
				want, _ := pos.Board.FindKing(tt.colour)
				if king != want {
					t.Errorf("CheckStateFor().King() = %v, want %v", king, want)
				}
			}
		})
	}
}

func TestSquaresBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     []chess.Coord
	}{
		{"e1", "h1", []chess.Coord{sq("f1"), sq("g1")}},
		{"e1", "a1", []chess.Coord{sq("d1"), sq("c1"), sq("b1")}},
		{"a1", "d4", []chess.Coord{sq("b2"), sq("c3")}},
		{"e2", "e4", []chess.Coord{sq("e3")}},
		{"g1", "f3", nil},
		{"e4", "e5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.from+tt.to, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, squaresBetween(sq(tt.from), sq(tt.to))); diff != "" {
				t.Errorf("squaresBetween() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
