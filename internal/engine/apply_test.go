package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestApplyMove_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		req     chess.MoveRequest
		wantErr error
	}{
		{
			name:    "off board origin",
			fen:     InitialFEN,
			req:     chess.MoveRequest{From: chess.Sq(-1, 4), To: sq("e4")},
			wantErr: chesserrors.ErrInvalidCoordinate,
		},
		{
			name:    "off board destination",
			fen:     InitialFEN,
			req:     chess.MoveRequest{From: sq("e2"), To: chess.Sq(8, 4)},
			wantErr: chesserrors.ErrInvalidCoordinate,
		},
		{
			name:    "empty origin",
			fen:     InitialFEN,
			req:     req("e4e5"),
			wantErr: chesserrors.ErrNotYourPiece,
		},
		{
			name:    "opponent piece",
			fen:     InitialFEN,
			req:     req("e7e5"),
			wantErr: chesserrors.ErrNotYourPiece,
		},
		{
			name:    "not a safe square",
			fen:     InitialFEN,
			req:     req("e2e5"),
			wantErr: chesserrors.ErrIllegalMove,
		},
		{
			name:    "promotion to king",
			fen:     "8/P3k3/8/8/8/8/8/4K3 w - - 0 1",
			req:     req("a7a8k"),
			wantErr: chesserrors.ErrInvalidPromotion,
		},
		{
			name:    "promotion on ordinary move",
			fen:     InitialFEN,
			req:     chess.MoveRequest{From: sq("e2"), To: sq("e4"), Promotion: chess.Queen},
			wantErr: chesserrors.ErrInvalidPromotion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			before := Encode(pos)

			_, err := ApplyMove(pos, pos.SafeSquares(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ApplyMove() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Errorf("ApplyMove() error = %v, want an illegal move kind", err)
			}

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Errorf("ApplyMove() error %T is not a *MoveError", err)
			}

			if after := Encode(pos); after != before {
				t.Errorf("position changed on rejection:\nbefore %s\nafter  %s", before, after)
			}
		})
	}
}

func TestApplyMove_Counters(t *testing.T) {
	pos := NewPosition()

	steps := []struct {
		move         string
		wantHalfmove int
		wantMoveNum  int
		wantToMove   chess.Colour
	}{
		{"g1f3", 1, 1, chess.Black},
		{"g8f6", 2, 2, chess.White},
		{"e2e4", 0, 2, chess.Black},
		{"f6e4", 0, 3, chess.White},
		{"b1c3", 1, 3, chess.Black},
	}

	for _, step := range steps {
		play(t, pos, step.move)
		if pos.HalfmoveClock != step.wantHalfmove {
			t.Errorf("after %s HalfmoveClock = %d, want %d", step.move, pos.HalfmoveClock, step.wantHalfmove)
		}
		if pos.MoveNumber != step.wantMoveNum {
			t.Errorf("after %s MoveNumber = %d, want %d", step.move, pos.MoveNumber, step.wantMoveNum)
		}
		if pos.ToMove != step.wantToMove {
			t.Errorf("after %s ToMove = %v, want %v", step.move, pos.ToMove, step.wantToMove)
		}
	}

	if got := pos.FiftyMoveCounter(); got != 0.5 {
		t.Errorf("FiftyMoveCounter() = %v, want 0.5", got)
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name       string
		move       string
		wantSAN    string
		rookFrom   string
		rookTo     string
		wantRights string
	}{
		{"kingside", "e1g1", "O-O", "h1", "f1", "kq"},
		{"queenside", "e1c1", "O-O-O", "a1", "d1", "kq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			result := play(t, pos, tt.move)

			if result.SAN != tt.wantSAN {
				t.Errorf("SAN = %q, want %q", result.SAN, tt.wantSAN)
			}
			if !result.Move.Types.Has(chess.Castling) {
				t.Errorf("Types = %v, want Castling", result.Move.Types)
			}
			if got := pos.Board.At(sq(tt.rookFrom)); !got.IsEmpty() {
				t.Errorf("rook still on %s", tt.rookFrom)
			}
			rook := pos.Board.At(sq(tt.rookTo))
			if !rook.Is(chess.White, chess.Rook) || !rook.Moved {
				t.Errorf("At(%s) = %+v, want moved white rook", tt.rookTo, rook)
			}
			if got := castlingRights(pos.Board); got != tt.wantRights {
				t.Errorf("castling rights = %q, want %q", got, tt.wantRights)
			}
		})
	}
}

func TestApplyMove_RookMoveDropsOneRight(t *testing.T) {
	pos := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	play(t, pos, "h1h2", "a8a7")
	if got := castlingRights(pos.Board); got != "Qk" {
		t.Errorf("castling rights = %q, want %q", got, "Qk")
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantKind  chess.PieceKind
		wantSAN   string
		wantTypes chess.MoveType
	}{
		{"default queen", "8/P3k3/8/8/8/8/8/4K3 w - - 0 1", "a7a8", chess.Queen, "a8=Q", chess.Promotion},
		{"under-promotion", "8/P3k3/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", chess.Knight, "a8=N", chess.Promotion},
		{"with check", "7k/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", chess.Queen, "a8=Q+", chess.Promotion | chess.Check},
		{"capture promotion", "1r5k/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8r", chess.Rook, "axb8=R+", chess.Capture | chess.Promotion | chess.Check},
		{"black promotes", "4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a2a1", chess.Queen, "a1=Q+", chess.Promotion | chess.Check},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			result := play(t, pos, tt.move)

			to := sq(tt.move[2:4])
			if got := pos.Board.At(to).Kind; got != tt.wantKind {
				t.Errorf("promoted kind = %v, want %v", got, tt.wantKind)
			}
			if result.SAN != tt.wantSAN {
				t.Errorf("SAN = %q, want %q", result.SAN, tt.wantSAN)
			}
			if result.Move.Types != tt.wantTypes {
				t.Errorf("Types = %v, want %v", result.Move.Types, tt.wantTypes)
			}
			if result.Move.Promotion != tt.wantKind {
				t.Errorf("Move.Promotion = %v, want %v", result.Move.Promotion, tt.wantKind)
			}
		})
	}
}

func TestApplyMove_FoolsMate(t *testing.T) {
	pos := NewPosition()
	result := play(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")

	if result.SAN != "Qh4#" {
		t.Errorf("SAN = %q, want %q", result.SAN, "Qh4#")
	}
	if result.Move.Types != chess.CheckMate {
		t.Errorf("Types = %v, want CheckMate", result.Move.Types)
	}
	if result.SafeSquares.Len() != 0 {
		t.Errorf("SafeSquares.Len() = %d, want 0", result.SafeSquares.Len())
	}
	king, ok := result.CheckState.King()
	if !ok || king != sq("e1") {
		t.Errorf("CheckState = %v, want InCheck(e1)", result.CheckState)
	}
	if !IsCheckmate(pos) {
		t.Error("IsCheckmate() = false, want true")
	}
}

func TestApplyMove_BasicMoveTag(t *testing.T) {
	pos := NewPosition()
	result := play(t, pos, "e2e4")

	if result.Move.Types != chess.BasicMove {
		t.Errorf("Types = %v, want BasicMove", result.Move.Types)
	}
	want := &chess.LastMove{
		Piece: chess.Piece{Kind: chess.Pawn, Colour: chess.White, Moved: true},
		From:  sq("e2"),
		To:    sq("e4"),
		Types: chess.BasicMove,
	}
	if diff := cmp.Diff(want, pos.LastMove); diff != "" {
		t.Errorf("LastMove mismatch (-want +got):\n%s", diff)
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantSAN string
	}{
		{"pawn push", InitialFEN, []string{"e2e4"}, "e4"},
		{"knight", InitialFEN, []string{"g1f3"}, "Nf3"},
		{"pawn capture", InitialFEN, []string{"e2e4", "d7d5", "e4d5"}, "exd5"},
		{"piece capture", InitialFEN, []string{"e2e4", "d7d5", "e4d5", "d8d5"}, "Qxd5"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", []string{"b1d2"}, "Nbd2"},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", []string{"a1a3"}, "R1a3"},
		{"rank when group files repeat", "4k3/8/8/8/8/2Q5/2Q5/Q6K w - - 0 1", []string{"a1b2"}, "Q1b2"},
		{"full disambiguation", "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1", []string{"a1b2"}, "Qa1b2"},
		{"pinned rival needs none", "4r1k1/8/8/8/8/8/4N3/1N2K3 w - - 0 1", []string{"b1c3"}, "Nc3"},
		{"check", InitialFEN, []string{"e2e4", "f7f6", "d1h5"}, "Qh5+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustLoad(t, tt.fen)
			result := play(t, pos, tt.moves...)
			if result.SAN != tt.wantSAN {
				t.Errorf("SAN = %q, want %q", result.SAN, tt.wantSAN)
			}
		})
	}
}
