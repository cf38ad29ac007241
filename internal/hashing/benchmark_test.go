package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkRepetitionTable_Record(b *testing.B) {
	keys := make([]string, 0, len(benchFENPositions))
	for _, fen := range benchFENPositions {
		keys = append(keys, engine.RepetitionKey(fen))
	}

	table := NewRepetitionTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Record(keys[i%len(keys)])
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	key := engine.RepetitionKey(benchFENPositions["Initial"])

	b.Run("Duplicates", func(b *testing.B) {
		dd := NewDuplicateDetector(0)
		dd.CheckAndAdd(key, 0)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(key, i)
		}
	})

	b.Run("ThreadSafe", func(b *testing.B) {
		dd := NewThreadSafeDuplicateDetector(0)
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				dd.CheckAndAdd(key, i)
				i++
			}
		})
	})
}
