package chess

import "fmt"

// Coord addresses a square by rank and file, both 0-7.
// Rank 0 is White's first rank and file 0 is the a-file.
type Coord struct {
	Rank int
	File int
}

// Sq creates a coordinate from a rank and file index.
func Sq(rank, file int) Coord {
	return Coord{Rank: rank, File: file}
}

// Valid returns true if the coordinate lies on the 8x8 board.
func (c Coord) Valid() bool {
	return c.Rank >= 0 && c.Rank < BoardSize && c.File >= 0 && c.File < BoardSize
}

// Offset returns the coordinate shifted by the given direction.
func (c Coord) Offset(d Direction) Coord {
	return Coord{Rank: c.Rank + d.DRank, File: c.File + d.DFile}
}

// FileLetter returns the file as a letter 'a'-'h'.
func (c Coord) FileLetter() byte {
	return byte(c.File) + FileBase
}

// RankDigit returns the rank as a digit '1'-'8'.
func (c Coord) RankDigit() byte {
	return byte(c.Rank) + RankBase
}

// IsDark returns true for dark squares (a1 is dark).
func (c Coord) IsDark() bool {
	return (c.Rank+c.File)%2 == 0
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
	}
	return string([]byte{c.FileLetter(), c.RankDigit()})
}

// Less orders coordinates rank-major, used for stable iteration.
func (c Coord) Less(o Coord) bool {
	if c.Rank != o.Rank {
		return c.Rank < o.Rank
	}
	return c.File < o.File
}

// ParseSquare converts an algebraic square name such as "e4" to a coordinate.
func ParseSquare(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("square %q: want file letter and rank digit", s)
	}
	c := Coord{Rank: int(s[1]) - RankBase, File: int(s[0]) - FileBase}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("square %q is off the board", s)
	}
	return c, nil
}
