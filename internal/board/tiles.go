// internal/board/tiles.go
//
// The physical dice. Two standard 16-die Boggle sets are provided; each
// die resolves to exactly one face at board construction and the face is
// never re-rolled afterwards.

package board

import (
	"fmt"
	"math/rand"
)

// ClassicTiles is the original 16-die Boggle distribution. "Qu" is a
// single two-letter face.
var ClassicTiles = [NumCells][6]string{
	{"A", "A", "C", "I", "O", "T"},
	{"A", "B", "I", "L", "T", "Y"},
	{"A", "B", "J", "M", "O", "Qu"},
	{"A", "C", "D", "E", "M", "P"},
	{"A", "C", "E", "L", "R", "S"},
	{"A", "D", "E", "N", "V", "Z"},
	{"A", "H", "M", "O", "R", "S"},
	{"B", "I", "F", "O", "R", "X"},
	{"D", "E", "N", "O", "S", "W"},
	{"D", "K", "N", "O", "T", "U"},
	{"E", "E", "F", "H", "I", "Y"},
	{"E", "G", "K", "L", "U", "Y"},
	{"E", "G", "I", "N", "T", "V"},
	{"E", "H", "I", "N", "P", "S"},
	{"E", "L", "P", "S", "T", "U"},
	{"G", "I", "L", "R", "U", "W"},
}

// NewTiles is the post-1987 distribution.
var NewTiles = [NumCells][6]string{
	{"A", "A", "E", "E", "G", "N"},
	{"A", "B", "B", "J", "O", "O"},
	{"A", "C", "H", "O", "P", "S"},
	{"A", "F", "F", "K", "P", "S"},
	{"A", "O", "O", "T", "T", "W"},
	{"C", "I", "M", "O", "T", "U"},
	{"D", "E", "I", "L", "R", "X"},
	{"D", "E", "L", "R", "V", "Y"},
	{"D", "I", "S", "T", "T", "Y"},
	{"E", "E", "G", "H", "N", "W"},
	{"E", "E", "I", "N", "S", "U"},
	{"E", "H", "R", "T", "V", "W"},
	{"E", "I", "O", "S", "S", "T"},
	{"E", "L", "R", "T", "T", "Y"},
	{"H", "I", "M", "N", "U", "Qu"},
	{"H", "L", "N", "N", "R", "Z"},
}

// Tile is one die assigned to a board position. Face is resolved eagerly
// when the tile is created and is immutable from then on.
type Tile struct {
	Faces [6]string
	Face  string
}

// NewTile rolls a die: one of faces is chosen via rng and fixed for the
// life of the tile.
func NewTile(faces [6]string, rng *rand.Rand) Tile {
	return Tile{Faces: faces, Face: faces[rng.Intn(len(faces))]}
}

// TileSet returns the named die distribution ("classic" or "new").
func TileSet(name string) ([NumCells][6]string, error) {
	switch name {
	case "classic":
		return ClassicTiles, nil
	case "new":
		return NewTiles, nil
	default:
		return [NumCells][6]string{}, fmt.Errorf("invalid tile set %q", name)
	}
}
