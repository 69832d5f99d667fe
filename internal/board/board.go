// Package board implements the cookie and milk connect-four style game played
// on a fixed 4x4 grid.
//
// Tiles drop to the lowest empty row of the chosen column. A game ends when
// one team holds four in a row on a row, a column or either full diagonal,
// or when the grid fills up without a winner.
package board

import (
	"errors"
	"math/rand"
)

// Size is the width and height of the grid.
const Size = 4

// Tile is the content of a single grid cell.
type Tile int

const (
	Empty Tile = iota
	Cookie
	Milk
)

var (
	ErrColumnIsFull  = errors.New("column is full")
	ErrGameIsOver    = errors.New("game is over")
	ErrInvalidTeam   = errors.New("invalid team")
	ErrInvalidColumn = errors.New("invalid column")
)

// ParseTeam maps a team name to its tile.
func ParseTeam(team string) (Tile, error) {
	switch team {
	case "cookie":
		return Cookie, nil
	case "milk":
		return Milk, nil
	}
	return Empty, ErrInvalidTeam
}

// Board is a 4x4 grid. Row 0 is the top row.
//
// Board is a value type; copying it copies the grid.
type Board struct {
	Grid [Size][Size]Tile
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// NewRandom fills every tile with a cookie or milk chosen by a coin flip from
// rng, row by row. The result never contains empty tiles.
func NewRandom(rng *rand.Rand) Board {
	var b Board
	for row := range b.Grid {
		for col := range b.Grid[row] {
			if rng.Intn(2) == 0 {
				b.Grid[row][col] = Cookie
			} else {
				b.Grid[row][col] = Milk
			}
		}
	}
	return b
}

// Reset empties every tile.
func (b *Board) Reset() {
	b.Grid = [Size][Size]Tile{}
}

// Place drops a tile for team into column, numbered 1 to 4 from the left.
//
// Checks are made in order: a finished game yields ErrGameIsOver, an unknown
// team ErrInvalidTeam, an out of range column ErrInvalidColumn and a column
// with no empty tile ErrColumnIsFull. On success the returned outcome is the
// terminal text produced by the move, or "" if the game goes on.
func (b *Board) Place(team string, column int) (string, error) {
	if _, over := b.Winner(); over {
		return "", ErrGameIsOver
	}

	tile, err := ParseTeam(team)
	if err != nil {
		return "", err
	}

	if column < 1 || column > Size {
		return "", ErrInvalidColumn
	}
	col := column - 1

	placed := false
	for row := Size - 1; row >= 0; row-- {
		if b.Grid[row][col] == Empty {
			b.Grid[row][col] = tile
			placed = true
			break
		}
	}
	if !placed {
		return "", ErrColumnIsFull
	}

	outcome, _ := b.Winner()
	return outcome, nil
}

// Winner reports whether the game has ended and how.
//
// Lines are scanned rows first, then columns, then the top-left to
// bottom-right diagonal, then the top-right to bottom-left diagonal; the
// first complete line decides the winner. A full grid without a complete
// line is a draw.
func (b Board) Winner() (string, bool) {
	for _, line := range b.lines() {
		if t := line[0]; t != Empty && line[1] == t && line[2] == t && line[3] == t {
			return t.String() + " wins!\n", true
		}
	}

	if b.Full() {
		return "No winner.\n", true
	}
	return "", false
}

// Full reports whether no empty tile is left.
func (b Board) Full() bool {
	for _, row := range b.Grid {
		for _, t := range row {
			if t == Empty {
				return false
			}
		}
	}
	return true
}

// lines returns every winning line in scan order.
func (b Board) lines() [][Size]Tile {
	lines := make([][Size]Tile, 0, 2*Size+2)
	lines = append(lines, b.Grid[:]...)

	for col := 0; col < Size; col++ {
		var line [Size]Tile
		for row := 0; row < Size; row++ {
			line[row] = b.Grid[row][col]
		}
		lines = append(lines, line)
	}

	var diag, anti [Size]Tile
	for i := 0; i < Size; i++ {
		diag[i] = b.Grid[i][i]
		anti[i] = b.Grid[Size-1-i][i]
	}
	return append(lines, diag, anti)
}
