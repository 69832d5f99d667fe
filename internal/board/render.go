package board

import "strings"

const (
	wall = "⬜"
)

// String returns the emoji glyph of the tile.
func (t Tile) String() string {
	switch t {
	case Cookie:
		return "🍪"
	case Milk:
		return "🥛"
	default:
		return "⬛"
	}
}

// String renders the grid framed by walls on both sides and at the bottom.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b.Grid {
		sb.WriteString(wall)
		for _, t := range row {
			sb.WriteString(t.String())
		}
		sb.WriteString(wall)
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(wall, Size+2))
	sb.WriteString("\n")
	return sb.String()
}

// Render returns the grid followed by the terminal text, if any.
func (b Board) Render() string {
	outcome, _ := b.Winner()
	return b.String() + outcome
}
