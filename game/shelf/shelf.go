// Package shelf stores a player's tiles in columns that fill from the bottom.
package shelf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacobpatterson1549/shelfie/game/tile"
)

const (
	// Width is the number of columns on a shelf.
	Width = 5
	// Height is the number of rows in each column of a shelf.
	Height = 9
)

var (
	// ErrColumnOutOfBounds is returned for column indexes outside of [0, Width).
	ErrColumnOutOfBounds = errors.New("column out of bounds")
	// ErrColumnFull is returned when a column does not have room for more tiles.
	ErrColumnFull = errors.New("column is full")
)

// Shelf is a grid of tiles.  Row 0 is the bottom of each column.
// The occupied cells of a column are always contiguous, starting at row 0.
type Shelf struct {
	cells [Width][Height]tile.Tile
}

// Add places the tile in the lowest empty row of the column.
// The shelf is not changed if an error is returned.
func (s *Shelf) Add(t tile.Tile, column int) error {
	return s.AddAll([]tile.Tile{t}, column)
}

// AddAll places the tiles in the column, the first tile on the lowest empty row.
// Each tile takes one row.  No tiles are placed if the column does not have room for all of them.
// The column is checked, then the tiles, then the space in the column.
func (s *Shelf) AddAll(tiles []tile.Tile, column int) error {
	if err := checkColumn(column); err != nil {
		return err
	}
	for i, t := range tiles {
		if !t.Valid() {
			return fmt.Errorf("cannot add invalid tile at index %v: %d", i, int(t))
		}
	}
	if err := s.Fits(len(tiles), column); err != nil {
		return err
	}
	row := s.height(column)
	for _, t := range tiles {
		s.cells[column][row] = t
		row++
	}
	return nil
}

// Fits returns an error if n tiles cannot be added to the column.
// The column is checked to be on the shelf before it is checked for space.
func (s Shelf) Fits(n int, column int) error {
	if err := checkColumn(column); err != nil {
		return err
	}
	available := Height - s.height(column)
	if available < n {
		return fmt.Errorf("%w: cannot add %v tile(s) to column %v with %v available space(s)", ErrColumnFull, n, column, available)
	}
	return nil
}

// IsColumnFull determines if every cell in the column has a tile.
func (s Shelf) IsColumnFull(column int) (bool, error) {
	if err := checkColumn(column); err != nil {
		return false, err
	}
	return s.height(column) == Height, nil
}

// IsFull determines if every column is full.
func (s Shelf) IsFull() bool {
	for column := 0; column < Width; column++ {
		if full, _ := s.IsColumnFull(column); !full {
			return false
		}
	}
	return true
}

// AvailableSpaces returns the number of empty cells in each column.
func (s Shelf) AvailableSpaces() []int {
	spaces := make([]int, Width)
	for column := range spaces {
		spaces[column] = Height - s.height(column)
	}
	return spaces
}

// Tile returns the tile at the column and row, if present.
func (s Shelf) Tile(column, row int) (tile.Tile, bool) {
	if column < 0 || column >= Width || row < 0 || row >= Height {
		return 0, false
	}
	t := s.cells[column][row]
	return t, t.Valid()
}

// String draws the shelf with the top row first.  Empty cells are drawn as dots.
func (s Shelf) String() string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		var line strings.Builder
		for column := 0; column < Width; column++ {
			name := "."
			if t, ok := s.Tile(column, row); ok {
				name = t.String()
			}
			fmt.Fprintf(&line, "%-9s", name)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// height is the number of tiles in the column, which is also the index of its lowest empty row.
func (s Shelf) height(column int) int {
	for row, t := range s.cells[column] {
		if !t.Valid() {
			return row
		}
	}
	return Height
}

// checkColumn returns ErrColumnOutOfBounds if the column is not on the shelf.
func checkColumn(column int) error {
	if column < 0 || column >= Width {
		return fmt.Errorf("%w: %v", ErrColumnOutOfBounds, column)
	}
	return nil
}
