// Package board stores the shared tiles and goals of a game.
package board

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jacobpatterson1549/shelfie/game/bag"
	"github.com/jacobpatterson1549/shelfie/game/goal"
	"github.com/jacobpatterson1549/shelfie/game/tile"
)

type (
	// Board is the surface that tiles are laid out on before players take them.
	// (All players share one board)
	Board struct {
		tiles       [NumCols][NumRows]tile.Tile
		NumPlayers  int
		Bag         *bag.Bag
		CommonGoals []goal.CommonGoal
	}

	// Config stores fields for creating a board.
	Config struct {
		// Bag is used to create the bag owned by the board.
		Bag bag.Config
	}

	// Position represents a tile and its location on the board.
	Position struct {
		Tile tile.Tile `json:"tile"`
		X    int       `json:"x"`
		Y    int       `json:"y"`
	}
)

const (
	// NumCols is the number of columns on a board.
	NumCols = 9
	// NumRows is the number of rows on a board.
	NumRows = 9
)

// ErrOutOfBounds is returned when accessing a location that is not on the board.
var ErrOutOfBounds = errors.New("location not on board")

// New creates an empty board with a full bag and no players or goals.
func (cfg Config) New() (*Board, error) {
	bg, err := cfg.Bag.New()
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}
	b := Board{
		Bag:         bg,
		CommonGoals: []goal.CommonGoal{},
	}
	return &b, nil
}

// AddCommonGoal adds the goal to the board.
func (b *Board) AddCommonGoal(g goal.CommonGoal) {
	b.CommonGoals = append(b.CommonGoals, g)
}

// Tile returns the tile at the location, if present.
func (b Board) Tile(x, y int) (tile.Tile, bool) {
	if !onBoard(x, y) {
		return 0, false
	}
	t := b.tiles[x][y]
	return t, t.Valid()
}

// Set puts the tile at the location, replacing any tile already there.
func (b *Board) Set(x, y int, t tile.Tile) error {
	switch {
	case !onBoard(x, y):
		return outOfBounds(x, y)
	case !t.Valid():
		return errors.New("cannot put invalid tile on board: " + strconv.Itoa(int(t)))
	}
	b.tiles[x][y] = t
	return nil
}

// Clear removes and returns the tile at the location.
// The zero tile is returned if the location was empty.
func (b *Board) Clear(x, y int) (tile.Tile, error) {
	if !onBoard(x, y) {
		return 0, outOfBounds(x, y)
	}
	t := b.tiles[x][y]
	b.tiles[x][y] = 0
	return t, nil
}

// Positions returns the tiles on the board, sorted by x position, then y position.
func (b Board) Positions() []Position {
	var positions []Position
	for x := range b.tiles {
		for y, t := range b.tiles[x] {
			if t.Valid() {
				positions = append(positions, Position{Tile: t, X: x, Y: y})
			}
		}
	}
	return positions
}

// Empty determines if no tiles are on the board.
func (b Board) Empty() bool {
	return len(b.Positions()) == 0
}

// onBoard determines if the location is on the board.
func onBoard(x, y int) bool {
	return 0 <= x && x < NumCols && 0 <= y && y < NumRows
}

// outOfBounds creates the error for a location that is not on the board.
func outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%v,%v)", ErrOutOfBounds, x, y)
}
