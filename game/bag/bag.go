// Package bag holds the shuffled tiles that have not yet been drawn.
package bag

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jacobpatterson1549/shelfie/game/tile"
)

type (
	// Bag is a shuffled pool of tiles that are drawn without replacement.
	Bag struct {
		tiles []tile.Tile
	}

	// Config stores fields for creating a bag.
	Config struct {
		// TilesPerKind is the number of copies of each tile put in the bag.
		// If not specified, the default of 22 is used.
		TilesPerKind int
		// ShuffleFunc is used to shuffle the tiles once when the bag is created.
		// If not specified, the tiles are shuffled with math/rand.
		ShuffleFunc func(tiles []tile.Tile)
	}
)

// DefaultTilesPerKind is the number of copies of each tile in a standard bag.
const DefaultTilesPerKind = 22

// ErrEmpty is returned when drawing more tiles than the bag holds.
var ErrEmpty = errors.New("bag is empty")

// New creates a bag filled with TilesPerKind of each tile, shuffled once.
func (cfg Config) New() (*Bag, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating bag: validation: %w", err)
	}
	n := cfg.TilesPerKind
	if n == 0 {
		n = DefaultTilesPerKind
	}
	kinds := tile.Tiles()
	tiles := make([]tile.Tile, 0, n*len(kinds))
	for _, t := range kinds {
		for i := 0; i < n; i++ {
			tiles = append(tiles, t)
		}
	}
	shuffle := cfg.ShuffleFunc
	if shuffle == nil {
		shuffle = shuffleTiles
	}
	shuffle(tiles)
	b := Bag{
		tiles: tiles,
	}
	return &b, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.TilesPerKind < 0:
		return fmt.Errorf("tiles per kind must not be negative")
	}
	return nil
}

// shuffleTiles performs a uniform shuffle of the tiles.
func shuffleTiles(tiles []tile.Tile) {
	rand.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}

// Draw removes and returns the tile at the top of the bag.
// ErrEmpty is returned if the bag has no tiles.
func (b *Bag) Draw() (tile.Tile, error) {
	if len(b.tiles) == 0 {
		return 0, ErrEmpty
	}
	last := len(b.tiles) - 1
	t := b.tiles[last]
	b.tiles = b.tiles[:last]
	return t, nil
}

// DrawN removes and returns n tiles from the top of the bag, in the order they are drawn.
// No tiles are drawn if the bag has fewer than n tiles.
func (b *Bag) DrawN(n int) ([]tile.Tile, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("cannot draw a negative number of tiles: %v", n)
	case len(b.tiles) < n:
		return nil, fmt.Errorf("drawing %v tiles when only %v remain: %w", n, len(b.tiles), ErrEmpty)
	}
	tiles := make([]tile.Tile, n)
	for i := range tiles {
		tiles[i], _ = b.Draw()
	}
	return tiles, nil
}

// Len is the number of tiles left in the bag.
func (b Bag) Len() int {
	return len(b.tiles)
}

// Count is the number of copies of the tile left in the bag.
func (b Bag) Count(t tile.Tile) int {
	n := 0
	for _, t2 := range b.tiles {
		if t == t2 {
			n++
		}
	}
	return n
}

// Counts maps each kind of tile to the number of copies left in the bag.
// Kinds with no tiles left are included with a count of zero.
func (b Bag) Counts() map[tile.Tile]int {
	m := make(map[tile.Tile]int, tile.NumKinds)
	for _, t := range tile.Tiles() {
		m[t] = 0
	}
	for _, t := range b.tiles {
		m[t]++
	}
	return m
}

// String lists the tiles in the bag, bottom first.
func (b Bag) String() string {
	names := make([]string, len(b.tiles))
	for i, t := range b.tiles {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
