// Package tile contains the pieces that players draw from the bag and store on their shelves.
package tile

import (
	"errors"
	"strings"
)

// Tile is the kind of item pictured on a piece in the game.
// The zero value is not a tile.  Grids use it to mark empty cells.
type Tile int

const (
	_ Tile = iota
	// Cats are tiles with cats on them.
	Cats
	// Books are tiles with books on them.
	Books
	// Games are tiles with board games on them.
	Games
	// Frames are tiles with picture frames on them.
	Frames
	// Trophies are tiles with trophies on them.
	Trophies
	// Plants are tiles with plants on them.
	Plants
)

// NumKinds is the number of different tiles.
const NumKinds = 6

// legacyTrophies is an alternate spelling of trophies that is accepted when parsing.
const legacyTrophies = "throphies"

// Tiles returns each kind of tile in declaration order.
func Tiles() []Tile {
	return []Tile{Cats, Books, Games, Frames, Trophies, Plants}
}

// Valid determines if the tile is one of the known kinds.
func (t Tile) Valid() bool {
	return Cats <= t && t <= Plants
}

// String returns the display value for the tile.
func (t Tile) String() string {
	switch t {
	case Cats:
		return "cats"
	case Books:
		return "books"
	case Games:
		return "games"
	case Frames:
		return "frames"
	case Trophies:
		return "trophies"
	case Plants:
		return "plants"
	}
	return "?"
}

// Parse returns the tile with the display value.  Case and surrounding spaces are ignored.
func Parse(s string) (Tile, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == legacyTrophies {
		return Trophies, nil
	}
	for _, t := range Tiles() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, errors.New("unknown tile: " + s)
}
