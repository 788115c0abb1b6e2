// Package player stores the shelf and other player-specific data for each player in a game.
package player

import (
	"errors"
	"fmt"

	"github.com/jacobpatterson1549/shelfie/game/goal"
	"github.com/jacobpatterson1549/shelfie/game/shelf"
	"github.com/jacobpatterson1549/shelfie/game/tile"
)

// Player is a participant in a game.
type Player struct {
	Name         string
	Score        int
	personalGoal *goal.PersonalGoal
	shelf        shelf.Shelf
}

// ErrPersonalGoalAssigned is returned when a player is given a second personal goal.
var ErrPersonalGoalAssigned = errors.New("player already has a personal goal")

// New creates a player with an empty shelf and no score.
func New(name string) (*Player, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("creating player: validation: name required")
	}
	p := Player{
		Name: name,
	}
	return &p, nil
}

// InitPersonalGoal gives the player the goal.
// A player can only be given one goal.  The first goal is kept if an attempt is made to give another.
func (p *Player) InitPersonalGoal(g goal.PersonalGoal) error {
	if p.personalGoal != nil {
		return ErrPersonalGoalAssigned
	}
	p.personalGoal = &g
	return nil
}

// PersonalGoal returns a copy of the player's goal, if one has been given.
func (p Player) PersonalGoal() (goal.PersonalGoal, bool) {
	if p.personalGoal == nil {
		return goal.PersonalGoal{}, false
	}
	return *p.personalGoal, true
}

// AddScore increases the player's score by the points, which must not be negative.
func (p *Player) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("cannot add negative points to score: %v", points)
	}
	p.Score += points
	return nil
}

// Shelf returns a copy of the player's shelf.
func (p Player) Shelf() shelf.Shelf {
	return p.shelf
}

// IsShelfFull determines if the player's shelf is full.
func (p Player) IsShelfFull() bool {
	return p.shelf.IsFull()
}

// AvailableSpaces returns the number of empty cells in each column of the player's shelf.
func (p Player) AvailableSpaces() []int {
	return p.shelf.AvailableSpaces()
}

// PutTilesOnShelf puts the tile on the player's shelf in the column.
func (p *Player) PutTilesOnShelf(t tile.Tile, column int) error {
	return p.shelf.Add(t, column)
}

// PutAllTilesOnShelf puts the tiles on the player's shelf in the column, stacked in order.
func (p *Player) PutAllTilesOnShelf(tiles []tile.Tile, column int) error {
	return p.shelf.AddAll(tiles, column)
}

// String returns the name of the player with the player's personal goal.
func (p Player) String() string {
	g, ok := p.PersonalGoal()
	if !ok {
		return p.Name + ": <nil>"
	}
	return p.Name + ": " + g.String()
}
