package board

import (
	"encoding/json"

	"github.com/jacobpatterson1549/shelfie/game/goal"
)

// jsonBoard is used for serialization with the json/encoding package
type jsonBoard struct {
	Tiles       []Position        `json:"tiles"`
	NumPlayers  int               `json:"numPlayers"`
	BagSize     int               `json:"bagSize"`
	CommonGoals []goal.CommonGoal `json:"commonGoals"`
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// The bag is summarized by the number of tiles in it so the draw order is not revealed.
func (b Board) MarshalJSON() ([]byte, error) {
	jb := jsonBoard{
		Tiles:       b.Positions(),
		NumPlayers:  b.NumPlayers,
		CommonGoals: b.CommonGoals,
	}
	if jb.Tiles == nil {
		jb.Tiles = []Position{}
	}
	if jb.CommonGoals == nil {
		jb.CommonGoals = []goal.CommonGoal{}
	}
	if b.Bag != nil {
		jb.BagSize = b.Bag.Len()
	}
	return json.Marshal(jb)
}
