package shelf

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/jacobpatterson1549/shelfie/game/tile"
)

// jsonShelf is used for serialization with the json/encoding package.
// Each column lists its tiles from the bottom up.
type jsonShelf struct {
	Columns [][]tile.Tile `json:"columns"`
}

// MarshalJSON implements the encoding/json.Marshaler interface.
func (s Shelf) MarshalJSON() ([]byte, error) {
	js := jsonShelf{
		Columns: make([][]tile.Tile, Width),
	}
	for column := range js.Columns {
		h := s.height(column)
		js.Columns[column] = append([]tile.Tile{}, s.cells[column][:h]...)
	}
	return json.Marshal(js)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// The columns are added with gravity, so the shelf is always packed.
func (s *Shelf) UnmarshalJSON(d []byte) error {
	var js jsonShelf
	if err := json.Unmarshal(d, &js); err != nil {
		return err
	}
	if len(js.Columns) > Width {
		return errors.New("too many columns for shelf: " + strconv.Itoa(len(js.Columns)))
	}
	var s2 Shelf
	for column, tiles := range js.Columns {
		if err := s2.AddAll(tiles, column); err != nil {
			return err
		}
	}
	*s = s2
	return nil
}
