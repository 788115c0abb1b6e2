package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jacobpatterson1549/shelfie/game/goal"
	"github.com/jacobpatterson1549/shelfie/game/session"
)

const (
	// maxTilesPerPlacement is the most tiles a player takes from the bag at once.
	maxTilesPerPlacement = 3
	// numCommonGoals is the number of common goals put on the board.
	numCommonGoals = 2
)

// setupSession joins the players and hands out goals from the catalog in order.
// Players that join after the personal goals run out do not get one.
func setupSession(s *session.Session, names []string, c goal.Catalog) error {
	for i, name := range names {
		if err := s.Join(name); err != nil {
			return err
		}
		if i < len(c.Personal) {
			if err := s.AssignPersonalGoal(name, c.Personal[i]); err != nil {
				return err
			}
		}
	}
	for i := 0; i < numCommonGoals && i < len(c.Common); i++ {
		s.AddCommonGoal(c.Common[i])
	}
	return nil
}

// fillShelves has each player repeatedly take tiles from the bag and put them in their emptiest shelf column.
// It stops when every shelf is full or the bag is empty, returning the number of placements.
func fillShelves(s *session.Session) (int, error) {
	placements := 0
	for {
		placed := false
		for _, name := range s.Players() {
			spaces, err := s.AvailableSpaces(name)
			if err != nil {
				return placements, err
			}
			column := emptiestColumn(spaces)
			n := min(maxTilesPerPlacement, spaces[column], s.TilesLeft())
			if n == 0 {
				continue
			}
			if _, err := s.PlaceTiles(name, column, n); err != nil {
				return placements, err
			}
			placements++
			placed = true
		}
		if !placed {
			return placements, nil
		}
	}
}

// emptiestColumn is the index of the first column with the most available spaces.
func emptiestColumn(spaces []int) int {
	column := 0
	for i, n := range spaces {
		if n > spaces[column] {
			column = i
		}
	}
	return column
}

// writeState writes the state of the session to w, as json if asJSON is set.
func writeState(w io.Writer, st session.State, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	if _, err := fmt.Fprintf(w, "session %v\nstatus: %v\n", st.ID, st.Status); err != nil {
		return err
	}
	for _, g := range st.Board.CommonGoals {
		if _, err := fmt.Fprintf(w, "common goal: %v\n", g); err != nil {
			return err
		}
	}
	for _, p := range st.Players {
		personalGoal := "none"
		if p.PersonalGoal != nil {
			personalGoal = p.PersonalGoal.String()
		}
		if _, err := fmt.Fprintf(w, "\n%v (score %v, personal goal: %v)\n%v", p.Name, p.Score, personalGoal, p.Shelf); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\ntiles left in bag: %v\n", st.Board.Bag.Len())
	return err
}

// writeCatalog writes the goals to w, as json if asJSON is set.
func writeCatalog(w io.Writer, c goal.Catalog, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	for _, g := range c.Personal {
		if _, err := fmt.Fprintf(w, "personal: %v\n", g); err != nil {
			return err
		}
	}
	for _, g := range c.Common {
		if _, err := fmt.Fprintf(w, "common: %v\n", g); err != nil {
			return err
		}
	}
	return nil
}
