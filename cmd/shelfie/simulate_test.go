package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jacobpatterson1549/shelfie/game/bag"
	"github.com/jacobpatterson1549/shelfie/game/board"
	"github.com/jacobpatterson1549/shelfie/game/goal"
	"github.com/jacobpatterson1549/shelfie/game/session"
	"github.com/jacobpatterson1549/shelfie/game/tile"
	"github.com/jacobpatterson1549/shelfie/log/logtest"
)

// newTestSession creates a session with a bag of tilesPerKind of each tile.
func newTestSession(t *testing.T, maxPlayers, tilesPerKind int) *session.Session {
	t.Helper()
	cfg := session.Config{
		Log:        logtest.DiscardLogger,
		MaxPlayers: maxPlayers,
		Board: board.Config{
			Bag: bag.Config{
				TilesPerKind: tilesPerKind,
				ShuffleFunc:  func(tiles []tile.Tile) {},
			},
		},
	}
	s, err := cfg.New()
	if err != nil {
		t.Fatalf("unwanted error creating session: %v", err)
	}
	return s
}

var testCatalog = goal.Catalog{
	Personal: []goal.PersonalGoal{
		{Name: "p1", Description: "d1", Points: 1},
	},
	Common: []goal.CommonGoal{
		{Name: "c1", Description: "d1", Points: 1},
		{Name: "c2", Description: "d2", Points: 2},
		{Name: "c3", Description: "d3", Points: 3},
	},
}

func TestSetupSession(t *testing.T) {
	t.Run("happyPath", func(t *testing.T) {
		s := newTestSession(t, 2, 1)
		if err := setupSession(s, []string{"selene", "fred"}, testCatalog); err != nil {
			t.Fatalf("unwanted error: %v", err)
		}
		st := s.State()
		switch {
		case len(st.Players) != 2:
			t.Errorf("wanted 2 players, got %v", st.Players)
		case st.Players[0].PersonalGoal == nil, st.Players[0].PersonalGoal.Name != "p1":
			t.Errorf("wanted first player to get first personal goal, got %v", st.Players[0].PersonalGoal)
		case st.Players[1].PersonalGoal != nil:
			t.Errorf("wanted second player to not get a personal goal, got %v", st.Players[1].PersonalGoal)
		case len(st.Board.CommonGoals) != numCommonGoals:
			t.Errorf("wanted %v common goals, got %v", numCommonGoals, st.Board.CommonGoals)
		}
	})
	t.Run("tooManyPlayers", func(t *testing.T) {
		s := newTestSession(t, 1, 1)
		if err := setupSession(s, []string{"selene", "fred"}, testCatalog); err == nil {
			t.Errorf("wanted error joining too many players")
		}
	})
}

func TestFillShelves(t *testing.T) {
	t.Run("allShelvesFull", func(t *testing.T) {
		s := newTestSession(t, 2, bag.DefaultTilesPerKind)
		if err := setupSession(s, []string{"selene", "fred"}, goal.Catalog{}); err != nil {
			t.Fatalf("unwanted error: %v", err)
		}
		placements, err := fillShelves(s)
		switch {
		case err != nil:
			t.Fatalf("unwanted error: %v", err)
		case placements != 30: // 5 columns of 9 tiles, in groups of 3, for each player
			t.Errorf("wanted 30 placements, got %v", placements)
		case s.TilesLeft() != 132-90:
			t.Errorf("wanted %v tiles left, got %v", 132-90, s.TilesLeft())
		}
		for _, name := range s.Players() {
			if full, _ := s.IsShelfFull(name); !full {
				t.Errorf("wanted shelf of %v to be full", name)
			}
		}
	})
	t.Run("bagRunsOut", func(t *testing.T) {
		s := newTestSession(t, 4, 2)
		if err := setupSession(s, []string{"a", "b", "c", "d"}, goal.Catalog{}); err != nil {
			t.Fatalf("unwanted error: %v", err)
		}
		if _, err := fillShelves(s); err != nil {
			t.Fatalf("unwanted error: %v", err)
		}
		if want, got := 0, s.TilesLeft(); want != got {
			t.Errorf("wanted bag to be empty, got %v tiles", got)
		}
	})
}

func TestEmptiestColumn(t *testing.T) {
	emptiestColumnTests := []struct {
		spaces []int
		want   int
	}{
		{spaces: []int{9, 9, 9, 9, 9}, want: 0},
		{spaces: []int{6, 9, 9, 9, 9}, want: 1},
		{spaces: []int{6, 6, 7, 3, 7}, want: 2},
		{spaces: []int{0, 0, 0, 0, 0}, want: 0},
	}
	for i, test := range emptiestColumnTests {
		if got := emptiestColumn(test.spaces); test.want != got {
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}

func TestWriteState(t *testing.T) {
	s := newTestSession(t, 1, 1)
	if err := setupSession(s, []string{"selene"}, testCatalog); err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	if _, err := s.PlaceTiles("selene", 0, 1); err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeState(&buf, s.State(), false); err != nil {
			t.Fatalf("unwanted error: %v", err)
		}
		got := buf.String()
		for _, want := range []string{
			"session " + string(s.ID()),
			"status: In Progress",
			"common goal: c1: d1 (1 points)",
			"selene (score 0, personal goal: p1: d1 (1 points))",
			"plants",
			"tiles left in bag: 5",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("wanted output to contain %q, got:\n%v", want, got)
			}
		}
	})
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeState(&buf, s.State(), true); err != nil {
			t.Fatalf("unwanted error: %v", err)
		}
		var got map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("wanted json, got %q: %v", buf.String(), err)
		}
		if want := string(s.ID()); got["id"] != want {
			t.Errorf("wanted id %v, got %v", want, got["id"])
		}
		if want := "In Progress"; got["status"] != want {
			t.Errorf("wanted status %v, got %v", want, got["status"])
		}
	})
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCatalog(&buf, testCatalog, false); err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	want := "personal: p1: d1 (1 points)\ncommon: c1: d1 (1 points)\ncommon: c2: d2 (2 points)\ncommon: c3: d3 (3 points)\n"
	if got := buf.String(); want != got {
		t.Errorf("not equal:\nwanted: %q\ngot:    %q", want, got)
	}
	buf.Reset()
	if err := writeCatalog(&buf, testCatalog, true); err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	var c goal.Catalog
	if err := json.Unmarshal(buf.Bytes(), &c); err != nil {
		t.Fatalf("wanted json, got %q: %v", buf.String(), err)
	}
	if len(c.Common) != 3 {
		t.Errorf("wanted 3 common goals in json, got %v", c.Common)
	}
}
