// Package session holds the components of a single game and serializes changes to them.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jacobpatterson1549/shelfie/game/bag"
	"github.com/jacobpatterson1549/shelfie/game/board"
	"github.com/jacobpatterson1549/shelfie/game/goal"
	"github.com/jacobpatterson1549/shelfie/game/player"
	"github.com/jacobpatterson1549/shelfie/game/shelf"
	"github.com/jacobpatterson1549/shelfie/game/tile"
	"github.com/jacobpatterson1549/shelfie/log"
)

type (
	// Session owns the board of a game and a player for each participant.
	// It is safe for concurrent use: all changes to the board, bag, and shelves happen while holding a lock.
	Session struct {
		id         ID
		log        log.Logger
		debug      bool
		maxPlayers int
		mu         sync.Mutex
		board      *board.Board
		players    map[string]*player.Player
		names      []string
		placed     bool
	}

	// Config contains the properties to create similar sessions.
	Config struct {
		// Log is used to log errors and other information.
		Log log.Logger
		// Debug is a flag that causes the session to log each tile placement.
		Debug bool
		// MaxPlayers is the maximum number of players that can join the session.
		MaxPlayers int
		// Board is used to create the board, and thus the bag, of the session.
		Board board.Config
	}

	// ID is the unique identifier of a session.
	ID string
)

var (
	// ErrPlayerExists is returned when a player tries to join a session they are already part of.
	ErrPlayerExists = errors.New("player already in session")
	// ErrUnknownPlayer is returned for requests about players that have not joined.
	ErrUnknownPlayer = errors.New("player not in session")
	// ErrSessionFull is returned when joining a session that has the maximum number of players.
	ErrSessionFull = errors.New("session is full")
	// ErrNoTiles is returned when placing fewer than one tile.
	ErrNoTiles = errors.New("at least one tile must be placed")
)

// New creates a session with a new board.
func (cfg Config) New() (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating session: validation: %w", err)
	}
	b, err := cfg.Board.New()
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	s := Session{
		id:         ID(uuid.NewString()),
		log:        cfg.Log,
		debug:      cfg.Debug,
		maxPlayers: cfg.MaxPlayers,
		board:      b,
		players:    make(map[string]*player.Player, cfg.MaxPlayers),
	}
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case cfg.MaxPlayers <= 0:
		return fmt.Errorf("positive max player count required")
	}
	return nil
}

// ID is the unique identifier of the session.
func (s *Session) ID() ID {
	return s.id
}

// Join adds a new player with the name to the session.
func (s *Session) Join(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch _, ok := s.players[name]; {
	case ok:
		return fmt.Errorf("joining %q: %w", name, ErrPlayerExists)
	case len(s.players) >= s.maxPlayers:
		return fmt.Errorf("joining %q: %w (%v players)", name, ErrSessionFull, s.maxPlayers)
	}
	p, err := player.New(name)
	if err != nil {
		return err
	}
	s.players[name] = p
	s.names = append(s.names, name)
	s.board.NumPlayers = len(s.players)
	s.log.Printf("session %v: %v joined", s.id, name)
	return nil
}

// Players returns the names of the players in the order they joined.
func (s *Session) Players() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.names...)
}

// AssignPersonalGoal gives the goal to the player.  Each player can only be given one personal goal.
func (s *Session) AssignPersonalGoal(name string, g goal.PersonalGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.player(name)
	if err != nil {
		return err
	}
	if err := p.InitPersonalGoal(g); err != nil {
		return fmt.Errorf("assigning personal goal to %q: %w", name, err)
	}
	return nil
}

// AddCommonGoal adds the goal to the board.
func (s *Session) AddCommonGoal(g goal.CommonGoal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.AddCommonGoal(g)
}

// AddScore increases the score of the player.
func (s *Session) AddScore(name string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.player(name)
	if err != nil {
		return err
	}
	return p.AddScore(points)
}

// PlaceTiles draws n tiles from the bag and puts them in the column of the player's shelf.
// The shelf and bag are checked before drawing, so no tiles are drawn if the tiles cannot be placed.
func (s *Session) PlaceTiles(name string, column, n int) ([]tile.Tile, error) {
	if n <= 0 {
		return nil, fmt.Errorf("placing %v tiles for %q: %w", n, name, ErrNoTiles)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.player(name)
	if err != nil {
		return nil, err
	}
	sh := p.Shelf()
	if err := sh.Fits(n, column); err != nil {
		return nil, fmt.Errorf("placing tiles for %q: %w", name, err)
	}
	tiles, err := s.board.Bag.DrawN(n)
	if err != nil {
		return nil, fmt.Errorf("placing tiles for %q: %w", name, err)
	}
	if err := p.PutAllTilesOnShelf(tiles, column); err != nil {
		return nil, fmt.Errorf("placing tiles for %q: %w", name, err)
	}
	s.placed = true
	if s.debug {
		s.log.Printf("session %v: %v placed %v in column %v", s.id, name, tiles, column)
	}
	return tiles, nil
}

// AvailableSpaces returns the number of empty cells in each column of the player's shelf.
func (s *Session) AvailableSpaces(name string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.player(name)
	if err != nil {
		return nil, err
	}
	return p.AvailableSpaces(), nil
}

// IsShelfFull determines if the player's shelf is full.
func (s *Session) IsShelfFull(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.player(name)
	if err != nil {
		return false, err
	}
	return p.IsShelfFull(), nil
}

// TilesLeft is the number of tiles in the bag.
func (s *Session) TilesLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Bag.Len()
}

// Status determines how far the session has progressed.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

// status determines how far the session has progressed.  The lock must be held.
func (s *Session) status() Status {
	if !s.placed {
		return NotStarted
	}
	if s.board.Bag.Len() == 0 {
		return Finished
	}
	for _, p := range s.players {
		if !p.IsShelfFull() {
			return InProgress
		}
	}
	return Finished
}

// player returns the player with the name.  The lock must be held.
func (s *Session) player(name string) (*player.Player, error) {
	p, ok := s.players[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return p, nil
}

// State is a snapshot of a session.
type State struct {
	ID        ID             `json:"id"`
	Status    Status         `json:"status"`
	Board     board.Board    `json:"board"`
	BagCounts map[string]int `json:"bagCounts"`
	Players   []PlayerState  `json:"players"`
}

// PlayerState is a snapshot of a player in a session.
type PlayerState struct {
	Name         string             `json:"name"`
	Score        int                `json:"score"`
	PersonalGoal *goal.PersonalGoal `json:"personalGoal,omitempty"`
	Shelf        shelf.Shelf        `json:"shelf"`
}

// State creates a snapshot of the session.  Changes to the snapshot do not affect the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *s.board
	b.CommonGoals = append([]goal.CommonGoal{}, s.board.CommonGoals...)
	bg := *s.board.Bag
	b.Bag = &bg
	st := State{
		ID:        s.id,
		Status:    s.status(),
		Board:     b,
		BagCounts: bagCounts(s.board.Bag),
		Players:   make([]PlayerState, len(s.names)),
	}
	for i, name := range s.names {
		p := s.players[name]
		ps := PlayerState{
			Name:  p.Name,
			Score: p.Score,
			Shelf: p.Shelf(),
		}
		if g, ok := p.PersonalGoal(); ok {
			ps.PersonalGoal = &g
		}
		st.Players[i] = ps
	}
	return st
}

// bagCounts maps the display name of each tile to the number of copies left in the bag.
func bagCounts(b *bag.Bag) map[string]int {
	counts := b.Counts()
	m := make(map[string]int, len(counts))
	for t, n := range counts {
		m[t.String()] = n
	}
	return m
}
