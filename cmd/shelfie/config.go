package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jacobpatterson1549/shelfie/game/bag"
	"github.com/jacobpatterson1549/shelfie/game/board"
	"github.com/jacobpatterson1549/shelfie/game/goal"
	"github.com/jacobpatterson1549/shelfie/game/session"
	"github.com/jacobpatterson1549/shelfie/game/tile"
	"github.com/jacobpatterson1549/shelfie/log"
)

// sessionConfig creates the configuration for a session.
func sessionConfig(m mainFlags, log log.Logger, timeFunc func() int64) session.Config {
	cfg := session.Config{
		Log:        log,
		Debug:      m.debug,
		MaxPlayers: m.maxPlayers,
		Board: board.Config{
			Bag: bag.Config{
				ShuffleFunc: shuffleFunc(m.seed, timeFunc),
			},
		},
	}
	return cfg
}

// shuffleFunc creates a function that shuffles tiles with a generator created from the seed.
// The timeFunc is used for the seed if the seed is zero, so a zero seed cannot be replayed.
func shuffleFunc(seed int64, timeFunc func() int64) func(tiles []tile.Tile) {
	if seed == 0 {
		seed = timeFunc()
	}
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	return func(tiles []tile.Tile) {
		r.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
	}
}

// unixNano is the current time since the unix epoch, in nanoseconds.
func unixNano() int64 {
	return time.Now().UnixNano()
}

// goalCatalog reads the goals file, or the embedded goals if no file is specified.
func goalCatalog(m mainFlags) (*goal.Catalog, error) {
	if len(m.goalsFile) == 0 {
		c, err := goal.ReadCatalog(strings.NewReader(embeddedGoals))
		if err != nil {
			return nil, fmt.Errorf("reading embedded goals: %w", err)
		}
		return c, nil
	}
	return goal.ReadCatalogFile(m.goalsFile)
}
