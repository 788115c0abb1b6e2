// Package goal contains the descriptions of the objectives players can score points for.
package goal

import (
	"fmt"
	"strconv"
)

type (
	// PersonalGoal is an objective that is secretly given to a single player.
	PersonalGoal struct {
		Name        string `yaml:"name" json:"name"`
		Description string `yaml:"description" json:"description"`
		Points      int    `yaml:"points" json:"points"`
	}

	// CommonGoal is an objective that any player on the board can complete.
	CommonGoal struct {
		Name        string `yaml:"name" json:"name"`
		Description string `yaml:"description" json:"description"`
		Points      int    `yaml:"points" json:"points"`
	}
)

// NewPersonal creates a personal goal, returning an error if the name is empty or the points are negative.
func NewPersonal(name, description string, points int) (*PersonalGoal, error) {
	if err := validate(name, points); err != nil {
		return nil, fmt.Errorf("creating personal goal: validation: %w", err)
	}
	g := PersonalGoal{
		Name:        name,
		Description: description,
		Points:      points,
	}
	return &g, nil
}

// NewCommon creates a common goal, returning an error if the name is empty or the points are negative.
func NewCommon(name, description string, points int) (*CommonGoal, error) {
	if err := validate(name, points); err != nil {
		return nil, fmt.Errorf("creating common goal: validation: %w", err)
	}
	g := CommonGoal{
		Name:        name,
		Description: description,
		Points:      points,
	}
	return &g, nil
}

// String returns the display value for the goal.
func (g PersonalGoal) String() string {
	return display(g.Name, g.Description, g.Points)
}

// String returns the display value for the goal.
func (g CommonGoal) String() string {
	return display(g.Name, g.Description, g.Points)
}

// validate checks the fields shared by all goals.
func validate(name string, points int) error {
	switch {
	case len(name) == 0:
		return fmt.Errorf("name required")
	case points < 0:
		return fmt.Errorf("points must not be negative, got %v", points)
	}
	return nil
}

// display formats a goal as "name: description (# points)".
func display(name, description string, points int) string {
	return name + ": " + description + " (" + strconv.Itoa(points) + " points)"
}
