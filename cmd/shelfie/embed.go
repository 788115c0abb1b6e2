package main

import (
	_ "embed"
)

// embeddedGoals is the default goal catalog used when no goals file is specified.
//
//go:embed embed/goals.yaml
var embeddedGoals string
