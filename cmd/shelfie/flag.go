package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	environmentVariablePrefix = "SHELFIE"

	flagConfigFile = "config"
	flagPlayers    = "players"
	flagMaxPlayers = "max-players"
	flagSeed       = "seed"
	flagGoalsFile  = "goals-file"
	flagJSON       = "json"
	flagDebug      = "debug"
	flagConsoleLog = "console-log"
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
type mainFlags struct {
	players    []string
	maxPlayers int
	seed       int64
	goalsFile  string
	json       bool
	debug      bool
	consoleLog bool
}

const (
	defaultPlayers    = "selene,fred"
	defaultMaxPlayers = 4
)

// addFlags registers the flags on the command.
// Flag values are read through the viper instance, which falls back to SHELFIE_ environment variables and a config file.
func addFlags(cmd *cobra.Command, v *viper.Viper) error {
	fs := cmd.PersistentFlags()
	fs.String(flagConfigFile, "", "A yaml file to read flag values from.")
	fs.String(flagPlayers, defaultPlayers, "The comma-separated names of the players to join the session.")
	fs.Int(flagMaxPlayers, defaultMaxPlayers, "The maximum number of players that can join the session.")
	fs.Int64(flagSeed, 0, "The seed for shuffling the bag.  Zero (the default) seeds with the current time, so use a nonzero seed to repeat a simulation.")
	fs.String(flagGoalsFile, "", "A yaml file of personal and common goals.  The built-in goals are used if not specified.")
	fs.Bool(flagJSON, false, "Writes output as json.")
	fs.Bool(flagDebug, false, "Logs each tile placement.")
	fs.Bool(flagConsoleLog, false, "Formats log messages for people to read instead of as json.")
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(environmentVariablePrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// readConfigFile merges the values of the config file, if one is specified.
func readConfigFile(v *viper.Viper) error {
	path := v.GetString(flagConfigFile)
	if len(path) == 0 {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// newMainFlags creates a new, populated mainFlags structure.
// Command line flags take precedence over environment variables, which take precedence over the config file.
func newMainFlags(v *viper.Viper) mainFlags {
	m := mainFlags{
		players:    parsePlayers(v.GetString(flagPlayers)),
		maxPlayers: v.GetInt(flagMaxPlayers),
		seed:       v.GetInt64(flagSeed),
		goalsFile:  v.GetString(flagGoalsFile),
		json:       v.GetBool(flagJSON),
		debug:      v.GetBool(flagDebug),
		consoleLog: v.GetBool(flagConsoleLog),
	}
	return m
}

// parsePlayers splits the comma-separated player names, ignoring blank names.
func parsePlayers(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if len(name) != 0 {
			names = append(names, name)
		}
	}
	return names
}
