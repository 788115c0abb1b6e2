// Package main sets up game sessions from supplied or standard arguments and fills the players' shelves.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jacobpatterson1549/shelfie/log"
)

// main runs the command with the program arguments.
func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "loading environment: %v\n", err)
		os.Exit(2)
	}
	cmd, err := newRootCommand(unixNano)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating command: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnv sets environment variables from the files, or from .env if no files are given.
// Missing files are ignored, but files that cannot be read or parsed are errors.
func loadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// newRootCommand creates the command and its subcommands.
func newRootCommand(timeFunc func() int64) (*cobra.Command, error) {
	v := viper.New()
	root := &cobra.Command{
		Use:   "shelfie",
		Short: "Sets up tile-placement games and fills the players' shelves",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfigFile(v)
		},
		SilenceUsage: true,
	}
	if err := addFlags(root, v); err != nil {
		return nil, err
	}
	goalsCmd := &cobra.Command{
		Use:   "goals",
		Short: "Lists the personal and common goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMainFlags(v)
			c, err := goalCatalog(m)
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), *c, m.json)
		},
	}
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Creates a session for the players and fills their shelves with tiles from the bag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMainFlags(v)
			l := log.New(cmd.ErrOrStderr(), m.consoleLog).With("cmd", cmd.Name())
			return runSimulation(cmd, m, l, timeFunc)
		},
	}
	root.AddCommand(goalsCmd, simulateCmd)
	return root, nil
}

// runSimulation creates a session from the flags, fills the shelves, and writes the final state.
func runSimulation(cmd *cobra.Command, m mainFlags, l *log.ZeroLogger, timeFunc func() int64) error {
	c, err := goalCatalog(m)
	if err != nil {
		return err
	}
	cfg := sessionConfig(m, l, timeFunc)
	s, err := cfg.New()
	if err != nil {
		return err
	}
	if err := setupSession(s, m.players, *c); err != nil {
		l.Errorf("setting up session %v: %v", s.ID(), err)
		return err
	}
	placements, err := fillShelves(s)
	if err != nil {
		l.Errorf("filling shelves in session %v: %v", s.ID(), err)
		return err
	}
	l.Printf("session %v: filled shelves with %v placements, %v tiles left, status: %v", s.ID(), placements, s.TilesLeft(), s.Status())
	return writeState(cmd.OutOrStdout(), s.State(), m.json)
}
