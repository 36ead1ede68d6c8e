package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"room-crawler/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal (default)",
	Long: `Opens the console. Arrow keys move through openings, k adds a room,
l and j reveal or hide rooms in the list, r starts a new dungeon, Tab shows
debug info and q or Esc quits.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := game.NewSession(cfg, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	s.Run(screen)
	return nil
}
