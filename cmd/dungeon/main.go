// Package main is the entry point for the dungeon command line game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

var gameID string

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "A text dungeon crawler",
	Long: `Dungeon is a turn based text RPG. Every command loads the game named by
--game, plays one action and saves it again.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gameID, "game", "default", "name of the saved game")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(lookCmd)
	rootCmd.AddCommand(visitCmd)
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(waitCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(statsCmd)
}
