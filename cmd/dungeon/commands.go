package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/cli"
)

var achievementsOrder string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.NewGame(ctx, gameID)
		})
	},
}

var lookCmd = &cobra.Command{
	Use:   "look",
	Short: "Describe the hero and the current location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Look(ctx, gameID)
		})
	},
}

var visitCmd = &cobra.Command{
	Use:     "visit [north|east|south|west]",
	Aliases: []string{"go"},
	Short:   "Walk to the neighbouring location",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Visit(ctx, gameID, args[0])
		})
	},
}

var battleCmd = &cobra.Command{
	Use:   "battle [creature]",
	Short: "Fight a creature at the current location",
	Long:  `The creature is matched by id, preset id or name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Battle(ctx, gameID, args[0])
		})
	},
}

var waitCmd = &cobra.Command{
	Use:   "wait [duration]",
	Short: "Let time pass, for example 30m or 2h",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Wait(ctx, gameID, args[0])
		})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Save(ctx, gameID)
		})
	},
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List the unlocked achievements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Achievements(ctx, gameID, achievementsOrder)
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the game statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(ctx context.Context, h *cli.Handler) error {
			return h.Stats(ctx, gameID)
		})
	},
}

func init() {
	achievementsCmd.Flags().StringVar(&achievementsOrder, "by", "name", "sort by name or date")
}
