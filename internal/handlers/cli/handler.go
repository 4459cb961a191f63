// Package cli renders the game's commands for a terminal
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
)

const dateLayout = "2006-01-02 15:04"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService game.Service
	Out         io.Writer
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GameService == nil {
		vb.RequiredField("GameService")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	return vb.Build()
}

// Handler turns command arguments into orchestrator calls and prints the results
type Handler struct {
	gameService game.Service
	out         io.Writer
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
		out:         cfg.Out,
	}, nil
}

// NewGame starts a game; an empty id lets the orchestrator pick one
func (h *Handler) NewGame(ctx context.Context, gameID string) error {
	output, err := h.gameService.NewGame(ctx, &game.NewGameInput{GameID: gameID})
	if err != nil {
		return err
	}

	h.printf("Started game %s on %s.\n", output.GameID, output.Date.Format(dateLayout))
	h.printHero(output.Hero, output.Date)
	h.printLocation(output.Location)
	return nil
}

// Look describes the hero and their surroundings
func (h *Handler) Look(ctx context.Context, gameID string) error {
	output, err := h.gameService.LoadGame(ctx, &game.LoadGameInput{GameID: gameID})
	if err != nil {
		return err
	}

	h.printf("%s\n", output.Date.Format(dateLayout))
	if output.Over {
		h.printf("%s\n", criticalStyle.Render("This game is over. Your hero is dead."))
	}
	h.printHero(output.Hero, output.Date)
	h.printLocation(output.Location)
	return nil
}

// Visit walks the hero one step in direction
func (h *Handler) Visit(ctx context.Context, gameID, direction string) error {
	d, err := world.ParseDirection(direction)
	if err != nil {
		return err
	}

	output, err := h.gameService.Visit(ctx, &game.VisitInput{GameID: gameID, Direction: d})
	if err != nil {
		return err
	}

	h.printf("You arrive at %s.\n", output.Location.Name)
	h.printLocation(output.Location)
	return nil
}

// Battle attacks target at the hero's location
func (h *Handler) Battle(ctx context.Context, gameID, target string) error {
	output, err := h.gameService.Battle(ctx, &game.BattleInput{GameID: gameID, Target: target})
	if err != nil {
		return err
	}

	result := output.Battle
	if output.HeroWon {
		h.printf("You won after %d turns (%s), killing with %s.\n",
			result.Turns, result.Duration, result.CauseOfDeath)
	}
	if output.GameOver {
		h.printf("%s\n", criticalStyle.Render("You died. The game is over."))
	}
	for _, item := range output.Dropped {
		h.printf("%s fell on the ground.\n", item.Name)
	}
	return nil
}

// Wait lets time pass; duration uses Go duration syntax such as 90m or 2h
func (h *Handler) Wait(ctx context.Context, gameID, duration string) error {
	d, err := time.ParseDuration(strings.TrimSpace(duration))
	if err != nil {
		return errors.InvalidArgumentf("invalid duration %q", duration)
	}

	output, err := h.gameService.EndTurn(ctx, &game.EndTurnInput{GameID: gameID, Duration: d})
	if err != nil {
		return err
	}

	h.printf("It is now %s, %s.\n", output.Date.Format(dateLayout), world.PartOfDayAt(output.Date))
	for _, item := range output.Decomposed {
		h.printf("%s rotted away.\n", item.Name)
	}
	return nil
}

// Save writes the game to its store
func (h *Handler) Save(ctx context.Context, gameID string) error {
	output, err := h.gameService.SaveGame(ctx, &game.SaveGameInput{GameID: gameID})
	if err != nil {
		return err
	}
	h.printf("Saved game %s at %s.\n", gameID, output.SavedAt.Format(time.RFC3339))
	return nil
}

// Achievements lists the unlocked achievements ordered by name or date
func (h *Handler) Achievements(ctx context.Context, gameID, by string) error {
	order, err := achievements.ParseOrder(by)
	if err != nil {
		return err
	}

	output, err := h.gameService.ListAchievements(ctx, &game.ListAchievementsInput{GameID: gameID, Order: order})
	if err != nil {
		return err
	}

	h.printf("%s\n", titleStyle.Render(fmt.Sprintf("Achievements %d/%d", len(output.Unlocked), output.Total)))
	for _, u := range output.Unlocked {
		h.printf("%s %s (%s)\n",
			achievementStyle.Render(u.Name), u.Info, u.UnlockedAt.Format(dateLayout))
	}
	return nil
}

// Stats prints the battle, exploration and hero statistics
func (h *Handler) Stats(ctx context.Context, gameID string) error {
	output, err := h.gameService.GetStatistics(ctx, &game.GetStatisticsInput{GameID: gameID})
	if err != nil {
		return err
	}

	h.printf("%s\n", titleStyle.Render("Statistics"))
	h.printf("Kills: %d\n", output.TotalKills)

	causes := make([]string, 0, len(output.KillsByCause))
	for cause, count := range output.KillsByCause {
		causes = append(causes, fmt.Sprintf("  %s: %d", cause, count))
	}
	sort.Strings(causes)
	for _, line := range causes {
		h.printf("%s\n", line)
	}

	h.printf("Visited locations: %d\n", output.VisitedPoints)
	h.printf("Damage inflicted: %d\n", output.Snapshot.Hero.DamageInflicted)
	h.printf("Damage taken: %d\n", output.Snapshot.Hero.DamageTaken)
	return nil
}

func (h *Handler) printHero(hero game.CreatureView, now time.Time) {
	lines := []string{fmt.Sprintf("%s %d/%d", hero.Name, hero.Health, hero.MaxHealth)}
	if hero.Weapon != "" {
		lines = append(lines, "Wielding "+hero.Weapon)
	}
	for _, item := range hero.Items {
		line := item.Name
		if item.ClockTime != nil {
			if item.Stopped {
				line += ", stopped at " + item.ClockTime.Format("15:04")
			} else {
				line += ", shows " + item.ClockTime.Format("15:04")
			}
		}
		lines = append(lines, line)
	}
	h.printf("%s\n", infoStyle.Render(strings.Join(lines, "\n")))
}

func (h *Handler) printLocation(loc game.LocationView) {
	h.printf("%s\n", titleStyle.Render(fmt.Sprintf("%s %s", loc.Name, loc.Point)))

	lines := []string{fmt.Sprintf("It is %s. Luminosity %.0f%%.", loc.PartOfDay, loc.Luminosity*100)}
	for _, c := range loc.Creatures {
		lines = append(lines, fmt.Sprintf("%s (%d/%d)", c.Name, c.Health, c.MaxHealth))
	}
	for _, item := range loc.Items {
		lines = append(lines, "On the ground: "+item.Name)
	}
	h.printf("%s\n", infoStyle.Render(strings.Join(lines, "\n")))
}

func (h *Handler) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(h.out, format, args...)
}
