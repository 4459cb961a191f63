package combat

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Defaults used when the config leaves them unset
const (
	DefaultTurnDuration = 30 * time.Second
	DefaultMaxTurns     = 1000
)

// Config holds the dependencies of a Resolver
type Config struct {
	Roller dice.Roller
	// EventBus is optional; outcomes are only returned when nil
	EventBus     events.EventBus
	TurnDuration time.Duration
	MaxTurns     int
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.TurnDuration < 0 {
		vb.Field("TurnDuration", "must not be negative")
	}
	if c.MaxTurns < 0 {
		vb.Field("MaxTurns", "must not be negative")
	}

	return vb.Build()
}

// Resolver resolves attacks and battles
type Resolver struct {
	roller       dice.Roller
	bus          events.EventBus
	turnDuration time.Duration
	maxTurns     int
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combat config")
	}

	r := &Resolver{
		roller:       cfg.Roller,
		bus:          cfg.EventBus,
		turnDuration: cfg.TurnDuration,
		maxTurns:     cfg.MaxTurns,
	}
	if r.turnDuration == 0 {
		r.turnDuration = DefaultTurnDuration
	}
	if r.maxTurns == 0 {
		r.maxTurns = DefaultMaxTurns
	}
	return r, nil
}

// TurnDuration returns the world time one attack takes
func (r *Resolver) TurnDuration() time.Duration {
	return r.turnDuration
}

// BattleInput starts a battle. Attacker strikes first.
type BattleInput struct {
	Attacker *creature.Creature
	Defender *creature.Creature
	// Location provides the luminosity; when nil the part of day alone is used
	Location *world.Location
	Start    time.Time
}

// Validate checks that both sides can fight
func (in *BattleInput) Validate() error {
	if in == nil {
		return errors.InvalidArgument("input is required")
	}
	if in.Attacker == nil || in.Defender == nil {
		return errors.InvalidArgument("attacker and defender are required")
	}
	if in.Attacker == in.Defender || in.Attacker.GetID() == in.Defender.GetID() {
		return errors.InvalidArgumentf("%s cannot battle itself", in.Attacker.GetID())
	}
	if in.Attacker.IsDead() {
		return errors.FailedPreconditionf("attacker %s is dead", in.Attacker.GetID())
	}
	if in.Defender.IsDead() {
		return errors.FailedPreconditionf("defender %s is dead", in.Defender.GetID())
	}
	return nil
}

// Battle alternates attacks until one side dies. Each attack advances the
// battle clock by the turn duration and every skill cool down by one. A
// battle that reaches the turn cap is aborted with both sides alive.
func (r *Resolver) Battle(ctx context.Context, in *BattleInput) (*BattleOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	attacker, defender := in.Attacker, in.Defender
	attacker.ResetBattleLog()
	defender.ResetBattleLog()
	defer func() {
		in.Attacker.Skills().Restart()
		in.Defender.Skills().Restart()
	}()

	out := &BattleOutput{}
	now := in.Start
	for attacker.IsAlive() && defender.IsAlive() {
		if out.Turns >= r.maxTurns {
			slog.Warn("battle reached the turn cap",
				"attacker_id", in.Attacker.GetID(),
				"defender_id", in.Defender.GetID(),
				"turns", out.Turns)
			return nil, errors.Abortedf("battle between %s and %s exceeded %d turns",
				in.Attacker.GetID(), in.Defender.GetID(), r.maxTurns)
		}

		outcome := r.Attack(ctx, attacker, defender, r.environment(in.Location, now))
		out.Outcomes = append(out.Outcomes, outcome)
		out.LastHitAt = now
		out.Turns++
		now = now.Add(r.turnDuration)

		if outcome.Killed() {
			out.CauseOfDeath = *outcome.CauseOfDeath
		}
		attacker.Skills().Refresh()
		defender.Skills().Refresh()
		attacker, defender = defender, attacker
	}

	// after the final swap the killer is the defender variable
	out.Survivor = defender.GetID()
	out.Defeated = attacker.GetID()
	out.Duration = time.Duration(out.Turns) * r.turnDuration
	out.PartOfDay = world.PartOfDayAt(now)

	publish(ctx, r.bus, EventBattleEnd, defender, attacker, map[string]interface{}{
		KeyTurns:        out.Turns,
		KeyCauseOfDeath: out.CauseOfDeath.String(),
	})
	slog.Debug("battle finished",
		"survivor_id", out.Survivor,
		"defeated_id", out.Defeated,
		"turns", out.Turns)

	return out, nil
}

func (r *Resolver) environment(location *world.Location, at time.Time) Environment {
	luminosity := world.PartOfDayAt(at).Luminosity()
	if location != nil {
		luminosity = location.Luminosity(at)
	}
	return Environment{Luminosity: luminosity, Time: at}
}
