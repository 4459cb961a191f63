// Package game implements the game orchestrator: it owns the live games,
// runs the hero's commands against them and persists them after each one.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/presets"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/gamestate"
)

const (
	// DefaultWalkDuration is the world time a successful walk takes
	DefaultWalkDuration = 200 * time.Second

	// MaxWait bounds a single EndTurn
	MaxWait = 24 * time.Hour

	// EventAchievementUnlocked is published once per unlocked achievement
	EventAchievementUnlocked = "achievement.unlocked"

	// Context keys of achievement events
	KeyAchievementID = "achievement_id"
	KeyMessage       = "message"
)

// Service defines the commands of a game
type Service interface {
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)

	Visit(ctx context.Context, input *VisitInput) (*VisitOutput, error)
	Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error)
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	ListAchievements(ctx context.Context, input *ListAchievementsInput) (*ListAchievementsOutput, error)
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository gamestate.Repository
	Catalog    *presets.Catalog
	Roller     dice.Roller
	// EventBus is optional; without it nothing is published
	EventBus    events.EventBus
	IDGenerator idgen.Generator

	TurnDuration   time.Duration
	MaxBattleTurns int
	WalkDuration   time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.WalkDuration < 0 {
		vb.Field("WalkDuration", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo         gamestate.Repository
	catalog      *presets.Catalog
	bus          events.EventBus
	idGen        idgen.Generator
	resolver     *combat.Resolver
	walkDuration time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolver, err := combat.NewResolver(&combat.Config{
		Roller:       cfg.Roller,
		EventBus:     cfg.EventBus,
		TurnDuration: cfg.TurnDuration,
		MaxTurns:     cfg.MaxBattleTurns,
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	walk := cfg.WalkDuration
	if walk == 0 {
		walk = DefaultWalkDuration
	}

	return &orchestrator{
		repo:         cfg.Repository,
		catalog:      cfg.Catalog,
		bus:          cfg.EventBus,
		idGen:        cfg.IDGenerator,
		resolver:     resolver,
		walkDuration: walk,
		sessions:     make(map[string]*session),
	}, nil
}

// NewGame spawns the starting world and saves it
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	gameID := input.GameID
	if gameID == "" {
		gameID = o.idGen.Generate()
	}
	if err := gamestate.ValidateID(gameID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, err := o.repo.Get(ctx, gamestate.GetInput{ID: gameID})
	switch {
	case err == nil:
		return nil, errors.AlreadyExistsf("game %s already exists", gameID)
	case !errors.IsNotFound(err):
		return nil, errors.Wrapf(err, "failed to check game %s", gameID)
	}

	s, err := newSession(gameID, o.catalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game")
	}
	if _, err := o.save(ctx, s); err != nil {
		return nil, err
	}
	o.sessions[gameID] = s

	slog.Info("game created",
		"game_id", gameID,
		"hero_id", s.hero.GetID(),
		"locations", len(s.world.Locations()))

	return &NewGameOutput{
		GameID:   gameID,
		Date:     s.clock.Now(),
		Hero:     creatureView(s.hero, s.clock.Now()),
		Location: locationView(s.location(), s.clock.Now()),
	}, nil
}

// LoadGame replaces any live copy of the game with the saved one
func (o *orchestrator) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.sessions, input.GameID)
	s, err := o.session(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &LoadGameOutput{
		GameID:   s.id,
		Date:     now,
		Over:     s.over,
		Hero:     creatureView(s.hero, now),
		Location: locationView(s.location(), now),
	}, nil
}

// SaveGame writes the live game to the repository
func (o *orchestrator) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.session(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	saved, err := o.save(ctx, s)
	if err != nil {
		return nil, err
	}
	return &SaveGameOutput{SavedAt: saved.SavedAt}, nil
}

// Visit walks the hero to an adjacent location
func (o *orchestrator) Visit(ctx context.Context, input *VisitInput) (*VisitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Direction.Valid() {
		return nil, errors.InvalidArgumentf("unknown direction %q", input.Direction)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.playable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	point := s.heroPoint.Move(input.Direction)
	destination, ok := s.world.Get(point)
	if !ok {
		return nil, errors.FailedPreconditionf("there is nothing to the %s, the way is blocked", input.Direction)
	}

	s.heroPoint = point
	now := s.clock.Advance(o.walkDuration)
	s.stats.Exploration.RecordVisit(point, destination.PresetID(), now)
	slog.Debug("hero arrived",
		"game_id", s.id,
		"point", point.String(),
		"location", destination.PresetID())

	_, unlocked := o.endTurn(ctx, s)
	if _, err := o.save(ctx, s); err != nil {
		return nil, err
	}

	return &VisitOutput{
		Date:     s.clock.Now(),
		Location: locationView(destination, s.clock.Now()),
		Unlocked: unlocked,
	}, nil
}

// Battle makes the hero attack a creature at the hero's location
func (o *orchestrator) Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Target) == "" {
		return nil, errors.InvalidArgument("target is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.playable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	hero := s.hero
	if matchesCreature(input.Target, hero.GetID(), hero.PresetID(), hero.Name()) {
		return nil, errors.InvalidArgument("you cannot attempt suicide")
	}
	loc := s.location()
	target, ok := loc.FindCreature(input.Target)
	if !ok {
		return nil, errors.NotFoundf("creature %s not found at %s", input.Target, loc.Name())
	}

	result, err := o.resolver.Battle(ctx, &combat.BattleInput{
		Attacker: hero,
		Defender: target,
		Location: loc,
		Start:    s.clock.Now(),
	})
	if err != nil {
		// the live copy may be half fought; the next command reloads the last save
		delete(o.sessions, s.id)
		return nil, err
	}
	s.clock.Advance(result.Duration)

	out := &BattleOutput{Battle: result}
	if result.Survivor == hero.GetID() {
		out.HeroWon = true
		s.stats.Battle.Record(target.PresetID(), target.GetType(), result.CauseOfDeath, result.PartOfDay)
		if err := s.stats.Exploration.RecordKill(s.heroPoint); err != nil {
			slog.Warn("kill at an unvisited location",
				"game_id", s.id,
				"point", s.heroPoint.String(),
				"error", err)
		}
		s.stats.Hero.AddDamageInflicted(hero.BattleLog().Inflicted)
		s.stats.Hero.AddDamageTaken(hero.BattleLog().Taken)

		loc.RemoveCreature(target)
		out.Dropped = dropOnGround(target.DropAll(), loc, s.clock.Now())
	} else {
		s.over = true
		out.GameOver = true
		slog.Info("hero died",
			"game_id", s.id,
			"killed_by", target.PresetID(),
			"cause_of_death", result.CauseOfDeath.String())
	}

	_, out.Unlocked = o.endTurn(ctx, s)
	if _, err := o.save(ctx, s); err != nil {
		return nil, err
	}
	out.Date = s.clock.Now()

	return out, nil
}

// EndTurn lets time pass
func (o *orchestrator) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Duration <= 0 || input.Duration > MaxWait {
		return nil, errors.InvalidArgumentf("wait must be positive and at most %s", MaxWait)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.playable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	s.clock.Advance(input.Duration)
	decomposed, unlocked := o.endTurn(ctx, s)
	if _, err := o.save(ctx, s); err != nil {
		return nil, err
	}

	return &EndTurnOutput{
		Date:       s.clock.Now(),
		Decomposed: decomposed,
		Unlocked:   unlocked,
	}, nil
}

// ListAchievements returns the unlocked achievements in the requested order
func (o *orchestrator) ListAchievements(ctx context.Context, input *ListAchievementsInput) (*ListAchievementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	order, err := achievements.ParseOrder(string(input.Order))
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.session(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &ListAchievementsOutput{
		Unlocked: s.tracker.Unlocked(order),
		Total:    s.store.Len(),
	}, nil
}

// GetStatistics returns a copy of the game's statistics
func (o *orchestrator) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.session(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{
		Snapshot:      s.stats.Snapshot(),
		TotalKills:    s.stats.Battle.TotalKills(),
		KillsByCause:  s.stats.Battle.KillsByCauseOfDeath(),
		VisitedPoints: s.stats.Exploration.VisitedPoints(),
	}, nil
}

// session returns the live game, loading it from the repository when needed.
// Callers hold o.mu.
func (o *orchestrator) session(ctx context.Context, gameID string) (*session, error) {
	if err := gamestate.ValidateID(gameID); err != nil {
		return nil, err
	}
	if s, ok := o.sessions[gameID]; ok {
		return s, nil
	}

	got, err := o.repo.Get(ctx, gamestate.GetInput{ID: gameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", gameID)
	}
	s, err := restoreSession(got.State, o.catalog)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to restore game %s", gameID)
	}
	o.sessions[gameID] = s

	slog.Debug("game loaded", "game_id", gameID, "date", s.clock.Now())
	return s, nil
}

// playable is session for commands that need a living hero
func (o *orchestrator) playable(ctx context.Context, gameID string) (*session, error) {
	s, err := o.session(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if s.over {
		return nil, errors.FailedPreconditionf("game %s is over", gameID)
	}
	return s, nil
}

func (o *orchestrator) save(ctx context.Context, s *session) (*gamestate.GameState, error) {
	out, err := o.repo.Save(ctx, gamestate.SaveInput{State: s.state()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save game %s", s.id)
	}
	return out.State, nil
}

// endTurn decomposes perishable items everywhere and unlocks achievements.
// It returns what rotted within the hero's reach.
func (o *orchestrator) endTurn(ctx context.Context, s *session) ([]ItemView, []achievements.UnlockEvent) {
	now := s.clock.Now()

	var decomposed []ItemView
	for _, item := range s.hero.Inventory().Refresh(now) {
		decomposed = append(decomposed, itemView(item, now))
	}
	for _, loc := range s.world.Locations() {
		gone := loc.Ground().Refresh(now)
		for _, c := range loc.Creatures() {
			c.Inventory().Refresh(now)
		}
		if loc.Point() == s.heroPoint {
			for _, item := range gone {
				decomposed = append(decomposed, itemView(item, now))
			}
		}
	}

	unlocked := s.tracker.Update(s.store, s.stats, now)
	for _, u := range unlocked {
		o.publish(ctx, s, u)
	}
	return decomposed, unlocked
}

func (o *orchestrator) publish(ctx context.Context, s *session, u achievements.UnlockEvent) {
	if o.bus == nil {
		return
	}
	event := events.NewGameEvent(EventAchievementUnlocked, s.hero, nil)
	event.Context().Set(KeyAchievementID, u.AchievementID)
	event.Context().Set(KeyMessage, u.Message)
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish achievement event",
			"game_id", s.id,
			"achievement_id", u.AchievementID,
			"error", err)
	}
}

// dropOnGround leaves what fits at the location; the rest is lost
func dropOnGround(dropped []*items.Item, loc *world.Location, now time.Time) []ItemView {
	var out []ItemView
	for _, item := range dropped {
		if loc.Ground().SimulateAdd(item) != items.AddSuccess {
			slog.Debug("dropped item does not fit on the ground",
				"item_id", item.GetID(),
				"location", loc.PresetID())
			continue
		}
		if err := loc.Ground().Add(item); err != nil {
			continue
		}
		out = append(out, itemView(item, now))
	}
	return out
}

func matchesCreature(target string, names ...string) bool {
	target = strings.TrimSpace(target)
	for _, n := range names {
		if strings.EqualFold(target, n) {
			return true
		}
	}
	return false
}
