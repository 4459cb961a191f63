package game

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/presets"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/gamestate"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

// session is one live game
type session struct {
	id          string
	clock       *clock.World
	world       *world.World
	hero        *creature.Creature
	heroPoint   world.Point
	stats       *stats.Statistics
	tracker     *achievements.Tracker
	store       *achievements.Store
	registry    *creature.ArchetypeRegistry
	itemIDs     *idgen.SequentialGenerator
	creatureIDs *idgen.SequentialGenerator
	over        bool
}

func (s *session) location() *world.Location {
	loc, _ := s.world.Get(s.heroPoint)
	return loc
}

// newSession spawns the catalog's starting world
func newSession(id string, catalog *presets.Catalog) (*session, error) {
	store, err := catalog.AchievementStore()
	if err != nil {
		return nil, err
	}
	wp := catalog.World()

	s := &session{
		id:          id,
		clock:       clock.NewWorld(wp.StartDate),
		world:       world.New(),
		heroPoint:   wp.HeroPoint,
		stats:       stats.New(),
		tracker:     achievements.NewTracker(),
		store:       store,
		registry:    creature.NewArchetypeRegistry(),
		itemIDs:     idgen.NewSequential("item"),
		creatureIDs: idgen.NewSequential("creature"),
	}

	for _, placement := range wp.Locations {
		loc, err := catalog.SpawnLocation(placement.Location, placement.Point, presets.SpawnOptions{
			Registry:    s.registry,
			ItemIDs:     s.itemIDs,
			CreatureIDs: s.creatureIDs,
			CreatedAt:   wp.StartDate,
		})
		if err != nil {
			return nil, err
		}
		if err := s.world.Add(loc); err != nil {
			return nil, err
		}
	}

	s.hero, err = catalog.NewCreature(wp.Hero, s.registry, presets.CreatureOptions{
		ID:        s.creatureIDs.Generate(),
		IDs:       s.itemIDs,
		CreatedAt: wp.StartDate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hero")
	}

	loc := s.location()
	if loc == nil {
		return nil, errors.FailedPreconditionf("no location at hero point %s", s.heroPoint)
	}
	s.stats.Exploration.RecordVisit(s.heroPoint, loc.PresetID(), wp.StartDate)

	return s, nil
}

func itemState(item *items.Item) gamestate.ItemState {
	return gamestate.ItemState{
		ID:             item.GetID(),
		PresetID:       item.PresetID(),
		Integrity:      item.Integrity().Current(),
		CreatedAt:      item.CreatedAt(),
		ClockStoppedAt: item.ClockStoppedAt(),
	}
}

func itemStates(inv *items.Inventory) []gamestate.ItemState {
	var out []gamestate.ItemState
	for _, item := range inv.Items() {
		out = append(out, itemState(item))
	}
	return out
}

func creatureState(c *creature.Creature) gamestate.CreatureState {
	cs := gamestate.CreatureState{
		ID:       c.GetID(),
		PresetID: c.PresetID(),
		Health:   c.Health(),
		Items:    itemStates(c.Inventory()),
	}
	if c.HasWeapon() {
		cs.WeaponID = c.Weapon().GetID()
	}
	return cs
}

// state converts the session to its saved form
func (s *session) state() *gamestate.GameState {
	gs := &gamestate.GameState{
		ID:             s.id,
		Date:           s.clock.Now(),
		Over:           s.over,
		HeroPoint:      s.heroPoint,
		Hero:           creatureState(s.hero),
		Statistics:     s.stats.Snapshot(),
		Achievements:   s.tracker.Snapshot(),
		NextItemID:     s.itemIDs.Last(),
		NextCreatureID: s.creatureIDs.Last(),
	}
	for _, loc := range s.world.Locations() {
		ls := gamestate.LocationState{
			Point:    loc.Point(),
			PresetID: loc.PresetID(),
			Items:    itemStates(loc.Ground()),
		}
		for _, c := range loc.Creatures() {
			ls.Creatures = append(ls.Creatures, creatureState(c))
		}
		gs.Locations = append(gs.Locations, ls)
	}
	return gs
}

// restoreSession rebuilds a live game from a saved state. Any mismatch
// between the save and the catalog is reported as DataLoss.
func restoreSession(gs *gamestate.GameState, catalog *presets.Catalog) (*session, error) {
	store, err := catalog.AchievementStore()
	if err != nil {
		return nil, err
	}
	st, err := stats.Restore(gs.Statistics)
	if err != nil {
		return nil, err
	}
	tracker, err := achievements.RestoreTracker(gs.Achievements)
	if err != nil {
		return nil, err
	}

	s := &session{
		id:          gs.ID,
		clock:       clock.NewWorld(gs.Date),
		world:       world.New(),
		heroPoint:   gs.HeroPoint,
		stats:       st,
		tracker:     tracker,
		store:       store,
		registry:    creature.NewArchetypeRegistry(),
		itemIDs:     idgen.NewSequentialFrom("item", gs.NextItemID),
		creatureIDs: idgen.NewSequentialFrom("creature", gs.NextCreatureID),
		over:        gs.Over,
	}

	for _, ls := range gs.Locations {
		loc, err := catalog.NewLocation(ls.PresetID, ls.Point)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "location at %s", ls.Point)
		}
		for _, cs := range ls.Creatures {
			c, err := restoreCreature(cs, catalog, s.registry)
			if err != nil {
				return nil, err
			}
			loc.AddCreature(c)
		}
		if err := restoreItems(ls.Items, loc.Ground(), catalog); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "ground at %s", ls.Point)
		}
		if err := s.world.Add(loc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "duplicate location")
		}
	}

	if s.location() == nil {
		return nil, errors.DataLossf("no location at hero point %s", gs.HeroPoint)
	}
	s.hero, err = restoreCreature(gs.Hero, catalog, s.registry)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func restoreCreature(cs gamestate.CreatureState, catalog *presets.Catalog, registry *creature.ArchetypeRegistry) (*creature.Creature, error) {
	health := cs.Health
	c, err := catalog.NewCreature(cs.PresetID, registry, presets.CreatureOptions{
		ID:          cs.ID,
		Health:      &health,
		SkipLoadout: true,
	})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "creature %s", cs.ID)
	}
	if err := restoreItems(cs.Items, c.Inventory(), catalog); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "inventory of %s", cs.ID)
	}
	if cs.WeaponID == "" {
		return c, nil
	}
	weapon, ok := c.Inventory().Find(cs.WeaponID)
	if !ok {
		return nil, errors.DataLossf("weapon %s of %s is not in its inventory", cs.WeaponID, cs.ID)
	}
	if err := c.Equip(weapon); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "weapon of %s", cs.ID)
	}
	return c, nil
}

func restoreItems(states []gamestate.ItemState, inv *items.Inventory, catalog *presets.Catalog) error {
	for _, is := range states {
		integrity := is.Integrity
		item, err := catalog.NewItem(is.PresetID, presets.ItemOptions{
			ID:             is.ID,
			CreatedAt:      is.CreatedAt,
			Integrity:      &integrity,
			ClockStoppedAt: is.ClockStoppedAt,
		})
		if err != nil {
			return err
		}
		if err := inv.Add(item); err != nil {
			return err
		}
	}
	return nil
}
