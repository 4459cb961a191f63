package presets_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/presets"
)

var epoch = time.Date(2055, time.June, 2, 6, 0, 0, 0, time.UTC)

type CatalogTestSuite struct {
	suite.Suite
	catalog  *presets.Catalog
	registry *creature.ArchetypeRegistry
	ids      *idgen.SequentialGenerator
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	catalog, err := presets.Default()
	s.Require().NoError(err)
	s.catalog = catalog
	s.registry = creature.NewArchetypeRegistry()
	s.ids = idgen.NewSequential("item")
}

func (s *CatalogTestSuite) TestDefaultWorld() {
	w := s.catalog.World()
	s.Assert().Equal("HERO", w.Hero)
	s.Assert().Equal(world.Point{}, w.HeroPoint)
	s.Assert().Equal(epoch, w.StartDate.UTC())
	s.Assert().NotEmpty(w.Locations)
}

func (s *CatalogTestSuite) TestNewItem() {
	dagger, err := s.catalog.NewItem("DAGGER", presets.ItemOptions{ID: "item_1", CreatedAt: epoch})
	s.Require().NoError(err)

	s.Assert().Equal("DAGGER", dagger.PresetID())
	s.Assert().Equal("Dagger", dagger.Name())
	s.Assert().True(dagger.HasTag(items.TagWeapon))
	s.Assert().True(dagger.HasTag(items.TagRepairable))
	s.Assert().Equal(80, dagger.Integrity().Current())
	s.Require().NotNil(dagger.Weapon())
	s.Assert().Equal(12, dagger.Weapon().Damage)
	s.Assert().Equal(0.8, dagger.Weapon().HitRate)
	s.Assert().Equal(5, dagger.Weapon().IntegrityDecrementOnHit)

	apple, err := s.catalog.NewItem("APPLE", presets.ItemOptions{ID: "item_2", CreatedAt: epoch})
	s.Require().NoError(err)
	s.Assert().Equal(72*time.Hour, apple.DecompositionPeriod())
}

func (s *CatalogTestSuite) TestNewItemRestoresIntegrity() {
	saved := 30
	dagger, err := s.catalog.NewItem("DAGGER", presets.ItemOptions{ID: "item_1", Integrity: &saved})
	s.Require().NoError(err)
	s.Assert().Equal(30, dagger.Integrity().Current())
	s.Assert().Equal(80, dagger.Integrity().Maximum())

	tooMuch := 81
	_, err = s.catalog.NewItem("DAGGER", presets.ItemOptions{ID: "item_2", Integrity: &tooMuch})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.catalog.NewItem("EXCALIBUR", presets.ItemOptions{ID: "item_3"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestNewCreatureWithLoadout() {
	hero, err := s.catalog.NewCreature("HERO", s.registry, presets.CreatureOptions{
		ID:        "hero",
		IDs:       s.ids,
		CreatedAt: epoch,
	})
	s.Require().NoError(err)

	s.Assert().Equal(50, hero.Health())
	s.Assert().Equal(4, hero.Attack())
	s.Assert().Equal(creature.DefaultHero, hero.Archetype())
	s.Assert().Equal(3, hero.Inventory().Count())
	s.Require().NotNil(hero.Weapon())
	s.Assert().Equal("DAGGER", hero.Weapon().PresetID())
	s.Assert().Len(hero.Skills().Skills(), 2)
	s.Assert().Equal(uint64(3), s.ids.Last())
}

func (s *CatalogTestSuite) TestNewCreatureRestored() {
	health := 7
	zombie, err := s.catalog.NewCreature("ZOMBIE", s.registry, presets.CreatureOptions{
		ID:          "creature_9",
		Health:      &health,
		SkipLoadout: true,
	})
	s.Require().NoError(err)
	s.Assert().Equal(7, zombie.Health())
	s.Assert().Equal(0, zombie.Inventory().Count())
	s.Assert().Equal("Undead", zombie.GetType())
}

func (s *CatalogTestSuite) TestUnknownArchetypeLeavesCreatureInert() {
	catalog, err := presets.Parse([]byte(`
creatures:
  - {id: GHOST, archetype: POLTERGEIST, health: 5, attack: 3}
locations:
  - {id: CRYPT, light_permittivity: 0.1}
world:
  hero: GHOST
  locations:
    - {point: {x: 0, y: 0}, location: CRYPT}
`))
	s.Require().NoError(err)

	ghost, err := catalog.NewCreature("GHOST", s.registry, presets.CreatureOptions{ID: "ghost", SkipLoadout: true})
	s.Require().NoError(err)
	s.Assert().Nil(ghost.Archetype())
}

func (s *CatalogTestSuite) TestSpawnLocation() {
	loc, err := s.catalog.SpawnLocation("CAVE", world.Point{X: 2, Y: 1}, presets.SpawnOptions{
		Registry:    s.registry,
		ItemIDs:     s.ids,
		CreatureIDs: idgen.NewSequential("creature"),
		CreatedAt:   epoch,
	})
	s.Require().NoError(err)

	s.Assert().Equal("Cave", loc.Name())
	s.Assert().Len(loc.Creatures(), 3)
	bat, ok := loc.FindCreature("bat")
	s.Require().True(ok)
	s.Assert().Equal("creature_1", bat.GetID())
	s.Assert().InDelta(0.1, loc.Luminosity(time.Date(2055, time.June, 2, 12, 0, 0, 0, time.UTC)), 1e-9)
}

func (s *CatalogTestSuite) TestAchievementStore() {
	store, err := s.catalog.AchievementStore()
	s.Require().NoError(err)
	s.Assert().True(store.IsLocked())

	first := store.Achievements()[0]
	s.Assert().Equal("FIRST_BLOOD", first.ID)

	night, ok := store.Get("NIGHT_STALKER")
	s.Require().True(ok)
	s.Require().Len(night.Battle, 1)
	s.Require().NotNil(night.Battle[0].Query.PartOfDay)
	s.Assert().Equal(world.Night, *night.Battle[0].Query.PartOfDay)

	wanderer, ok := store.Get("WANDERER")
	s.Require().True(ok)
	s.Assert().Equal(2, wanderer.Exploration.VisitedLocations["FOREST"])
}

func TestParseRejectsInvalidPresets(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed yaml",
			yaml: "items: [",
		},
		{
			name: "duplicate item",
			yaml: `
items:
  - {id: STICK, integrity: 10}
  - {id: STICK, integrity: 10}
`,
		},
		{
			name: "unknown tag",
			yaml: `
items:
  - {id: STICK, integrity: 10, tags: [SHINY]}
`,
		},
		{
			name: "weapon not in loadout",
			yaml: `
items:
  - {id: STICK, integrity: 10, tags: [WEAPON], weapon: {damage: 1, hit_rate: 0.5}}
creatures:
  - {id: HERO, health: 5, weapon: STICK}
`,
		},
		{
			name: "hero point without location",
			yaml: `
creatures:
  - {id: HERO, health: 5}
world:
  hero: HERO
  hero_point: {x: 3, y: 3}
`,
		},
		{
			name: "negative skill cool down",
			yaml: `
skills:
  - {id: FIREBALL, damage: 5, cool_down: -1}
`,
		},
		{
			name: "negative skill damage",
			yaml: `
skills:
  - {id: FIREBALL, damage: -5, cool_down: 2}
`,
		},
		{
			name: "negative skill repair",
			yaml: `
skills:
  - {id: MEND, repair: -3}
`,
		},
		{
			name: "hit rate above one",
			yaml: `
items:
  - {id: STICK, integrity: 10, tags: [WEAPON], weapon: {damage: 1, hit_rate: 1.5}}
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := presets.Parse([]byte(tc.yaml))
			assert.True(t, errors.IsInvalidArgument(err), "unexpected error %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
creatures:
  - {id: HERO, archetype: HERO, health: 5}
locations:
  - {id: ROOM, light_permittivity: 1}
world:
  hero: HERO
  locations:
    - {point: {x: 0, y: 0}, location: ROOM}
`), 0o600))

	catalog, err := presets.LoadFile(path)
	require.NoError(t, err)
	_, ok := catalog.Creature("HERO")
	assert.True(t, ok)

	_, err = presets.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}
