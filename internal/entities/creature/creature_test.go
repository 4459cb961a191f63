package creature_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

func newCreature(t *testing.T) *creature.Creature {
	t.Helper()
	c, err := creature.New(&creature.Config{
		ID:          "creature_1",
		PresetID:    "WOLF",
		Name:        "Wolf",
		Type:        "Beast",
		MaxHealth:   30,
		Attack:      6,
		Archetype:   creature.DefaultBeast,
		ItemLimit:   4,
		WeightLimit: 10,
	})
	require.NoError(t, err)
	return c
}

func newDagger(t *testing.T) *items.Item {
	t.Helper()
	integrity, err := items.NewIntegrity(80)
	require.NoError(t, err)
	dagger, err := items.New(&items.Config{
		ID:        "item_1",
		PresetID:  "DAGGER",
		Name:      "Dagger",
		Tags:      items.NewTagSet(items.TagWeapon),
		Weight:    0.5,
		Integrity: integrity,
		Weapon:    &items.WeaponComponent{Damage: 12, HitRate: 0.8, IntegrityDecrementOnHit: 5},
		CreatedAt: time.Date(2055, time.June, 2, 6, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return dagger
}

func TestNew(t *testing.T) {
	c := newCreature(t)
	assert.Equal(t, 30, c.Health())
	assert.Equal(t, "Beast", c.GetType())
	assert.Equal(t, "WOLF", c.PresetID())
	assert.True(t, c.IsAlive())
	assert.Equal(t, creature.DefaultBeast, c.Archetype())

	t.Run("rejects non-positive max health", func(t *testing.T) {
		_, err := creature.New(&creature.Config{ID: "x", PresetID: "X", MaxHealth: 0})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestTakeDamage(t *testing.T) {
	c := newCreature(t)

	assert.Equal(t, 16, c.TakeDamage(16))
	assert.Equal(t, 14, c.Health())

	assert.Equal(t, 14, c.TakeDamage(32))
	assert.Equal(t, 0, c.Health())
	assert.True(t, c.IsDead())

	assert.Equal(t, 0, c.TakeDamage(-3))
	assert.Equal(t, 0, c.Health())
}

func TestEquip(t *testing.T) {
	c := newCreature(t)
	dagger := newDagger(t)

	err := c.Equip(dagger)
	assert.True(t, errors.IsFailedPrecondition(err), "weapon must be carried first")

	require.NoError(t, c.Inventory().Add(dagger))
	require.NoError(t, c.Equip(dagger))
	assert.Same(t, dagger, c.Weapon())

	t.Run("removing the weapon unequips it", func(t *testing.T) {
		require.True(t, c.Inventory().Remove(dagger))
		assert.Nil(t, c.Weapon())
		assert.False(t, c.HasWeapon())
	})
}

func TestDropAll(t *testing.T) {
	c := newCreature(t)
	dagger := newDagger(t)
	require.NoError(t, c.Inventory().Add(dagger))
	require.NoError(t, c.Equip(dagger))

	dropped := c.DropAll()
	assert.Equal(t, []*items.Item{dagger}, dropped)
	assert.Nil(t, c.Weapon())
	assert.Nil(t, dagger.Inventory())
}

func TestSkillRotation(t *testing.T) {
	fireball := creature.Skill{ID: "FIREBALL", Damage: 10, CoolDown: 2}
	mend := creature.Skill{ID: "MEND", Damage: 1, Repair: 10, CoolDown: 3}
	r := creature.NewSkillRotation(fireball, mend)

	require.True(t, r.HasReadySkill())

	s, ok := r.Use()
	require.True(t, ok)
	assert.Equal(t, "FIREBALL", s.ID)

	s, ok = r.Use()
	require.True(t, ok)
	assert.Equal(t, "MEND", s.ID)

	assert.False(t, r.HasReadySkill())
	_, ok = r.Use()
	assert.False(t, ok)

	r.Refresh()
	r.Refresh()
	s, ok = r.Use()
	require.True(t, ok)
	assert.Equal(t, "FIREBALL", s.ID, "mend is still cooling down")

	r.Restart()
	s, ok = r.Use()
	require.True(t, ok)
	assert.Equal(t, "FIREBALL", s.ID)

	t.Run("zero cool down stays ready", func(t *testing.T) {
		r := creature.NewSkillRotation(creature.Skill{ID: "JAB"})
		for i := 0; i < 3; i++ {
			s, ok := r.Use()
			require.True(t, ok)
			assert.Equal(t, "JAB", s.ID)
		}
	})

	t.Run("empty rotation has nothing ready", func(t *testing.T) {
		r := creature.NewSkillRotation()
		assert.False(t, r.HasReadySkill())
		_, ok := r.Use()
		assert.False(t, ok)
	})
}

func TestArchetypeRegistry(t *testing.T) {
	r := creature.NewArchetypeRegistry()

	a, ok := r.Lookup(creature.ArchetypeBat)
	require.True(t, ok)
	assert.Equal(t, creature.DefaultBat, a)

	_, ok = r.Lookup("DRAGON")
	assert.False(t, ok)

	err := r.Register(creature.ArchetypeBeast, creature.Beast{HitRate: 0.5})
	assert.True(t, errors.IsAlreadyExists(err))

	require.NoError(t, r.Register("SLOW_BEAST", creature.Beast{HitRate: 0.5}))
	a, ok = r.Lookup("SLOW_BEAST")
	require.True(t, ok)
	assert.Equal(t, creature.Beast{HitRate: 0.5}, a)
	assert.Contains(t, r.IDs(), "SLOW_BEAST")

	assert.True(t, errors.IsInvalidArgument(r.Register("", creature.Dummy{})))
	assert.True(t, errors.IsInvalidArgument(r.Register("NIL", nil)))
}
