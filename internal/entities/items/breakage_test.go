package items_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
)

func TestHandleBreakage(t *testing.T) {
	newHolder := func(t *testing.T) (*wielder, *items.Inventory) {
		owner := &wielder{}
		inv, err := items.NewInventory(&items.InventoryConfig{Owner: owner, ItemLimit: 5, WeightLimit: 20})
		require.NoError(t, err)
		return owner, inv
	}

	t.Run("non-repairable weapon is discarded and unequipped", func(t *testing.T) {
		owner, inv := newHolder(t)
		stick := newItem("stick", 1, withWeapon(items.WeaponComponent{Damage: 2, HitRate: 0.9, IntegrityDecrementOnHit: 10}))
		require.NoError(t, inv.Add(stick))
		owner.weapon = stick

		change, err := stick.Integrity().DecrementBy(10)
		require.NoError(t, err)
		require.True(t, change.Broke)

		result := items.HandleBreakage(stick, epoch)
		assert.True(t, result.Discarded)
		assert.False(t, inv.Contains(stick))
		assert.Nil(t, owner.Weapon())
	})

	t.Run("repairable item stays broken in place", func(t *testing.T) {
		owner, inv := newHolder(t)
		dagger := newItem("dagger", 1,
			withTags(items.TagRepairable),
			withWeapon(items.WeaponComponent{Damage: 12, HitRate: 0.8, IntegrityDecrementOnHit: 5}))
		require.NoError(t, inv.Add(dagger))
		owner.weapon = dagger

		_, err := dagger.Integrity().DecrementBy(50)
		require.NoError(t, err)

		result := items.HandleBreakage(dagger, epoch)
		assert.False(t, result.Discarded)
		assert.True(t, inv.Contains(dagger))
		assert.Same(t, dagger, owner.Weapon())
		assert.Equal(t, "Broken dagger", dagger.QualifiedName())
	})

	t.Run("clock freezes at breakage time", func(t *testing.T) {
		_, inv := newHolder(t)
		watch := newItem("watch", 0.1, withTags(items.TagClock, items.TagRepairable))
		require.NoError(t, inv.Add(watch))

		later := epoch.Add(3 * time.Hour)
		shown, stopped := watch.ReadClock(later)
		assert.False(t, stopped)
		assert.Equal(t, later, shown)

		_, err := watch.Integrity().DecrementBy(10)
		require.NoError(t, err)
		result := items.HandleBreakage(watch, later)
		assert.True(t, result.ClockStopped)

		shown, stopped = watch.ReadClock(later.Add(5 * time.Hour))
		assert.True(t, stopped)
		assert.Equal(t, later, shown)
	})

	t.Run("intact item is left alone", func(t *testing.T) {
		_, inv := newHolder(t)
		cup := newItem("cup", 0.2)
		require.NoError(t, inv.Add(cup))

		result := items.HandleBreakage(cup, epoch)
		assert.False(t, result.Discarded)
		assert.True(t, inv.Contains(cup))
	})
}
