// Package creature models the hero and the creatures it fights
package creature

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// BattleLog accumulates damage dealt and received during one battle
type BattleLog struct {
	Inflicted int
	Taken     int
}

// Config holds the values needed to create a creature
type Config struct {
	ID       string
	PresetID string
	Name     string
	// Type is the creature category used by battle statistics (e.g. "Beast")
	Type      string
	MaxHealth int
	// Health defaults to MaxHealth when zero
	Health      int
	Attack      int
	Archetype   Archetype
	ItemLimit   int
	WeightLimit items.Weight
	Skills      []Skill
}

// Validate ensures the config describes a living creature
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	errors.ValidateRequired("PresetID", c.PresetID, vb)
	errors.ValidateMin("MaxHealth", c.MaxHealth, 1, vb)
	errors.ValidateRange("Health", c.Health, 0, c.MaxHealth, vb)
	errors.ValidateMin("Attack", c.Attack, 0, vb)

	return vb.Build()
}

// Creature is a combatant with health, an inventory and an optional weapon
type Creature struct {
	id        string
	presetID  string
	name      string
	kind      string
	health    int
	maxHealth int
	attack    int
	archetype Archetype
	inventory *items.Inventory
	weapon    *items.Item
	skills    *SkillRotation
	battleLog BattleLog
}

// New creates a creature and its empty inventory
func New(cfg *Config) (*Creature, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid creature config")
	}

	c := &Creature{
		id:        cfg.ID,
		presetID:  cfg.PresetID,
		name:      cfg.Name,
		kind:      cfg.Type,
		health:    cfg.Health,
		maxHealth: cfg.MaxHealth,
		attack:    cfg.Attack,
		archetype: cfg.Archetype,
		skills:    NewSkillRotation(cfg.Skills...),
	}
	if c.health == 0 {
		c.health = c.maxHealth
	}
	if c.name == "" {
		c.name = cfg.PresetID
	}

	inv, err := items.NewInventory(&items.InventoryConfig{
		Owner:       c,
		ItemLimit:   cfg.ItemLimit,
		WeightLimit: cfg.WeightLimit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create inventory for %s", cfg.ID)
	}
	c.inventory = inv

	return c, nil
}

var (
	_ core.Entity   = (*Creature)(nil)
	_ items.Wielder = (*Creature)(nil)
)

// GetID returns the instance id
func (c *Creature) GetID() string {
	return c.id
}

// GetType returns the creature category
func (c *Creature) GetType() string {
	return c.kind
}

// PresetID returns the preset the creature was built from
func (c *Creature) PresetID() string {
	return c.presetID
}

// Name returns the display name
func (c *Creature) Name() string {
	return c.name
}

// Health returns current health
func (c *Creature) Health() int {
	return c.health
}

// MaxHealth returns maximum health
func (c *Creature) MaxHealth() int {
	return c.maxHealth
}

// IsAlive reports whether health is above zero
func (c *Creature) IsAlive() bool {
	return c.health > 0
}

// IsDead reports whether health reached zero
func (c *Creature) IsDead() bool {
	return c.health == 0
}

// Attack returns the base attack power
func (c *Creature) Attack() int {
	return c.attack
}

// Archetype returns the fighting style, nil when misconfigured
func (c *Creature) Archetype() Archetype {
	return c.archetype
}

// Inventory returns the creature's inventory
func (c *Creature) Inventory() *items.Inventory {
	return c.inventory
}

// Skills returns the skill rotation
func (c *Creature) Skills() *SkillRotation {
	return c.skills
}

// BattleLog returns the damage log of the current battle
func (c *Creature) BattleLog() *BattleLog {
	return &c.battleLog
}

// ResetBattleLog clears the damage log
func (c *Creature) ResetBattleLog() {
	c.battleLog = BattleLog{}
}

// Weapon returns the equipped weapon, nil when unarmed
func (c *Creature) Weapon() *items.Item {
	return c.weapon
}

// HasWeapon reports whether a weapon is equipped
func (c *Creature) HasWeapon() bool {
	return c.weapon != nil
}

// Equip wields an item from the creature's own inventory
func (c *Creature) Equip(item *items.Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if item.Weapon() == nil {
		return errors.InvalidArgumentf("%s is not a weapon", item.GetID())
	}
	if !c.inventory.Contains(item) {
		return errors.FailedPreconditionf("%s is not in the inventory of %s", item.GetID(), c.id)
	}
	c.weapon = item
	return nil
}

// UnsetWeapon unequips the current weapon
func (c *Creature) UnsetWeapon() {
	c.weapon = nil
}

// TakeDamage lowers health, flooring at zero, and returns the damage applied
func (c *Creature) TakeDamage(amount int) int {
	if amount < 0 {
		slog.Warn("ignored negative damage", "creature_id", c.id, "amount", amount)
		return 0
	}
	if amount > c.health {
		amount = c.health
	}
	c.health -= amount
	return amount
}

// Heal raises health, capping at the maximum
func (c *Creature) Heal(amount int) {
	if amount <= 0 {
		return
	}
	c.health += amount
	if c.health > c.maxHealth {
		c.health = c.maxHealth
	}
}

// DropAll empties the inventory, unequipping the weapon
func (c *Creature) DropAll() []*items.Item {
	return c.inventory.RemoveAll()
}
