// Package items models items, their integrity and the inventories that hold them
package items

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// EntityType is the core.Entity type reported by every item
const EntityType = "item"

// WeaponComponent holds the combat parameters of a weapon item
type WeaponComponent struct {
	Damage                  int
	HitRate                 float64
	IntegrityDecrementOnHit int
}

// clockComponent remembers the time a clock displayed when it broke
type clockComponent struct {
	stoppedAt time.Time
}

// Config holds the values needed to create an item
type Config struct {
	ID                  string
	PresetID            string
	Name                string
	Tags                TagSet
	Weight              Weight
	Integrity           *Integrity
	Weapon              *WeaponComponent
	DecompositionPeriod time.Duration
	CreatedAt           time.Time
	// ClockStoppedAt restores the frozen display of a broken clock
	ClockStoppedAt time.Time
}

// Validate ensures the config describes a consistent item
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	errors.ValidateRequired("PresetID", c.PresetID, vb)
	if c.Integrity == nil {
		vb.RequiredField("Integrity")
	}
	if c.Tags.Has(TagWeapon) && c.Weapon == nil {
		vb.Field("Weapon", "is required for items tagged WEAPON")
	}
	if !c.Tags.Has(TagWeapon) && c.Weapon != nil {
		vb.Field("Weapon", "requires the WEAPON tag")
	}
	if c.Tags.Has(TagDecomposes) && c.DecompositionPeriod <= 0 {
		vb.Field("DecompositionPeriod", "must be positive for items tagged DECOMPOSES")
	}

	return vb.Build()
}

// Item is a single item instance
type Item struct {
	id                  string
	presetID            string
	name                string
	tags                TagSet
	weight              Weight
	integrity           *Integrity
	weapon              *WeaponComponent
	clock               *clockComponent
	decompositionPeriod time.Duration
	createdAt           time.Time

	inventory *Inventory
}

// New creates an item from its config
func New(cfg *Config) (*Item, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid item config")
	}

	item := &Item{
		id:                  cfg.ID,
		presetID:            cfg.PresetID,
		name:                cfg.Name,
		tags:                cfg.Tags,
		weight:              cfg.Weight,
		integrity:           cfg.Integrity,
		decompositionPeriod: cfg.DecompositionPeriod,
		createdAt:           cfg.CreatedAt,
	}
	if item.name == "" {
		item.name = cfg.PresetID
	}
	if cfg.Weapon != nil {
		w := *cfg.Weapon
		item.weapon = &w
	}
	if cfg.Tags.Has(TagClock) {
		item.clock = &clockComponent{stoppedAt: cfg.ClockStoppedAt}
	}

	return item, nil
}

var _ core.Entity = (*Item)(nil)

// GetID returns the instance id
func (i *Item) GetID() string {
	return i.id
}

// GetType returns the entity type
func (i *Item) GetType() string {
	return EntityType
}

// PresetID returns the id of the preset the item was built from
func (i *Item) PresetID() string {
	return i.presetID
}

// Name returns the plain item name
func (i *Item) Name() string {
	return i.name
}

// QualifiedName prefixes the name with the integrity state unless perfect
func (i *Item) QualifiedName() string {
	if i.integrity.IsPerfect() {
		return i.name
	}
	return i.integrity.State().String() + " " + i.name
}

// Tags returns the item tags
func (i *Item) Tags() TagSet {
	return i.tags
}

// HasTag reports whether the item carries tag
func (i *Item) HasTag(tag Tag) bool {
	return i.tags.Has(tag)
}

// Weight returns the current weight. Items tagged
// WEIGHT_PROPORTIONAL_TO_INTEGRITY weigh less as they wear out.
func (i *Item) Weight() Weight {
	if i.tags.Has(TagWeightProportionalToIntegrity) {
		return i.weight.Scale(i.integrity.Fraction())
	}
	return i.weight
}

// Integrity returns the integrity tracker
func (i *Item) Integrity() *Integrity {
	return i.integrity
}

// IsBroken reports whether integrity reached zero
func (i *Item) IsBroken() bool {
	return i.integrity.IsBroken()
}

// Weapon returns the weapon component, or nil for non-weapons
func (i *Item) Weapon() *WeaponComponent {
	return i.weapon
}

// CreatedAt returns the in-game creation date
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// Age returns how long the item has existed at now
func (i *Item) Age(now time.Time) time.Duration {
	return now.Sub(i.createdAt)
}

// DecompositionPeriod returns the age at which a perishable item disappears
func (i *Item) DecompositionPeriod() time.Duration {
	return i.decompositionPeriod
}

// IsDecomposed reports whether a perishable item reached its decomposition age
func (i *Item) IsDecomposed(now time.Time) bool {
	return i.tags.Has(TagDecomposes) && i.Age(now) >= i.decompositionPeriod
}

// IsClock reports whether the item keeps time
func (i *Item) IsClock() bool {
	return i.clock != nil
}

// ReadClock returns the time shown by a clock item. A broken clock shows the
// time at which it broke.
func (i *Item) ReadClock(now time.Time) (shown time.Time, stopped bool) {
	if i.clock == nil {
		return time.Time{}, false
	}
	if i.IsBroken() {
		return i.clock.stoppedAt, true
	}
	return now, false
}

// ClockStoppedAt returns the frozen time of a broken clock, zero otherwise
func (i *Item) ClockStoppedAt() time.Time {
	if i.clock == nil {
		return time.Time{}
	}
	return i.clock.stoppedAt
}

// Inventory returns the inventory holding the item, if any
func (i *Item) Inventory() *Inventory {
	return i.inventory
}
