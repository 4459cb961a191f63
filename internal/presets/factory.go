package presets

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
)

// ItemOptions customize an item instance
type ItemOptions struct {
	ID        string
	CreatedAt time.Time
	// Integrity restores a saved value; nil means the preset maximum
	Integrity      *int
	ClockStoppedAt time.Time
}

// NewItem builds an item instance of preset id
func (c *Catalog) NewItem(presetID string, opts ItemOptions) (*items.Item, error) {
	p, ok := c.items[presetID]
	if !ok {
		return nil, errors.NotFoundf("item preset %s not found", presetID)
	}

	tags := make([]items.Tag, 0, len(p.Tags))
	for _, name := range p.Tags {
		tag, err := items.ParseTag(name)
		if err != nil {
			return nil, errors.Wrapf(err, "item preset %s", presetID)
		}
		tags = append(tags, tag)
	}

	current := p.Integrity
	if opts.Integrity != nil {
		current = *opts.Integrity
	}
	integrity, err := items.RestoreIntegrity(current, p.Integrity)
	if err != nil {
		return nil, errors.Wrapf(err, "item %s", opts.ID)
	}

	cfg := &items.Config{
		ID:                  opts.ID,
		PresetID:            p.ID,
		Name:                p.Name,
		Tags:                items.NewTagSet(tags...),
		Weight:              items.NewWeight(p.Weight),
		Integrity:           integrity,
		DecompositionPeriod: p.DecompositionPeriod,
		CreatedAt:           opts.CreatedAt,
		ClockStoppedAt:      opts.ClockStoppedAt,
	}
	if p.Weapon != nil {
		cfg.Weapon = &items.WeaponComponent{
			Damage:                  p.Weapon.Damage,
			HitRate:                 p.Weapon.HitRate,
			IntegrityDecrementOnHit: p.Weapon.IntegrityDecrementOnHit,
		}
	}

	return items.New(cfg)
}

// CreatureOptions customize a creature instance
type CreatureOptions struct {
	ID string
	// Health restores a saved value; nil means full health
	Health *int
	// SkipLoadout leaves the inventory empty; restored creatures reload
	// their saved items instead
	SkipLoadout bool
	// IDs names loadout items; required unless SkipLoadout is set
	IDs       idgen.Generator
	CreatedAt time.Time
}

// NewCreature builds a creature instance of preset id. The archetype is
// resolved through registry; an unknown archetype leaves the creature
// without one so that it skips its attacks.
func (c *Catalog) NewCreature(presetID string, registry *creature.ArchetypeRegistry, opts CreatureOptions) (*creature.Creature, error) {
	p, ok := c.creatures[presetID]
	if !ok {
		return nil, errors.NotFoundf("creature preset %s not found", presetID)
	}
	if registry == nil {
		return nil, errors.InvalidArgument("archetype registry is required")
	}

	archetype, _ := registry.Lookup(p.Archetype)

	skills := make([]creature.Skill, 0, len(p.Skills))
	for _, id := range p.Skills {
		s := c.skills[id]
		skills = append(skills, creature.Skill{
			ID:       s.ID,
			Name:     s.Name,
			Damage:   s.Damage,
			Repair:   s.Repair,
			CoolDown: s.CoolDown,
		})
	}

	cfg := &creature.Config{
		ID:          opts.ID,
		PresetID:    p.ID,
		Name:        p.Name,
		Type:        p.Type,
		MaxHealth:   p.Health,
		Attack:      p.Attack,
		Archetype:   archetype,
		ItemLimit:   p.ItemLimit,
		WeightLimit: items.NewWeight(p.WeightLimit),
		Skills:      skills,
	}
	if opts.Health != nil {
		cfg.Health = *opts.Health
	}

	cr, err := creature.New(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", presetID)
	}
	if opts.SkipLoadout {
		return cr, nil
	}
	if opts.IDs == nil {
		return nil, errors.InvalidArgument("id generator is required for the loadout")
	}

	for _, itemID := range p.Items {
		item, err := c.NewItem(itemID, ItemOptions{ID: opts.IDs.Generate(), CreatedAt: opts.CreatedAt})
		if err != nil {
			return nil, err
		}
		if err := cr.Inventory().Add(item); err != nil {
			return nil, errors.Wrapf(err, "loadout of %s does not fit", presetID)
		}
		if item.PresetID() == p.Weapon && !cr.HasWeapon() {
			if err := cr.Equip(item); err != nil {
				return nil, err
			}
		}
	}

	return cr, nil
}

// NewLocation builds an empty location of preset id at point
func (c *Catalog) NewLocation(presetID string, point world.Point) (*world.Location, error) {
	p, ok := c.locations[presetID]
	if !ok {
		return nil, errors.NotFoundf("location preset %s not found", presetID)
	}
	return world.NewLocation(&world.LocationConfig{
		Point:             point,
		PresetID:          p.ID,
		Name:              p.Name,
		LightPermittivity: p.LightPermittivity,
		ItemLimit:         p.ItemLimit,
		WeightLimit:       items.NewWeight(p.WeightLimit),
	})
}

// SpawnOptions control how a new location is populated
type SpawnOptions struct {
	Registry *creature.ArchetypeRegistry
	ItemIDs  idgen.Generator
	// CreatureIDs defaults to ItemIDs
	CreatureIDs idgen.Generator
	CreatedAt   time.Time
}

// SpawnLocation builds a location and fills it with its preset creatures and
// items. Items that do not fit on the ground are skipped.
func (c *Catalog) SpawnLocation(presetID string, point world.Point, opts SpawnOptions) (*world.Location, error) {
	if opts.ItemIDs == nil {
		return nil, errors.InvalidArgument("item id generator is required")
	}
	creatureIDs := opts.CreatureIDs
	if creatureIDs == nil {
		creatureIDs = opts.ItemIDs
	}

	loc, err := c.NewLocation(presetID, point)
	if err != nil {
		return nil, err
	}
	p := c.locations[presetID]

	for _, creatureID := range p.Creatures {
		cr, err := c.NewCreature(creatureID, opts.Registry, CreatureOptions{
			ID:        creatureIDs.Generate(),
			IDs:       opts.ItemIDs,
			CreatedAt: opts.CreatedAt,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to spawn %s at %s", creatureID, point)
		}
		loc.AddCreature(cr)
	}

	for _, itemID := range p.Items {
		item, err := c.NewItem(itemID, ItemOptions{ID: opts.ItemIDs.Generate(), CreatedAt: opts.CreatedAt})
		if err != nil {
			return nil, err
		}
		if loc.Ground().SimulateAdd(item) != items.AddSuccess {
			continue
		}
		if err := loc.Ground().Add(item); err != nil {
			return nil, err
		}
	}

	return loc, nil
}
