// Package world holds locations, their placement and the time-of-day model
package world

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Point is a world coordinate
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// LocationConfig holds the values needed to create a location
type LocationConfig struct {
	Point             Point
	PresetID          string
	Name              string
	LightPermittivity float64
	ItemLimit         int
	WeightLimit       items.Weight
}

// Validate ensures the location is usable
func (c *LocationConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PresetID", c.PresetID, vb)
	errors.ValidateFraction("LightPermittivity", c.LightPermittivity, vb)
	return vb.Build()
}

// Location is a place in the world holding creatures and items on the ground
type Location struct {
	point             Point
	presetID          string
	name              string
	lightPermittivity float64
	creatures         []*creature.Creature
	ground            *items.Inventory
}

// NewLocation creates an empty location
func NewLocation(cfg *LocationConfig) (*Location, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid location config")
	}

	ground, err := items.NewInventory(&items.InventoryConfig{
		ItemLimit:   cfg.ItemLimit,
		WeightLimit: cfg.WeightLimit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create ground of %s", cfg.PresetID)
	}

	name := cfg.Name
	if name == "" {
		name = cfg.PresetID
	}

	return &Location{
		point:             cfg.Point,
		presetID:          cfg.PresetID,
		name:              name,
		lightPermittivity: cfg.LightPermittivity,
		ground:            ground,
	}, nil
}

// Point returns the location coordinate
func (l *Location) Point() Point {
	return l.point
}

// PresetID returns the location type id
func (l *Location) PresetID() string {
	return l.presetID
}

// Name returns the display name
func (l *Location) Name() string {
	return l.name
}

// Luminosity returns the ambient light at t: the part of day luminosity
// scaled by how much light the location lets through
func (l *Location) Luminosity(t time.Time) float64 {
	return PartOfDayAt(t).Luminosity() * l.lightPermittivity
}

// Ground returns the inventory of items lying at the location
func (l *Location) Ground() *items.Inventory {
	return l.ground
}

// Creatures returns the creatures present, in arrival order
func (l *Location) Creatures() []*creature.Creature {
	out := make([]*creature.Creature, len(l.creatures))
	copy(out, l.creatures)
	return out
}

// AddCreature places a creature at the location
func (l *Location) AddCreature(c *creature.Creature) {
	l.creatures = append(l.creatures, c)
}

// RemoveCreature takes a creature out of the location
func (l *Location) RemoveCreature(c *creature.Creature) bool {
	for i, held := range l.creatures {
		if held == c {
			l.creatures = append(l.creatures[:i], l.creatures[i+1:]...)
			return true
		}
	}
	return false
}

// FindCreature matches a target by instance id, preset id or name,
// case-insensitively. The first match in arrival order wins.
func (l *Location) FindCreature(target string) (*creature.Creature, bool) {
	target = strings.TrimSpace(target)
	for _, c := range l.creatures {
		if strings.EqualFold(c.GetID(), target) ||
			strings.EqualFold(c.PresetID(), target) ||
			strings.EqualFold(c.Name(), target) {
			return c, true
		}
	}
	return nil, false
}

// World is the set of placed locations
type World struct {
	locations map[Point]*Location
}

// New creates an empty world
func New() *World {
	return &World{locations: make(map[Point]*Location)}
}

// Add places a location; a point holds one location
func (w *World) Add(l *Location) error {
	if _, exists := w.locations[l.point]; exists {
		return errors.AlreadyExistsf("a location already exists at %s", l.point)
	}
	w.locations[l.point] = l
	return nil
}

// Get returns the location at p
func (w *World) Get(p Point) (*Location, bool) {
	l, ok := w.locations[p]
	return l, ok
}

// Locations returns every location ordered by row then column
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.locations))
	for _, l := range w.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].point.Y != out[j].point.Y {
			return out[i].point.Y < out[j].point.Y
		}
		return out[i].point.X < out[j].point.X
	})
	return out
}
