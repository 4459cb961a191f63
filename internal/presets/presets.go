// Package presets loads item, creature, location and achievement definitions
// from YAML and builds game objects from them.
package presets

import (
	_ "embed"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/items"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

//go:embed default.yaml
var defaultPresets []byte

// WeaponPreset holds the combat values of a weapon item
type WeaponPreset struct {
	Damage                  int     `yaml:"damage"`
	HitRate                 float64 `yaml:"hit_rate"`
	IntegrityDecrementOnHit int     `yaml:"integrity_decrement_on_hit"`
}

// ItemPreset describes an item kind
type ItemPreset struct {
	ID                  string        `yaml:"id"`
	Name                string        `yaml:"name"`
	Tags                []string      `yaml:"tags"`
	Weight              float64       `yaml:"weight"`
	Integrity           int           `yaml:"integrity"`
	Weapon              *WeaponPreset `yaml:"weapon,omitempty"`
	DecompositionPeriod time.Duration `yaml:"decomposition_period,omitempty"`
}

// SkillPreset describes a skill
type SkillPreset struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Damage   int    `yaml:"damage"`
	Repair   int    `yaml:"repair"`
	CoolDown int    `yaml:"cool_down"`
}

// CreaturePreset describes a creature kind and its starting loadout
type CreaturePreset struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Archetype   string   `yaml:"archetype"`
	Health      int      `yaml:"health"`
	Attack      int      `yaml:"attack"`
	ItemLimit   int      `yaml:"item_limit"`
	WeightLimit float64  `yaml:"weight_limit"`
	Items       []string `yaml:"items,omitempty"`
	Weapon      string   `yaml:"weapon,omitempty"`
	Skills      []string `yaml:"skills,omitempty"`
}

// LocationPreset describes a location kind and what spawns there
type LocationPreset struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	LightPermittivity float64  `yaml:"light_permittivity"`
	ItemLimit         int      `yaml:"item_limit"`
	WeightLimit       float64  `yaml:"weight_limit"`
	Creatures         []string `yaml:"creatures,omitempty"`
	Items             []string `yaml:"items,omitempty"`
}

// Placement puts a location preset on the map
type Placement struct {
	Point    world.Point `yaml:"point"`
	Location string      `yaml:"location"`
}

// WorldPreset describes the starting world
type WorldPreset struct {
	StartDate time.Time   `yaml:"start_date"`
	Hero      string      `yaml:"hero"`
	HeroPoint world.Point `yaml:"hero_point"`
	Locations []Placement `yaml:"locations"`
}

// AchievementPreset describes an achievement
type AchievementPreset struct {
	ID          string                               `yaml:"id"`
	Name        string                               `yaml:"name"`
	Info        string                               `yaml:"info"`
	Text        string                               `yaml:"text"`
	Battle      []achievements.BattleRequirement     `yaml:"battle,omitempty"`
	Exploration achievements.ExplorationRequirements `yaml:"exploration,omitempty"`
}

type document struct {
	Items        []ItemPreset        `yaml:"items"`
	Skills       []SkillPreset       `yaml:"skills"`
	Creatures    []CreaturePreset    `yaml:"creatures"`
	Locations    []LocationPreset    `yaml:"locations"`
	World        WorldPreset         `yaml:"world"`
	Achievements []AchievementPreset `yaml:"achievements"`
}

// Catalog is an immutable, validated set of presets
type Catalog struct {
	items        map[string]ItemPreset
	skills       map[string]SkillPreset
	creatures    map[string]CreaturePreset
	locations    map[string]LocationPreset
	achievements []AchievementPreset
	world        WorldPreset
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(defaultPresets)
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to read presets from %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode presets")
	}

	c := &Catalog{
		items:        make(map[string]ItemPreset, len(doc.Items)),
		skills:       make(map[string]SkillPreset, len(doc.Skills)),
		creatures:    make(map[string]CreaturePreset, len(doc.Creatures)),
		locations:    make(map[string]LocationPreset, len(doc.Locations)),
		achievements: doc.Achievements,
		world:        doc.World,
	}

	vb := errors.NewValidationBuilder()
	for _, p := range doc.Items {
		validateItem(p, vb)
		addUnique(c.items, p.ID, p, "items", vb)
	}
	for _, p := range doc.Skills {
		validateSkill(p, vb)
		addUnique(c.skills, p.ID, p, "skills", vb)
	}
	for _, p := range doc.Creatures {
		addUnique(c.creatures, p.ID, p, "creatures", vb)
	}
	for _, p := range doc.Locations {
		addUnique(c.locations, p.ID, p, "locations", vb)
	}
	for _, p := range doc.Creatures {
		c.validateCreature(p, vb)
	}
	for _, p := range doc.Locations {
		c.validateLocation(p, vb)
	}
	c.validateWorld(vb)
	seen := make(map[string]bool, len(doc.Achievements))
	for _, a := range doc.Achievements {
		if a.ID == "" {
			vb.RequiredField("achievements.id")
		}
		if seen[a.ID] {
			vb.Fieldf("achievements."+a.ID, "is defined twice")
		}
		seen[a.ID] = true
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid presets")
	}
	return c, nil
}

func addUnique[T any](m map[string]T, id string, v T, section string, vb *errors.ValidationBuilder) {
	if _, exists := m[id]; exists {
		vb.Field(section+"."+id, "is defined twice")
		return
	}
	m[id] = v
}

func validateSkill(p SkillPreset, vb *errors.ValidationBuilder) {
	if p.ID == "" {
		vb.RequiredField("skills.id")
	}
	field := "skills." + p.ID
	errors.ValidateMin(field+".damage", p.Damage, 0, vb)
	errors.ValidateMin(field+".repair", p.Repair, 0, vb)
	errors.ValidateMin(field+".cool_down", p.CoolDown, 0, vb)
}

func validateItem(p ItemPreset, vb *errors.ValidationBuilder) {
	field := "items." + p.ID
	if p.ID == "" {
		vb.RequiredField("items.id")
	}
	if p.Integrity < 1 {
		vb.Field(field+".integrity", "must be at least 1")
	}
	if p.Weight < 0 {
		vb.Field(field+".weight", "must not be negative")
	}
	for _, tag := range p.Tags {
		if _, err := items.ParseTag(tag); err != nil {
			vb.Fieldf(field+".tags", "unknown tag %q", tag)
		}
	}
	if p.Weapon != nil {
		errors.ValidateFraction(field+".weapon.hit_rate", p.Weapon.HitRate, vb)
		errors.ValidateMin(field+".weapon.damage", p.Weapon.Damage, 0, vb)
		errors.ValidateMin(field+".weapon.integrity_decrement_on_hit", p.Weapon.IntegrityDecrementOnHit, 0, vb)
	}
}

func (c *Catalog) validateCreature(p CreaturePreset, vb *errors.ValidationBuilder) {
	field := "creatures." + p.ID
	if p.ID == "" {
		vb.RequiredField("creatures.id")
	}
	errors.ValidateMin(field+".health", p.Health, 1, vb)
	errors.ValidateMin(field+".attack", p.Attack, 0, vb)
	for _, id := range p.Items {
		if _, ok := c.items[id]; !ok {
			vb.Fieldf(field+".items", "unknown item %s", id)
		}
	}
	if p.Weapon != "" {
		if item, ok := c.items[p.Weapon]; !ok || item.Weapon == nil {
			vb.Fieldf(field+".weapon", "%s is not a weapon preset", p.Weapon)
		} else if !contains(p.Items, p.Weapon) {
			vb.Fieldf(field+".weapon", "%s must be listed in items", p.Weapon)
		}
	}
	for _, id := range p.Skills {
		if _, ok := c.skills[id]; !ok {
			vb.Fieldf(field+".skills", "unknown skill %s", id)
		}
	}
}

func (c *Catalog) validateLocation(p LocationPreset, vb *errors.ValidationBuilder) {
	field := "locations." + p.ID
	if p.ID == "" {
		vb.RequiredField("locations.id")
	}
	errors.ValidateFraction(field+".light_permittivity", p.LightPermittivity, vb)
	for _, id := range p.Creatures {
		if _, ok := c.creatures[id]; !ok {
			vb.Fieldf(field+".creatures", "unknown creature %s", id)
		}
	}
	for _, id := range p.Items {
		if _, ok := c.items[id]; !ok {
			vb.Fieldf(field+".items", "unknown item %s", id)
		}
	}
}

func (c *Catalog) validateWorld(vb *errors.ValidationBuilder) {
	if c.world.Hero == "" {
		vb.RequiredField("world.hero")
	} else if _, ok := c.creatures[c.world.Hero]; !ok {
		vb.Fieldf("world.hero", "unknown creature %s", c.world.Hero)
	}

	points := make(map[world.Point]bool, len(c.world.Locations))
	for _, placement := range c.world.Locations {
		if _, ok := c.locations[placement.Location]; !ok {
			vb.Fieldf("world.locations", "unknown location %s at %s", placement.Location, placement.Point)
		}
		if points[placement.Point] {
			vb.Fieldf("world.locations", "%s is placed twice", placement.Point)
		}
		points[placement.Point] = true
	}
	if !points[c.world.HeroPoint] {
		vb.Fieldf("world.hero_point", "no location at %s", c.world.HeroPoint)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Item returns the item preset with id
func (c *Catalog) Item(id string) (ItemPreset, bool) {
	p, ok := c.items[id]
	return p, ok
}

// Creature returns the creature preset with id
func (c *Catalog) Creature(id string) (CreaturePreset, bool) {
	p, ok := c.creatures[id]
	return p, ok
}

// Location returns the location preset with id
func (c *Catalog) Location(id string) (LocationPreset, bool) {
	p, ok := c.locations[id]
	return p, ok
}

// World returns the starting world
func (c *Catalog) World() WorldPreset {
	return c.world
}

// AchievementStore builds a locked store with every achievement in file order
func (c *Catalog) AchievementStore() (*achievements.Store, error) {
	store := achievements.NewStore()
	for _, p := range c.achievements {
		err := store.Register(achievements.Achievement{
			ID:          p.ID,
			Name:        p.Name,
			Info:        p.Info,
			Text:        p.Text,
			Battle:      p.Battle,
			Exploration: p.Exploration,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to register achievement %s", p.ID)
		}
	}
	store.Lock()
	return store, nil
}
