package creature

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Archetype is the fighting style of a creature. The set of variants is
// closed; combat resolves them with a type switch.
type Archetype interface {
	ArchetypeID() string
	archetype()
}

// Archetype ids used by presets
const (
	ArchetypeCritter = "CRITTER"
	ArchetypeDummy   = "DUMMY"
	ArchetypeBeast   = "BEAST"
	ArchetypeUndead  = "UNDEAD"
	ArchetypeBat     = "BAT"
	ArchetypeHero    = "HERO"
)

// Critter never deals damage. Each turn it either does nothing or tries to flee.
type Critter struct{}

// Dummy stands still.
type Dummy struct{}

// Beast attacks unarmed with a flat hit rate and never lands critical hits.
type Beast struct {
	HitRate float64
}

// Undead fights with its weapon's hit rate when armed and UnarmedHitRate
// otherwise. No critical hits.
type Undead struct {
	UnarmedHitRate float64
}

// Bat is a nocturnal flyer. Its hit chance is MaxHitRate - luminosity/2 and
// every hit is critical once luminosity is at or below CriticalLuminosity.
type Bat struct {
	MaxHitRate         float64
	CriticalLuminosity float64
}

// Hero casts a ready skill when it has one, otherwise fights like Undead with
// rolled critical hits.
type Hero struct {
	UnarmedHitRate        float64
	CriticalChance        float64
	UnarmedCriticalChance float64
}

func (Critter) ArchetypeID() string { return ArchetypeCritter }
func (Dummy) ArchetypeID() string   { return ArchetypeDummy }
func (Beast) ArchetypeID() string   { return ArchetypeBeast }
func (Undead) ArchetypeID() string  { return ArchetypeUndead }
func (Bat) ArchetypeID() string     { return ArchetypeBat }
func (Hero) ArchetypeID() string    { return ArchetypeHero }

func (Critter) archetype() {}
func (Dummy) archetype()   {}
func (Beast) archetype()   {}
func (Undead) archetype()  {}
func (Bat) archetype()     {}
func (Hero) archetype()    {}

// Default parameters of each archetype
var (
	DefaultBeast  = Beast{HitRate: 0.9}
	DefaultUndead = Undead{UnarmedHitRate: 0.85}
	DefaultBat    = Bat{MaxHitRate: 0.9, CriticalLuminosity: 0.5}
	DefaultHero   = Hero{UnarmedHitRate: 0.85, CriticalChance: 0.1, UnarmedCriticalChance: 0.05}
)

// ArchetypeRegistry maps preset archetype ids to their variants. Each game
// owns its own registry.
type ArchetypeRegistry struct {
	byID map[string]Archetype
}

// NewArchetypeRegistry creates a registry holding the default archetypes
func NewArchetypeRegistry() *ArchetypeRegistry {
	r := &ArchetypeRegistry{byID: make(map[string]Archetype)}
	for _, a := range []Archetype{Critter{}, Dummy{}, DefaultBeast, DefaultUndead, DefaultBat, DefaultHero} {
		r.byID[a.ArchetypeID()] = a
	}
	return r
}

// Register adds an archetype under id
func (r *ArchetypeRegistry) Register(id string, a Archetype) error {
	if id == "" {
		return errors.InvalidArgument("archetype id is required")
	}
	if a == nil {
		return errors.InvalidArgument("archetype is required")
	}
	if _, exists := r.byID[id]; exists {
		return errors.AlreadyExistsf("archetype %s already registered", id)
	}
	r.byID[id] = a
	return nil
}

// Lookup resolves an archetype id. Unknown ids are a configuration error:
// they are logged and the creature gets no archetype, which makes it skip
// its attacks.
func (r *ArchetypeRegistry) Lookup(id string) (Archetype, bool) {
	a, ok := r.byID[id]
	if !ok {
		slog.Warn("unknown archetype", "archetype_id", id)
	}
	return a, ok
}

// IDs returns the registered ids in lexical order
func (r *ArchetypeRegistry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
