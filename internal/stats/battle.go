package stats

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
)

// CauseOfDeathType classifies what killed a creature
type CauseOfDeathType string

// Cause of death types
const (
	CauseUnarmed      CauseOfDeathType = "UNARMED"
	CauseWeapon       CauseOfDeathType = "WEAPON"
	CauseBrokenWeapon CauseOfDeathType = "BROKEN_WEAPON"
	CauseSpell        CauseOfDeathType = "SPELL"
)

// unarmedSourceID is the source id of every unarmed kill
const unarmedSourceID = "UNARMED"

// CauseOfDeath identifies what killed a creature: the type and the preset id
// of the weapon or skill used
type CauseOfDeath struct {
	Type     CauseOfDeathType `json:"type" yaml:"type"`
	SourceID string           `json:"source_id" yaml:"source_id"`
}

// Unarmed returns the cause of death of a bare-handed kill
func Unarmed() CauseOfDeath {
	return CauseOfDeath{Type: CauseUnarmed, SourceID: unarmedSourceID}
}

// ByWeapon returns the cause of death of a kill with a working weapon
func ByWeapon(weaponID string) CauseOfDeath {
	return CauseOfDeath{Type: CauseWeapon, SourceID: weaponID}
}

// ByBrokenWeapon returns the cause of death of a kill with a broken weapon
func ByBrokenWeapon(weaponID string) CauseOfDeath {
	return CauseOfDeath{Type: CauseBrokenWeapon, SourceID: weaponID}
}

// BySpell returns the cause of death of a kill with a skill
func BySpell(skillID string) CauseOfDeath {
	return CauseOfDeath{Type: CauseSpell, SourceID: skillID}
}

func (c CauseOfDeath) String() string {
	return string(c.Type) + "/" + c.SourceID
}

// BattleRecord is the key of the battle counter: one per concluded battle
type BattleRecord struct {
	CreatureID   string          `json:"creature_id" yaml:"creature_id"`
	CreatureType string          `json:"creature_type" yaml:"creature_type"`
	CauseOfDeath CauseOfDeath    `json:"cause_of_death" yaml:"cause_of_death"`
	PartOfDay    world.PartOfDay `json:"part_of_day" yaml:"part_of_day"`
}

// BattleQuery filters battle records. Unset fields match anything.
type BattleQuery struct {
	CreatureID   string           `json:"creature_id,omitempty" yaml:"creature_id,omitempty"`
	CreatureType string           `json:"creature_type,omitempty" yaml:"creature_type,omitempty"`
	CauseOfDeath *CauseOfDeath    `json:"cause_of_death,omitempty" yaml:"cause_of_death,omitempty"`
	PartOfDay    *world.PartOfDay `json:"part_of_day,omitempty" yaml:"part_of_day,omitempty"`
}

// Matches reports whether record passes every set filter
func (q BattleQuery) Matches(record BattleRecord) bool {
	if q.CreatureID != "" && q.CreatureID != record.CreatureID {
		return false
	}
	if q.CreatureType != "" && q.CreatureType != record.CreatureType {
		return false
	}
	if q.CauseOfDeath != nil && *q.CauseOfDeath != record.CauseOfDeath {
		return false
	}
	if q.PartOfDay != nil && *q.PartOfDay != record.PartOfDay {
		return false
	}
	return true
}

// Battle counts concluded battles by record
type Battle struct {
	records *CounterMap[BattleRecord]
}

// NewBattle creates empty battle statistics
func NewBattle() *Battle {
	return &Battle{records: NewCounterMap[BattleRecord]()}
}

// Record counts one concluded battle
func (b *Battle) Record(creatureID, creatureType string, cause CauseOfDeath, partOfDay world.PartOfDay) BattleRecord {
	record := BattleRecord{
		CreatureID:   creatureID,
		CreatureType: creatureType,
		CauseOfDeath: cause,
		PartOfDay:    partOfDay,
	}
	b.records.Increment(record)
	return record
}

// Count returns how many battles produced exactly record
func (b *Battle) Count(record BattleRecord) int {
	return b.records.Get(record)
}

// CountMatching sums the battles matching query
func (b *Battle) CountMatching(query BattleQuery) int {
	total := 0
	b.records.Range(func(record BattleRecord, count int) bool {
		if query.Matches(record) {
			total += count
		}
		return true
	})
	return total
}

// Satisfies reports whether at least minCount battles match query. A
// non-positive minCount is trivially satisfied.
func (b *Battle) Satisfies(query BattleQuery, minCount int) bool {
	if minCount <= 0 {
		return true
	}
	total := 0
	satisfied := false
	b.records.Range(func(record BattleRecord, count int) bool {
		if query.Matches(record) {
			total += count
			if total >= minCount {
				satisfied = true
				return false
			}
		}
		return true
	})
	return satisfied
}

// TotalKills returns the number of concluded battles
func (b *Battle) TotalKills() int {
	return b.records.Total()
}

// KillsByCauseOfDeath groups kills by cause of death
func (b *Battle) KillsByCauseOfDeath() map[CauseOfDeath]int {
	out := make(map[CauseOfDeath]int)
	b.records.Range(func(record BattleRecord, count int) bool {
		out[record.CauseOfDeath] += count
		return true
	})
	return out
}
