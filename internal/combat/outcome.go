// Package combat resolves attacks between creatures and runs battles to completion
package combat

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

// Action is what an attacker did on its turn
type Action int

// Actions an attacker can take
const (
	// ActionSkip means the attacker has no usable archetype
	ActionSkip Action = iota
	ActionIdle
	ActionFlee
	ActionMiss
	ActionHit
	ActionSpell
)

var actionNames = map[Action]string{
	ActionSkip:  "skip",
	ActionIdle:  "idle",
	ActionFlee:  "flee",
	ActionMiss:  "miss",
	ActionHit:   "hit",
	ActionSpell: "spell",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Outcome describes one resolved attack. It is created once and never changed.
type Outcome struct {
	AttackerID string
	DefenderID string
	Action     Action
	HitDamage  int
	Critical   bool
	// SkillID is set when Action is ActionSpell
	SkillID         string
	WeaponRepaired  int
	WeaponBroke     bool
	WeaponDiscarded bool
	// CauseOfDeath is set only when the defender died from this attack
	CauseOfDeath *stats.CauseOfDeath
}

// Killed reports whether the attack killed the defender
func (o Outcome) Killed() bool {
	return o.CauseOfDeath != nil
}

// Environment is the ambient context of an attack
type Environment struct {
	Luminosity float64
	Time       time.Time
}

// BattleOutput summarizes a finished battle
type BattleOutput struct {
	Turns        int
	Duration     time.Duration
	Survivor     string
	Defeated     string
	CauseOfDeath stats.CauseOfDeath
	// PartOfDay is read from the clock once the final turn elapsed
	PartOfDay world.PartOfDay
	LastHitAt time.Time
	Outcomes  []Outcome
}
