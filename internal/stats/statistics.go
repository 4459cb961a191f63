// Package stats holds the battle, exploration and hero statistics of a game
package stats

import (
	"sort"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Hero accumulates the damage the hero dealt and received
type Hero struct {
	DamageInflicted int `json:"damage_inflicted" yaml:"damage_inflicted"`
	DamageTaken     int `json:"damage_taken" yaml:"damage_taken"`
}

// AddDamageInflicted adds non-negative damage dealt by the hero
func (h *Hero) AddDamageInflicted(n int) {
	if n > 0 {
		h.DamageInflicted += n
	}
}

// AddDamageTaken adds non-negative damage received by the hero
func (h *Hero) AddDamageTaken(n int) {
	if n > 0 {
		h.DamageTaken += n
	}
}

// Statistics is the aggregate consumed by achievements and persisted with the game
type Statistics struct {
	Battle      *Battle
	Exploration *Exploration
	Hero        *Hero
}

// New creates empty statistics
func New() *Statistics {
	return &Statistics{
		Battle:      NewBattle(),
		Exploration: NewExploration(),
		Hero:        &Hero{},
	}
}

// BattleCount is one entry of the battle counter in a snapshot
type BattleCount struct {
	Record BattleRecord `json:"record" yaml:"record"`
	Count  int          `json:"count" yaml:"count"`
}

// Snapshot is the plain-data form of Statistics
type Snapshot struct {
	Battles     []BattleCount      `json:"battles" yaml:"battles"`
	Exploration []ExplorationEntry `json:"exploration" yaml:"exploration"`
	Hero        Hero               `json:"hero" yaml:"hero"`
}

// Snapshot copies the statistics into plain data with a stable order
func (s *Statistics) Snapshot() Snapshot {
	snap := Snapshot{
		Exploration: s.Exploration.Entries(),
		Hero:        *s.Hero,
	}
	s.Battle.records.Range(func(record BattleRecord, count int) bool {
		snap.Battles = append(snap.Battles, BattleCount{Record: record, Count: count})
		return true
	})
	sort.Slice(snap.Battles, func(i, j int) bool {
		return battleSortKey(snap.Battles[i].Record) < battleSortKey(snap.Battles[j].Record)
	})
	return snap
}

// Restore rebuilds statistics from a snapshot
func Restore(snap Snapshot) (*Statistics, error) {
	s := New()
	for _, bc := range snap.Battles {
		if bc.Count < 0 {
			return nil, errors.DataLossf("negative battle count for %s", bc.Record.CreatureID)
		}
		s.Battle.records.IncrementBy(bc.Record, bc.Count)
	}
	for _, entry := range snap.Exploration {
		if entry.VisitCount < 0 || entry.KillCount < 0 {
			return nil, errors.DataLossf("negative exploration counts at %s", entry.Point)
		}
		if _, exists := s.Exploration.entries[entry.Point]; exists {
			return nil, errors.DataLossf("duplicate exploration entry at %s", entry.Point)
		}
		e := entry
		s.Exploration.entries[entry.Point] = &e
	}
	hero := snap.Hero
	s.Hero = &hero
	return s, nil
}

func battleSortKey(r BattleRecord) string {
	return r.CreatureID + "\x00" + r.CreatureType + "\x00" + r.CauseOfDeath.String() + "\x00" + r.PartOfDay.String()
}
