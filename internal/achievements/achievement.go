// Package achievements evaluates achievement requirements against game statistics
package achievements

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

// BattleRequirement asks for at least Count battles matching Query
type BattleRequirement struct {
	Query stats.BattleQuery `json:"query" yaml:"query"`
	Count int               `json:"count" yaml:"count"`
}

// ExplorationRequirements map location type ids to the statistic required
// for each of them
type ExplorationRequirements struct {
	KillsByLocation       map[string]int `json:"kills_by_location,omitempty" yaml:"kills_by_location,omitempty"`
	VisitedLocations      map[string]int `json:"visited_locations,omitempty" yaml:"visited_locations,omitempty"`
	MaximumNumberOfVisits map[string]int `json:"maximum_number_of_visits,omitempty" yaml:"maximum_number_of_visits,omitempty"`
}

// Achievement is an immutable achievement definition
type Achievement struct {
	ID   string
	Name string
	Info string
	// Text completes "You unlocked the achievement <name> because you <text>."
	Text        string
	Battle      []BattleRequirement
	Exploration ExplorationRequirements
}

// IsFulfilled evaluates every requirement against s. A malformed battle
// requirement (count below one) is logged and never satisfied.
func (a Achievement) IsFulfilled(s *stats.Statistics) bool {
	return a.battleFulfilled(s.Battle) && a.explorationFulfilled(s.Exploration)
}

func (a Achievement) battleFulfilled(b *stats.Battle) bool {
	for _, req := range a.Battle {
		if req.Count < 1 {
			slog.Warn("malformed battle requirement",
				"achievement_id", a.ID,
				"count", req.Count)
			return false
		}
		if !b.Satisfies(req.Query, req.Count) {
			return false
		}
	}
	return true
}

func (a Achievement) explorationFulfilled(e *stats.Exploration) bool {
	return atLeast(a.Exploration.KillsByLocation, e.KillCount) &&
		atLeast(a.Exploration.VisitedLocations, e.VisitedLocations) &&
		atLeast(a.Exploration.MaximumNumberOfVisits, e.MaximumNumberOfVisits)
}

func atLeast(required map[string]int, statistic func(string) int) bool {
	for locationTypeID, minimum := range required {
		if statistic(locationTypeID) < minimum {
			return false
		}
	}
	return true
}
