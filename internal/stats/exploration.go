package stats

import (
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// ExplorationEntry is what the hero did at one point of the world
type ExplorationEntry struct {
	Point          world.Point `json:"point" yaml:"point"`
	LocationTypeID string      `json:"location_type_id" yaml:"location_type_id"`
	VisitCount     int         `json:"visit_count" yaml:"visit_count"`
	KillCount      int         `json:"kill_count" yaml:"kill_count"`
	DiscoveredAt   time.Time   `json:"discovered_at" yaml:"discovered_at"`
}

// Exploration tracks visits and kills per point
type Exploration struct {
	entries map[world.Point]*ExplorationEntry
}

// NewExploration creates empty exploration statistics
func NewExploration() *Exploration {
	return &Exploration{entries: make(map[world.Point]*ExplorationEntry)}
}

// RecordVisit counts a visit, creating the entry on the first one
func (e *Exploration) RecordVisit(point world.Point, locationTypeID string, at time.Time) {
	entry, ok := e.entries[point]
	if !ok {
		entry = &ExplorationEntry{
			Point:          point,
			LocationTypeID: locationTypeID,
			DiscoveredAt:   at,
		}
		e.entries[point] = entry
	}
	entry.VisitCount++
}

// RecordKill counts a kill at a point that was visited before
func (e *Exploration) RecordKill(point world.Point) error {
	entry, ok := e.entries[point]
	if !ok {
		slog.Warn("kill recorded at an unvisited point", "point", point.String())
		return errors.FailedPreconditionf("point %s was never visited", point)
	}
	entry.KillCount++
	return nil
}

// Entry returns a copy of the entry at point
func (e *Exploration) Entry(point world.Point) (ExplorationEntry, bool) {
	entry, ok := e.entries[point]
	if !ok {
		return ExplorationEntry{}, false
	}
	return *entry, true
}

// VisitedLocations counts points of the location type visited at least once
func (e *Exploration) VisitedLocations(locationTypeID string) int {
	n := 0
	for _, entry := range e.entries {
		if entry.LocationTypeID == locationTypeID && entry.VisitCount > 0 {
			n++
		}
	}
	return n
}

// KillCount sums kills over every point of the location type
func (e *Exploration) KillCount(locationTypeID string) int {
	n := 0
	for _, entry := range e.entries {
		if entry.LocationTypeID == locationTypeID {
			n += entry.KillCount
		}
	}
	return n
}

// MaximumNumberOfVisits returns the most visits paid to a single point of the
// location type
func (e *Exploration) MaximumNumberOfVisits(locationTypeID string) int {
	maxVisits := 0
	for _, entry := range e.entries {
		if entry.LocationTypeID == locationTypeID && entry.VisitCount > maxVisits {
			maxVisits = entry.VisitCount
		}
	}
	return maxVisits
}

// VisitedPoints returns the number of points visited at least once
func (e *Exploration) VisitedPoints() int {
	return len(e.entries)
}

// Entries returns copies of every entry ordered by point
func (e *Exploration) Entries() []ExplorationEntry {
	out := make([]ExplorationEntry, 0, len(e.entries))
	for _, entry := range e.entries {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Point.Y != out[j].Point.Y {
			return out[i].Point.Y < out[j].Point.Y
		}
		return out[i].Point.X < out[j].Point.X
	})
	return out
}
