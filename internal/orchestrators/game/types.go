package game

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

// ItemView describes an item for display
type ItemView struct {
	ID        string
	PresetID  string
	Name      string
	Weight    string
	Integrity int
	// ClockTime is set for clocks; Stopped when the clock is broken
	ClockTime *time.Time
	Stopped   bool
}

// CreatureView describes a creature for display
type CreatureView struct {
	ID        string
	PresetID  string
	Name      string
	Type      string
	Health    int
	MaxHealth int
	Weapon    string
	Items     []ItemView
}

// LocationView describes the hero's surroundings
type LocationView struct {
	Point      world.Point
	PresetID   string
	Name       string
	PartOfDay  world.PartOfDay
	Luminosity float64
	Creatures  []CreatureView
	Items      []ItemView
}

// NewGameInput defines the request for starting a game
type NewGameInput struct {
	// GameID is generated when empty
	GameID string
}

// NewGameOutput defines the response for starting a game
type NewGameOutput struct {
	GameID   string
	Date     time.Time
	Hero     CreatureView
	Location LocationView
}

// LoadGameInput defines the request for loading a saved game
type LoadGameInput struct {
	GameID string
}

// LoadGameOutput defines the response for loading a saved game
type LoadGameOutput struct {
	GameID   string
	Date     time.Time
	Over     bool
	Hero     CreatureView
	Location LocationView
}

// SaveGameInput defines the request for saving a game
type SaveGameInput struct {
	GameID string
}

// SaveGameOutput defines the response for saving a game
type SaveGameOutput struct {
	SavedAt time.Time
}

// VisitInput defines the request for walking to an adjacent location
type VisitInput struct {
	GameID    string
	Direction world.Direction
}

// VisitOutput defines the response for walking
type VisitOutput struct {
	Date     time.Time
	Location LocationView
	Unlocked []achievements.UnlockEvent
}

// BattleInput defines the request for attacking a creature at the hero's location
type BattleInput struct {
	GameID string
	// Target matches a creature id, preset id or name
	Target string
}

// BattleOutput defines the response for a finished battle
type BattleOutput struct {
	Battle   *combat.BattleOutput
	HeroWon  bool
	GameOver bool
	// Dropped lists the items the defeated creature left on the ground
	Dropped  []ItemView
	Date     time.Time
	Unlocked []achievements.UnlockEvent
}

// EndTurnInput defines the request for letting time pass
type EndTurnInput struct {
	GameID   string
	Duration time.Duration
}

// EndTurnOutput defines the response for letting time pass
type EndTurnOutput struct {
	Date time.Time
	// Decomposed lists the items that rotted away in the hero's reach
	Decomposed []ItemView
	Unlocked   []achievements.UnlockEvent
}

// ListAchievementsInput defines the request for listing unlocked achievements
type ListAchievementsInput struct {
	GameID string
	Order  achievements.Order
}

// ListAchievementsOutput defines the response for listing unlocked achievements
type ListAchievementsOutput struct {
	Unlocked []achievements.UnlockedAchievement
	Total    int
}

// GetStatisticsInput defines the request for reading statistics
type GetStatisticsInput struct {
	GameID string
}

// GetStatisticsOutput defines the response for reading statistics
type GetStatisticsOutput struct {
	Snapshot      stats.Snapshot
	TotalKills    int
	KillsByCause  map[stats.CauseOfDeath]int
	VisitedPoints int
}
