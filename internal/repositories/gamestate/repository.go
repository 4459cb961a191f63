// Package gamestate persists saved games. The state is plain data; the game
// orchestrator converts it to and from live objects.
package gamestate

import (
	"context"
	"regexp"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/KirkDiggler/rpg-dungeon/internal/repositories/gamestate Repository

// SchemaVersion is written with every save; loading any other version fails
const SchemaVersion = 1

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ItemState is a saved item instance
type ItemState struct {
	ID             string    `json:"id" yaml:"id"`
	PresetID       string    `json:"preset_id" yaml:"preset_id"`
	Integrity      int       `json:"integrity" yaml:"integrity"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	ClockStoppedAt time.Time `json:"clock_stopped_at,omitempty" yaml:"clock_stopped_at,omitempty"`
}

// CreatureState is a saved creature instance
type CreatureState struct {
	ID       string      `json:"id" yaml:"id"`
	PresetID string      `json:"preset_id" yaml:"preset_id"`
	Health   int         `json:"health" yaml:"health"`
	WeaponID string      `json:"weapon_id,omitempty" yaml:"weapon_id,omitempty"`
	Items    []ItemState `json:"items,omitempty" yaml:"items,omitempty"`
}

// LocationState is a saved location with what it holds
type LocationState struct {
	Point     world.Point     `json:"point" yaml:"point"`
	PresetID  string          `json:"preset_id" yaml:"preset_id"`
	Creatures []CreatureState `json:"creatures,omitempty" yaml:"creatures,omitempty"`
	Items     []ItemState     `json:"items,omitempty" yaml:"items,omitempty"`
}

// GameState is a complete saved game
type GameState struct {
	ID             string                `json:"id" yaml:"id"`
	SchemaVersion  int                   `json:"schema_version" yaml:"schema_version"`
	Date           time.Time             `json:"date" yaml:"date"`
	SavedAt        time.Time             `json:"saved_at" yaml:"saved_at"`
	Over           bool                  `json:"over" yaml:"over"`
	HeroPoint      world.Point           `json:"hero_point" yaml:"hero_point"`
	Hero           CreatureState         `json:"hero" yaml:"hero"`
	Locations      []LocationState       `json:"locations" yaml:"locations"`
	Statistics     stats.Snapshot        `json:"statistics" yaml:"statistics"`
	Achievements   achievements.Snapshot `json:"achievements" yaml:"achievements"`
	NextItemID     uint64                `json:"next_item_id" yaml:"next_item_id"`
	NextCreatureID uint64                `json:"next_creature_id" yaml:"next_creature_id"`
}

// Validate checks what every backend relies on
func (s *GameState) Validate() error {
	if s == nil {
		return errors.InvalidArgument("state is required")
	}
	vb := errors.NewValidationBuilder()
	if err := ValidateID(s.ID); err != nil {
		vb.InvalidField("ID", errors.GetMessage(err))
	}
	errors.ValidateRequired("Hero.ID", s.Hero.ID, vb)
	errors.ValidateRequired("Hero.PresetID", s.Hero.PresetID, vb)
	return vb.Build()
}

// checkVersion rejects saves written by another schema
func (s *GameState) checkVersion() error {
	if s.SchemaVersion != SchemaVersion {
		return errors.DataLossf("game %s has schema version %d, expected %d", s.ID, s.SchemaVersion, SchemaVersion)
	}
	return nil
}

// ValidateID accepts ids safe to use as keys and file names
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return errors.InvalidArgumentf("game id %q must be 1-64 letters, digits, '-' or '_'", id)
	}
	return nil
}

// SaveInput contains the state to save
type SaveInput struct {
	State *GameState
}

// SaveOutput contains the saved state as stored
type SaveOutput struct {
	State *GameState
}

// GetInput identifies a saved game
type GetInput struct {
	ID string
}

// GetOutput contains the saved game
type GetOutput struct {
	State *GameState
}

// DeleteInput identifies a saved game
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; deleting reports only errors
type DeleteOutput struct{}

// Repository stores saved games by id
type Repository interface {
	// Save stores the state, replacing any previous save with the same id.
	// SavedAt and SchemaVersion are set by the repository.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get loads a saved game. Missing games return a NotFound error.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a saved game. Missing games return a NotFound error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// stamp copies the state with the repository-owned fields set
func stamp(state *GameState, at time.Time) *GameState {
	out := *state
	out.SchemaVersion = SchemaVersion
	out.SavedAt = at
	return &out
}
