package achievements

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Store holds achievement definitions in registration order
type Store struct {
	achievements []Achievement
	index        map[string]int
	locked       bool
}

// NewStore creates an empty, unlocked store
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Register appends an achievement. Ids are unique and a locked store
// accepts nothing.
func (s *Store) Register(a Achievement) error {
	if s.locked {
		return errors.FailedPreconditionf("store is locked, cannot register %s", a.ID)
	}
	if a.ID == "" {
		return errors.InvalidArgument("achievement id is required")
	}
	if _, exists := s.index[a.ID]; exists {
		return errors.AlreadyExistsf("achievement %s already registered", a.ID)
	}
	s.index[a.ID] = len(s.achievements)
	s.achievements = append(s.achievements, a)
	return nil
}

// Lock prevents further registration
func (s *Store) Lock() {
	s.locked = true
}

// IsLocked reports whether the store was locked
func (s *Store) IsLocked() bool {
	return s.locked
}

// Achievements returns the definitions in registration order
func (s *Store) Achievements() []Achievement {
	out := make([]Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// Get returns the achievement with id
func (s *Store) Get(id string) (Achievement, bool) {
	i, ok := s.index[id]
	if !ok {
		return Achievement{}, false
	}
	return s.achievements[i], true
}

// Len returns the number of registered achievements
func (s *Store) Len() int {
	return len(s.achievements)
}
