package achievements

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

// UnlockedAchievement records when an achievement was unlocked
type UnlockedAchievement struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Info       string    `json:"info" yaml:"info"`
	UnlockedAt time.Time `json:"unlocked_at" yaml:"unlocked_at"`
}

// UnlockEvent is produced once per unlock for the presentation layer
type UnlockEvent struct {
	AchievementID string
	Message       string
	UnlockedAt    time.Time
}

// Order sorts unlocked achievements
type Order string

// Supported orders
const (
	OrderByName Order = "name"
	OrderByDate Order = "date"
)

// ParseOrder resolves an order name; empty means by name
func ParseOrder(name string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(name))) {
	case "", OrderByName:
		return OrderByName, nil
	case OrderByDate:
		return OrderByDate, nil
	default:
		return "", errors.InvalidArgumentf("unknown order %q, expected name or date", name)
	}
}

// Tracker holds the achievements unlocked in one game
type Tracker struct {
	unlocked map[string]UnlockedAchievement
}

// NewTracker creates a tracker with nothing unlocked
func NewTracker() *Tracker {
	return &Tracker{unlocked: make(map[string]UnlockedAchievement)}
}

// UnlockMessage formats the message shown when an achievement is unlocked
func UnlockMessage(a Achievement) string {
	return fmt.Sprintf("You unlocked the achievement %s because you %s.", a.Name, a.Text)
}

// IsUnlocked reports whether id was unlocked
func (t *Tracker) IsUnlocked(id string) bool {
	_, ok := t.unlocked[id]
	return ok
}

// Unlock records an unlock. Unlocking twice is a logic error: it is logged
// and refused, and the original record is kept.
func (t *Tracker) Unlock(a Achievement, at time.Time) error {
	if existing, ok := t.unlocked[a.ID]; ok {
		slog.Warn("achievement already unlocked",
			"achievement_id", a.ID,
			"unlocked_at", existing.UnlockedAt)
		return errors.AlreadyExistsf("achievement %s already unlocked", a.ID)
	}
	t.unlocked[a.ID] = UnlockedAchievement{
		ID:         a.ID,
		Name:       a.Name,
		Info:       a.Info,
		UnlockedAt: at,
	}
	slog.Info("achievement unlocked", "achievement_id", a.ID)
	return nil
}

// Update unlocks, in registration order, every locked achievement of store
// fulfilled by s. Calling it again without new statistics unlocks nothing.
func (t *Tracker) Update(store *Store, s *stats.Statistics, at time.Time) []UnlockEvent {
	var events []UnlockEvent
	for _, a := range store.Achievements() {
		if t.IsUnlocked(a.ID) {
			continue
		}
		if !a.IsFulfilled(s) {
			continue
		}
		if err := t.Unlock(a, at); err != nil {
			continue
		}
		events = append(events, UnlockEvent{
			AchievementID: a.ID,
			Message:       UnlockMessage(a),
			UnlockedAt:    at,
		})
	}
	return events
}

// Count returns the number of unlocked achievements
func (t *Tracker) Count() int {
	return len(t.unlocked)
}

// Unlocked returns the unlocked achievements sorted by order. Ties are
// broken by id.
func (t *Tracker) Unlocked(order Order) []UnlockedAchievement {
	out := make([]UnlockedAchievement, 0, len(t.unlocked))
	for _, u := range t.unlocked {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if order == OrderByDate && !a.UnlockedAt.Equal(b.UnlockedAt) {
			return a.UnlockedAt.Before(b.UnlockedAt)
		}
		if order != OrderByDate && a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return out
}

// Snapshot is the plain-data form of a tracker
type Snapshot struct {
	Unlocked []UnlockedAchievement `json:"unlocked" yaml:"unlocked"`
}

// Snapshot copies the unlocked set ordered by date
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{Unlocked: t.Unlocked(OrderByDate)}
}

// RestoreTracker rebuilds a tracker from a snapshot
func RestoreTracker(snap Snapshot) (*Tracker, error) {
	t := NewTracker()
	for _, u := range snap.Unlocked {
		if u.ID == "" {
			return nil, errors.DataLoss("unlocked achievement without id")
		}
		if _, exists := t.unlocked[u.ID]; exists {
			return nil, errors.DataLossf("achievement %s unlocked twice", u.ID)
		}
		t.unlocked[u.ID] = u
	}
	return t, nil
}
