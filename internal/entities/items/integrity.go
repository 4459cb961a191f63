package items

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// IntegrityState is the qualitative label shown next to damaged items
type IntegrityState int

// Integrity states, from best to worst
const (
	IntegrityPerfect IntegrityState = iota
	IntegritySlightlyDamaged
	IntegrityDamaged
	IntegritySeverelyDamaged
	IntegrityBroken
)

// String returns the label used in qualified item names
func (s IntegrityState) String() string {
	switch s {
	case IntegrityPerfect:
		return "Perfect"
	case IntegritySlightlyDamaged:
		return "Slightly Damaged"
	case IntegrityDamaged:
		return "Damaged"
	case IntegritySeverelyDamaged:
		return "Severely Damaged"
	default:
		return "Broken"
	}
}

// Integrity is the bounded durability of an item. 0 <= current <= maximum and
// maximum >= 1 hold after every operation.
type Integrity struct {
	current int
	maximum int
}

// IntegrityChange is the result of a decrement. Broke is true only for the
// decrement that moved integrity from a positive value to zero.
type IntegrityChange struct {
	Previous int
	Current  int
	Broke    bool
}

// NewIntegrity creates a full integrity with the given maximum
func NewIntegrity(maximum int) (*Integrity, error) {
	return RestoreIntegrity(maximum, maximum)
}

// RestoreIntegrity creates an integrity at an arbitrary valid point, used when
// loading presets and saved games
func RestoreIntegrity(current, maximum int) (*Integrity, error) {
	if maximum < 1 {
		return nil, errors.InvalidArgumentf("maximum integrity must be at least 1, got %d", maximum)
	}
	if current < 0 || current > maximum {
		return nil, errors.InvalidArgumentf("integrity %d outside [0, %d]", current, maximum)
	}
	return &Integrity{current: current, maximum: maximum}, nil
}

// Current returns the current integrity
func (i *Integrity) Current() int {
	return i.current
}

// Maximum returns the maximum integrity
func (i *Integrity) Maximum() int {
	return i.maximum
}

// IsBroken reports whether integrity reached zero
func (i *Integrity) IsBroken() bool {
	return i.current == 0
}

// IsPerfect reports whether integrity is at its maximum
func (i *Integrity) IsPerfect() bool {
	return i.current == i.maximum
}

// Fraction returns current / maximum in [0, 1]
func (i *Integrity) Fraction() float64 {
	return float64(i.current) / float64(i.maximum)
}

// State maps the integrity fraction to its label
func (i *Integrity) State() IntegrityState {
	f := i.Fraction()
	switch {
	case i.IsPerfect():
		return IntegrityPerfect
	case f >= 0.65:
		return IntegritySlightlyDamaged
	case f >= 0.3:
		return IntegrityDamaged
	case f > 0:
		return IntegritySeverelyDamaged
	default:
		return IntegrityBroken
	}
}

// DecrementBy lowers integrity, flooring at zero. Non-positive amounts are
// rejected without touching state. Decrementing an already broken item is
// logged and never reports a second breakage.
func (i *Integrity) DecrementBy(amount int) (IntegrityChange, error) {
	unchanged := IntegrityChange{Previous: i.current, Current: i.current}
	if amount <= 0 {
		slog.Warn("rejected integrity decrement", "amount", amount)
		return unchanged, errors.InvalidArgumentf("integrity decrement must be positive, got %d", amount)
	}
	if i.current == 0 {
		slog.Warn("decremented integrity of a broken item", "amount", amount)
		return unchanged, nil
	}

	previous := i.current
	i.current -= amount
	if i.current < 0 {
		i.current = 0
	}

	return IntegrityChange{
		Previous: previous,
		Current:  i.current,
		Broke:    i.current == 0,
	}, nil
}

// IncrementBy raises integrity, capping at the maximum
func (i *Integrity) IncrementBy(amount int) error {
	if amount < 0 {
		slog.Warn("rejected integrity increment", "amount", amount)
		return errors.InvalidArgumentf("integrity increment must not be negative, got %d", amount)
	}
	i.current += amount
	if i.current > i.maximum {
		i.current = i.maximum
	}
	return nil
}
