package world

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// PartOfDay is a time-of-day bucket derived from the world clock
type PartOfDay int

// Parts of day in order of their starting hour
const (
	Night PartOfDay = iota
	Dawn
	Morning
	Noon
	Afternoon
	Dusk
	Evening
	Midnight
)

type partOfDayInfo struct {
	name         string
	luminosity   float64
	startingHour int
}

var partsOfDay = [...]partOfDayInfo{
	Night:     {"Night", 0.4, 1},
	Dawn:      {"Dawn", 0.6, 5},
	Morning:   {"Morning", 0.8, 7},
	Noon:      {"Noon", 1.0, 11},
	Afternoon: {"Afternoon", 0.8, 13},
	Dusk:      {"Dusk", 0.6, 17},
	Evening:   {"Evening", 0.4, 19},
	Midnight:  {"Midnight", 0.2, 23},
}

// PartsOfDay returns every part of day in order
func PartsOfDay() []PartOfDay {
	out := make([]PartOfDay, len(partsOfDay))
	for i := range partsOfDay {
		out[i] = PartOfDay(i)
	}
	return out
}

// PartOfDayAt returns the part of day of t. The hour before Night belongs to
// Midnight.
func PartOfDayAt(t time.Time) PartOfDay {
	hour := t.Hour()
	current := Midnight
	for i, p := range partsOfDay {
		if p.startingHour <= hour {
			current = PartOfDay(i)
		}
	}
	return current
}

// ParsePartOfDay resolves a part of day by name, case-insensitively
func ParsePartOfDay(name string) (PartOfDay, error) {
	for i, p := range partsOfDay {
		if strings.EqualFold(p.name, strings.TrimSpace(name)) {
			return PartOfDay(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown part of day %q", name)
}

// Luminosity is the ambient light of the part of day in [0, 1]
func (p PartOfDay) Luminosity() float64 {
	if !p.valid() {
		return 0
	}
	return partsOfDay[p].luminosity
}

// StartingHour returns the hour at which the part of day begins
func (p PartOfDay) StartingHour() int {
	if !p.valid() {
		return 0
	}
	return partsOfDay[p].startingHour
}

func (p PartOfDay) String() string {
	if !p.valid() {
		return "Unknown"
	}
	return partsOfDay[p].name
}

// MarshalText encodes the part of day by name
func (p PartOfDay) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, errors.InvalidArgumentf("invalid part of day %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a part of day name
func (p *PartOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParsePartOfDay(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p PartOfDay) valid() bool {
	return p >= 0 && int(p) < len(partsOfDay)
}
