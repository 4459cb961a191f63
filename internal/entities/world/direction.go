package world

import (
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Direction is a compass direction the hero can walk in
type Direction string

// Walkable directions
const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

var offsets = map[Direction]Point{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

// ParseDirection accepts a direction name or its first letter
func ParseDirection(name string) (Direction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := range offsets {
		if name == string(d) || (len(name) == 1 && name[0] == d[0]) {
			return d, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown direction %q, expected north, east, south or west", name)
}

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	_, ok := offsets[d]
	return ok
}

// Move returns the point one step from p towards d
func (p Point) Move(d Direction) Point {
	off := offsets[d]
	return Point{X: p.X + off.X, Y: p.Y + off.Y}
}
