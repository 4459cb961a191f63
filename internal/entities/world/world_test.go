package world_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/creature"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

func at(hour int) time.Time {
	return time.Date(2055, time.June, 2, hour, 30, 0, 0, time.UTC)
}

func TestPartOfDayAt(t *testing.T) {
	testCases := []struct {
		hour int
		want world.PartOfDay
	}{
		{0, world.Midnight},
		{1, world.Night},
		{4, world.Night},
		{5, world.Dawn},
		{7, world.Morning},
		{11, world.Noon},
		{12, world.Noon},
		{13, world.Afternoon},
		{17, world.Dusk},
		{19, world.Evening},
		{22, world.Evening},
		{23, world.Midnight},
	}

	for _, tc := range testCases {
		t.Run(tc.want.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, world.PartOfDayAt(at(tc.hour)))
		})
	}
}

func TestPartOfDayText(t *testing.T) {
	data, err := json.Marshal(map[string]world.PartOfDay{"p": world.Dusk})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":"Dusk"}`, string(data))

	var decoded map[string]world.PartOfDay
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, world.Dusk, decoded["p"])

	_, err = world.ParsePartOfDay("teatime")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLocation_Luminosity(t *testing.T) {
	cave, err := world.NewLocation(&world.LocationConfig{PresetID: "CAVE", LightPermittivity: 0.5, ItemLimit: 10, WeightLimit: 100})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cave.Luminosity(at(12)), 1e-9)
	assert.InDelta(t, 0.1, cave.Luminosity(at(23)), 1e-9)

	_, err = world.NewLocation(&world.LocationConfig{PresetID: "SUN", LightPermittivity: 1.5})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLocation_Creatures(t *testing.T) {
	forest, err := world.NewLocation(&world.LocationConfig{PresetID: "FOREST", LightPermittivity: 0.7})
	require.NoError(t, err)

	wolf, err := creature.New(&creature.Config{ID: "creature_1", PresetID: "WOLF", Name: "Wolf", MaxHealth: 30})
	require.NoError(t, err)
	forest.AddCreature(wolf)

	found, ok := forest.FindCreature("wolf")
	require.True(t, ok)
	assert.Same(t, wolf, found)

	found, ok = forest.FindCreature("creature_1")
	require.True(t, ok)
	assert.Same(t, wolf, found)

	assert.True(t, forest.RemoveCreature(wolf))
	assert.False(t, forest.RemoveCreature(wolf))
	assert.Empty(t, forest.Creatures())
}

func TestWorld(t *testing.T) {
	w := world.New()
	a, _ := world.NewLocation(&world.LocationConfig{Point: world.Point{X: 1, Y: 0}, PresetID: "MEADOW", LightPermittivity: 1})
	b, _ := world.NewLocation(&world.LocationConfig{Point: world.Point{X: 0, Y: 0}, PresetID: "CAMP", LightPermittivity: 1})
	dup, _ := world.NewLocation(&world.LocationConfig{Point: world.Point{X: 0, Y: 0}, PresetID: "CAVE", LightPermittivity: 0.1})

	require.NoError(t, w.Add(a))
	require.NoError(t, w.Add(b))
	assert.True(t, errors.IsAlreadyExists(w.Add(dup)))

	got, ok := w.Get(world.Point{X: 1, Y: 0})
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, []*world.Location{b, a}, w.Locations())
}

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		input string
		want  world.Direction
		moved world.Point
	}{
		{"north", world.North, world.Point{X: 0, Y: 1}},
		{"N", world.North, world.Point{X: 0, Y: 1}},
		{" East ", world.East, world.Point{X: 1, Y: 0}},
		{"s", world.South, world.Point{X: 0, Y: -1}},
		{"WEST", world.West, world.Point{X: -1, Y: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := world.ParseDirection(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
			assert.True(t, d.Valid())
			assert.Equal(t, tc.moved, world.Point{}.Move(d))
		})
	}

	for _, bad := range []string{"", "up", "nw", "x"} {
		_, err := world.ParseDirection(bad)
		assert.True(t, errors.IsInvalidArgument(err), "input %q", bad)
	}
	assert.False(t, world.Direction("up").Valid())
}
