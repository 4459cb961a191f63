package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

func TestWorld_Advance(t *testing.T) {
	start := time.Date(2055, time.June, 2, 6, 10, 0, 0, time.UTC)
	w := clock.NewWorld(start)

	assert.Equal(t, start, w.Now())

	got := w.Advance(30 * time.Second)
	assert.Equal(t, start.Add(30*time.Second), got)
	assert.Equal(t, got, w.Now())

	t.Run("negative durations do not rewind", func(t *testing.T) {
		before := w.Now()
		w.Advance(-time.Hour)
		assert.Equal(t, before, w.Now())
	})
}
