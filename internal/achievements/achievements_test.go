package achievements_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

var epoch = time.Date(2055, time.June, 2, 6, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type AchievementsTestSuite struct {
	suite.Suite
	store   *achievements.Store
	tracker *achievements.Tracker
	stats   *stats.Statistics
}

func TestAchievementsSuite(t *testing.T) {
	suite.Run(t, new(AchievementsTestSuite))
}

func (s *AchievementsTestSuite) SetupTest() {
	s.store = achievements.NewStore()
	s.tracker = achievements.NewTracker()
	s.stats = stats.New()

	s.Require().NoError(s.store.Register(achievements.Achievement{
		ID:     "FIRST_BLOOD",
		Name:   "First Blood",
		Info:   "Kill any creature.",
		Text:   "killed your first creature",
		Battle: []achievements.BattleRequirement{{Count: 1}},
	}))
	s.Require().NoError(s.store.Register(achievements.Achievement{
		ID:   "BAT_HUNTER",
		Name: "Bat Hunter",
		Info: "Kill two bats at night.",
		Text: "hunted bats in the dark",
		Battle: []achievements.BattleRequirement{{
			Query: stats.BattleQuery{CreatureID: "BAT", PartOfDay: ptr(world.Night)},
			Count: 2,
		}},
	}))
	s.Require().NoError(s.store.Register(achievements.Achievement{
		ID:   "WANDERER",
		Name: "Wanderer",
		Info: "Visit two forests.",
		Text: "wandered through the woods",
		Exploration: achievements.ExplorationRequirements{
			VisitedLocations: map[string]int{"FOREST": 2},
		},
	}))
	s.store.Lock()
}

func (s *AchievementsTestSuite) TestStoreRegistration() {
	testCases := []struct {
		name    string
		store   func() *achievements.Store
		item    achievements.Achievement
		isError func(error) bool
	}{
		{
			name:    "locked store",
			store:   func() *achievements.Store { return s.store },
			item:    achievements.Achievement{ID: "NEW"},
			isError: errors.IsFailedPrecondition,
		},
		{
			name: "duplicate id",
			store: func() *achievements.Store {
				st := achievements.NewStore()
				s.Require().NoError(st.Register(achievements.Achievement{ID: "A"}))
				return st
			},
			item:    achievements.Achievement{ID: "A"},
			isError: errors.IsAlreadyExists,
		},
		{
			name:    "missing id",
			store:   achievements.NewStore,
			item:    achievements.Achievement{},
			isError: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.store().Register(tc.item)
			s.Assert().True(tc.isError(err), "unexpected error %v", err)
		})
	}

	s.Assert().Equal(3, s.store.Len())
	first, ok := s.store.Get("FIRST_BLOOD")
	s.Require().True(ok)
	s.Assert().Equal("First Blood", first.Name)
}

func (s *AchievementsTestSuite) TestUpdateUnlocksInRegistrationOrder() {
	s.stats.Battle.Record("BAT", "Bat", stats.Unarmed(), world.Night)
	s.stats.Battle.Record("BAT", "Bat", stats.ByWeapon("DAGGER"), world.Night)

	events := s.tracker.Update(s.store, s.stats, epoch)
	s.Require().Len(events, 2)
	s.Assert().Equal("FIRST_BLOOD", events[0].AchievementID)
	s.Assert().Equal("BAT_HUNTER", events[1].AchievementID)
	s.Assert().Equal("You unlocked the achievement Bat Hunter because you hunted bats in the dark.", events[1].Message)
	s.Assert().False(s.tracker.IsUnlocked("WANDERER"))
}

func (s *AchievementsTestSuite) TestUpdateIsIdempotent() {
	s.stats.Battle.Record("RAT", "Critter", stats.Unarmed(), world.Noon)

	first := s.tracker.Update(s.store, s.stats, epoch)
	second := s.tracker.Update(s.store, s.stats, epoch.Add(time.Hour))

	s.Assert().Len(first, 1)
	s.Assert().Empty(second)
	unlocked := s.tracker.Unlocked(achievements.OrderByDate)
	s.Require().Len(unlocked, 1)
	s.Assert().Equal(epoch, unlocked[0].UnlockedAt, "original unlock date is kept")
}

func (s *AchievementsTestSuite) TestExplorationRequirement() {
	s.stats.Exploration.RecordVisit(world.Point{X: 0, Y: 1}, "FOREST", epoch)
	s.Assert().Empty(s.tracker.Update(s.store, s.stats, epoch))

	s.stats.Exploration.RecordVisit(world.Point{X: 1, Y: 1}, "FOREST", epoch)
	events := s.tracker.Update(s.store, s.stats, epoch)
	s.Require().Len(events, 1)
	s.Assert().Equal("WANDERER", events[0].AchievementID)
}

func (s *AchievementsTestSuite) TestMalformedRequirementNeverFulfilled() {
	broken := achievements.Achievement{
		ID:     "BROKEN",
		Battle: []achievements.BattleRequirement{{Count: 0}},
	}
	s.stats.Battle.Record("RAT", "Critter", stats.Unarmed(), world.Noon)
	s.Assert().False(broken.IsFulfilled(s.stats))
}

func (s *AchievementsTestSuite) TestUnlockTwiceIsRefused() {
	a, _ := s.store.Get("FIRST_BLOOD")
	s.Require().NoError(s.tracker.Unlock(a, epoch))

	err := s.tracker.Unlock(a, epoch.Add(time.Hour))
	s.Assert().True(errors.IsAlreadyExists(err))
	s.Assert().Equal(1, s.tracker.Count())
}

func (s *AchievementsTestSuite) TestUnlockedOrdering() {
	for i, id := range []string{"WANDERER", "BAT_HUNTER", "FIRST_BLOOD"} {
		a, ok := s.store.Get(id)
		s.Require().True(ok)
		s.Require().NoError(s.tracker.Unlock(a, epoch.Add(time.Duration(i)*time.Hour)))
	}

	byName := s.tracker.Unlocked(achievements.OrderByName)
	s.Assert().Equal([]string{"Bat Hunter", "First Blood", "Wanderer"}, names(byName))

	byDate := s.tracker.Unlocked(achievements.OrderByDate)
	s.Assert().Equal([]string{"Wanderer", "Bat Hunter", "First Blood"}, names(byDate))
}

func (s *AchievementsTestSuite) TestParseOrder() {
	order, err := achievements.ParseOrder("")
	s.Require().NoError(err)
	s.Assert().Equal(achievements.OrderByName, order)

	order, err = achievements.ParseOrder("Date")
	s.Require().NoError(err)
	s.Assert().Equal(achievements.OrderByDate, order)

	_, err = achievements.ParseOrder("rarity")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *AchievementsTestSuite) TestSnapshotRestore() {
	a, _ := s.store.Get("FIRST_BLOOD")
	s.Require().NoError(s.tracker.Unlock(a, epoch))

	restored, err := achievements.RestoreTracker(s.tracker.Snapshot())
	s.Require().NoError(err)
	s.Assert().True(restored.IsUnlocked("FIRST_BLOOD"))

	_, err = achievements.RestoreTracker(achievements.Snapshot{
		Unlocked: []achievements.UnlockedAchievement{{ID: "A"}, {ID: "A"}},
	})
	s.Assert().True(errors.IsDataLoss(err))
}

func names(list []achievements.UnlockedAchievement) []string {
	out := make([]string, 0, len(list))
	for _, u := range list {
		out = append(out, u.Name)
	}
	return out
}
