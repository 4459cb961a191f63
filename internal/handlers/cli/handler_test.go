package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/achievements"
	"github.com/KirkDiggler/rpg-dungeon/internal/combat"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities/world"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/cli"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/stats"
)

var dawn = time.Date(2055, time.June, 2, 6, 0, 0, 0, time.UTC)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	mockGame *gamemock.MockService
	out      *bytes.Buffer
	handler  *cli.Handler
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockGame = gamemock.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}

	handler, err := cli.NewHandler(&cli.HandlerConfig{
		GameService: s.mockGame,
		Out:         s.out,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := cli.NewHandler(&cli.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = cli.NewHandler(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestNewGame() {
	watch := dawn
	s.mockGame.EXPECT().
		NewGame(s.ctx, &game.NewGameInput{GameID: "hero"}).
		Return(&game.NewGameOutput{
			GameID: "hero",
			Date:   dawn,
			Hero: game.CreatureView{
				Name: "Hero", Health: 50, MaxHealth: 50, Weapon: "Dagger",
				Items: []game.ItemView{{Name: "Pocket Watch", ClockTime: &watch}},
			},
			Location: game.LocationView{
				Name:      "Camp",
				PartOfDay: world.Dawn,
				Creatures: []game.CreatureView{{Name: "Training Dummy", Health: 20, MaxHealth: 20}},
				Items:     []game.ItemView{{Name: "Stone"}},
			},
		}, nil)

	s.Require().NoError(s.handler.NewGame(s.ctx, "hero"))

	printed := s.out.String()
	s.Assert().Contains(printed, "Started game hero on 2055-06-02 06:00.")
	s.Assert().Contains(printed, "Wielding Dagger")
	s.Assert().Contains(printed, "Pocket Watch, shows 06:00")
	s.Assert().Contains(printed, "Training Dummy (20/20)")
	s.Assert().Contains(printed, "On the ground: Stone")
	s.Assert().Contains(printed, "It is Dawn.")
}

func (s *HandlerTestSuite) TestVisitParsesDirection() {
	s.mockGame.EXPECT().
		Visit(s.ctx, &game.VisitInput{GameID: "hero", Direction: world.North}).
		Return(&game.VisitOutput{Location: game.LocationView{Name: "Forest"}}, nil)

	s.Require().NoError(s.handler.Visit(s.ctx, "hero", "N"))
	s.Assert().Contains(s.out.String(), "You arrive at Forest.")

	err := s.handler.Visit(s.ctx, "hero", "up")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestBattle() {
	s.Run("victory", func() {
		s.out.Reset()
		s.mockGame.EXPECT().
			Battle(s.ctx, &game.BattleInput{GameID: "hero", Target: "zombie"}).
			Return(&game.BattleOutput{
				HeroWon: true,
				Battle: &combat.BattleOutput{
					Turns:        5,
					Duration:     150 * time.Second,
					CauseOfDeath: stats.BySpell("FIREBALL"),
				},
				Dropped: []game.ItemView{{Name: "Bone"}},
			}, nil)

		s.Require().NoError(s.handler.Battle(s.ctx, "hero", "zombie"))
		s.Assert().Contains(s.out.String(), "You won after 5 turns (2m30s), killing with SPELL/FIREBALL.")
		s.Assert().Contains(s.out.String(), "Bone fell on the ground.")
	})

	s.Run("death", func() {
		s.out.Reset()
		s.mockGame.EXPECT().
			Battle(s.ctx, &game.BattleInput{GameID: "hero", Target: "wolf"}).
			Return(&game.BattleOutput{GameOver: true, Battle: &combat.BattleOutput{}}, nil)

		s.Require().NoError(s.handler.Battle(s.ctx, "hero", "wolf"))
		s.Assert().Contains(s.out.String(), "You died.")
	})

	s.Run("error passes through", func() {
		s.mockGame.EXPECT().
			Battle(s.ctx, &game.BattleInput{GameID: "hero", Target: "Hero"}).
			Return(nil, errors.InvalidArgument("you cannot attempt suicide"))

		err := s.handler.Battle(s.ctx, "hero", "Hero")
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *HandlerTestSuite) TestWait() {
	s.mockGame.EXPECT().
		EndTurn(s.ctx, &game.EndTurnInput{GameID: "hero", Duration: 90 * time.Minute}).
		Return(&game.EndTurnOutput{
			Date:       dawn.Add(90 * time.Minute),
			Decomposed: []game.ItemView{{Name: "Apple"}},
		}, nil)

	s.Require().NoError(s.handler.Wait(s.ctx, "hero", "90m"))
	s.Assert().Contains(s.out.String(), "It is now 2055-06-02 07:30, Morning.")
	s.Assert().Contains(s.out.String(), "Apple rotted away.")

	err := s.handler.Wait(s.ctx, "hero", "a while")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestAchievements() {
	s.mockGame.EXPECT().
		ListAchievements(s.ctx, &game.ListAchievementsInput{GameID: "hero", Order: achievements.OrderByDate}).
		Return(&game.ListAchievementsOutput{
			Total: 13,
			Unlocked: []achievements.UnlockedAchievement{
				{ID: "FIRST_BLOOD", Name: "First Blood", Info: "Kill a creature.", UnlockedAt: dawn},
			},
		}, nil)

	s.Require().NoError(s.handler.Achievements(s.ctx, "hero", "date"))
	s.Assert().Contains(s.out.String(), "Achievements 1/13")
	s.Assert().Contains(s.out.String(), "Kill a creature. (2055-06-02 06:00)")

	err := s.handler.Achievements(s.ctx, "hero", "size")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestStats() {
	s.mockGame.EXPECT().
		GetStatistics(s.ctx, &game.GetStatisticsInput{GameID: "hero"}).
		Return(&game.GetStatisticsOutput{
			TotalKills: 3,
			KillsByCause: map[stats.CauseOfDeath]int{
				stats.ByWeapon("DAGGER"):  2,
				stats.BySpell("FIREBALL"): 1,
			},
			VisitedPoints: 4,
			Snapshot:      stats.Snapshot{Hero: stats.Hero{DamageInflicted: 70, DamageTaken: 12}},
		}, nil)

	s.Require().NoError(s.handler.Stats(s.ctx, "hero"))

	printed := s.out.String()
	s.Assert().Contains(printed, "Kills: 3")
	s.Assert().Contains(printed, "SPELL/FIREBALL: 1")
	s.Assert().Contains(printed, "WEAPON/DAGGER: 2")
	s.Assert().Contains(printed, "Visited locations: 4")
	s.Assert().Contains(printed, "Damage inflicted: 70")
	s.Assert().Contains(printed, "Damage taken: 12")
}
