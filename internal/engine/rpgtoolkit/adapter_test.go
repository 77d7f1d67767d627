package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-roller/internal/engine"
	"github.com/KirkDiggler/rpg-roller/internal/entities/die"
	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
	"github.com/KirkDiggler/rpg-roller/internal/testutils"
)

// Scripted rolls that land on each face of the standard combat die
const (
	faceOne    = 1
	faceTwo    = 2
	faceZero   = 3
	faceEffect = 5
)

type AdapterTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *testutils.ScriptedRoller
	engine *Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()

	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)
	s.engine = adapter
}

func (s *AdapterTestSuite) script(rolls ...int) {
	for _, r := range rolls {
		s.roller.SetNextRoll(r)
	}
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("defaults", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		require.NoError(t, err)
		assert.NotNil(t, adapter.diceRoller)
		assert.Equal(t, die.CombatDie().String(), adapter.combatDie.String())
		assert.Equal(t, engine.ActionDieSides, adapter.actionDie.Sides())
	})

	t.Run("legacy combat die", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{CombatDie: die.LegacyCombatDie()})
		require.NoError(t, err)
		assert.Equal(t, "{1, 2, 0, 0, 0, Effect}", adapter.combatDie.String())
	})
}

func TestAdapterImplementsEngine(t *testing.T) {
	var _ engine.Engine = (*Adapter)(nil)
}

func (s *AdapterTestSuite) TestRollActionExample() {
	s.script(5, 15)

	out, err := s.engine.RollAction(s.ctx, &engine.RollActionInput{
		DiceCount:         2,
		TargetNumber:      8,
		CriticalRange:     0,
		ComplicationRange: 20,
	})
	s.Require().NoError(err)

	s.Equal(1, out.Result.Value())
	s.Equal(0, out.Complications)
	s.Equal([]int{5, 15}, out.Draws)
	s.Equal([]string{"5", "~~15~~"}, out.Result.Rolls())
	s.Equal([]int{20, 20}, s.roller.Sizes())

	complication, ok := out.Result.Special(engine.ComplicationName)
	s.Require().True(ok)
	s.Equal(0, complication.Value())
	s.Equal("", out.Result.SpecialsText())
}

func (s *AdapterTestSuite) TestRollActionMarkup() {
	testCases := []struct {
		name          string
		draw          int
		wantValue     int
		wantMarkup    string
		complications int
	}{
		{name: "critical", draw: 1, wantValue: 2, wantMarkup: "**1**"},
		{name: "success", draw: 7, wantValue: 1, wantMarkup: "7"},
		{name: "failure", draw: 12, wantValue: 0, wantMarkup: "~~12~~"},
		{name: "failed complication", draw: 19, wantValue: 0, wantMarkup: "~~__19__~~", complications: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.script(tc.draw)

			out, err := s.engine.RollAction(s.ctx, &engine.RollActionInput{
				DiceCount:         1,
				TargetNumber:      10,
				CriticalRange:     2,
				ComplicationRange: 19,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantValue, out.Result.Value())
			s.Equal([]string{tc.wantMarkup}, out.Result.Rolls())
			s.Equal(tc.complications, out.Complications)
		})
	}
}

func (s *AdapterTestSuite) TestRollActionCriticalComplication() {
	// a generous complication range can overlap a critical
	s.script(3, 3)

	out, err := s.engine.RollAction(s.ctx, &engine.RollActionInput{
		DiceCount:         2,
		TargetNumber:      10,
		CriticalRange:     3,
		ComplicationRange: 3,
	})
	s.Require().NoError(err)
	s.Equal(4, out.Result.Value())
	s.Equal(2, out.Complications)
	s.Equal([]string{"**__3__**", "**__3__**"}, out.Result.Rolls())
	s.Equal("4 with Complication 2 [**__3__**, **__3__**]", out.Result.String())
}

func (s *AdapterTestSuite) TestRollActionNoDice() {
	for _, count := range []int{0, -3} {
		out, err := s.engine.RollAction(s.ctx, &engine.RollActionInput{
			DiceCount:         count,
			TargetNumber:      10,
			CriticalRange:     1,
			ComplicationRange: 20,
		})
		s.Require().NoError(err)
		s.Equal(0, out.Result.Value())
		s.Empty(out.Result.Rolls())
		s.Equal("", out.Result.SpecialsText())
		s.Require().Len(out.Result.Specials(), 1)
		s.Equal(engine.ComplicationName, out.Result.Specials()[0].Name())
	}
	s.Empty(s.roller.Sizes())
}

func (s *AdapterTestSuite) TestRollActionRollerError() {
	s.script(4)

	_, err := s.engine.RollAction(s.ctx, &engine.RollActionInput{DiceCount: 2, TargetNumber: 10})
	s.Require().Error(err)
	s.Contains(err.Error(), "action die 2 of 2")
}

func (s *AdapterTestSuite) TestRollCombatExample() {
	s.script(faceOne, faceEffect)

	out, err := s.engine.RollCombat(s.ctx, &engine.RollCombatInput{
		BaseValue: 0,
		DiceCount: 2,
		Specials: []special.Special{
			special.MustNew("Vicious", 1, true, special.WithDerivation(special.Identity())),
		},
	})
	s.Require().NoError(err)

	s.Equal(1, out.SpecialTotal)
	s.Equal(1, out.Effects)
	s.Equal(2, out.Result.Value())
	s.Equal([]string{"1", "Effect"}, out.Result.Rolls())

	specials := out.Result.Specials()
	s.Require().Len(specials, 1)
	s.Equal("Vicious", specials[0].Name())
	s.Equal(1, specials[0].Value())
	s.Equal([]int{6, 6}, s.roller.Sizes())
}

func (s *AdapterTestSuite) TestRollCombatRepeatedEffects() {
	s.script(faceEffect, faceTwo, faceEffect, faceZero, faceEffect)

	out, err := s.engine.RollCombat(s.ctx, &engine.RollCombatInput{
		BaseValue: 3,
		DiceCount: 5,
		Specials: []special.Special{
			special.MustNew("Vicious", 1, true, special.WithDerivation(special.Identity())),
			special.MustNew("Vicious", 1, true, special.WithDerivation(special.Identity())),
			special.MustNew("Stun", 1, false),
			special.MustNew("Piercing", 2, false, special.WithDerivation(special.Scaled(2))),
		},
	})
	s.Require().NoError(err)

	// Vicious 2 + Piercing 4
	s.Equal(6, out.SpecialTotal)
	s.Equal(3, out.Effects)
	s.Equal(3+2+3*6, out.Result.Value())

	vicious, ok := out.Result.Special("Vicious")
	s.Require().True(ok)
	s.Equal(6, vicious.Value())

	stun, ok := out.Result.Special("Stun")
	s.Require().True(ok)
	s.Equal(1, stun.Value())

	piercing, ok := out.Result.Special("Piercing")
	s.Require().True(ok)
	s.Equal(2, piercing.Value())

	s.Equal("23 with Piercing 2, Stun and Vicious 6 [Effect, 2, Effect, 0, Effect]", out.Result.String())
}

func (s *AdapterTestSuite) TestRollCombatNoEffects() {
	s.script(faceOne, faceTwo, faceZero)

	out, err := s.engine.RollCombat(s.ctx, &engine.RollCombatInput{
		BaseValue: 1,
		DiceCount: 3,
		Specials:  []special.Special{special.MustNew("Vicious", 2, true, special.WithDerivation(special.Identity()))},
	})
	s.Require().NoError(err)
	s.Equal(4, out.Result.Value())
	s.Empty(out.Result.Specials())
	s.Equal("4 [1, 2, 0]", out.Result.String())
}

func (s *AdapterTestSuite) TestRollCombatNoDice() {
	out, err := s.engine.RollCombat(s.ctx, &engine.RollCombatInput{BaseValue: 5})
	s.Require().NoError(err)
	s.Equal(5, out.Result.Value())
	s.Empty(out.Result.Rolls())
	s.Empty(out.Result.Specials())
}

func (s *AdapterTestSuite) TestRollCombatLegacyDie() {
	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: s.roller, CombatDie: die.LegacyCombatDie()})
	s.Require().NoError(err)
	s.script(5, 6)

	out, err := adapter.RollCombat(s.ctx, &engine.RollCombatInput{
		DiceCount: 2,
		Specials:  []special.Special{special.MustNew("Effect", 2, true, special.WithDerivation(special.Identity()))},
	})
	s.Require().NoError(err)
	s.Equal([]string{"0", "Effect"}, out.Result.Rolls())
	s.Equal(2, out.Result.Value())
}

func (s *AdapterTestSuite) TestNilInput() {
	_, err := s.engine.RollAction(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.RollCombat(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
