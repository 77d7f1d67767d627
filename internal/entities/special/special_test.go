package special_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

type SpecialTestSuite struct {
	suite.Suite
}

func TestSpecialSuite(t *testing.T) {
	suite.Run(t, new(SpecialTestSuite))
}

func intPtr(v int) *int { return &v }

func (s *SpecialTestSuite) TestNewValidatesName() {
	testCases := []struct {
		name      string
		input     string
		wantName  string
		expectErr bool
	}{
		{name: "simple word", input: "Vicious", wantName: "Vicious"},
		{name: "hyphenated", input: "Anti-Armour", wantName: "Anti-Armour"},
		{name: "digits and underscore", input: "Piercing_2", wantName: "Piercing_2"},
		{name: "unicode letters", input: "Überschlag", wantName: "Überschlag"},
		{name: "trimmed", input: "  Stun ", wantName: "Stun"},
		{name: "empty", input: "", expectErr: true},
		{name: "only spaces", input: "   ", expectErr: true},
		{name: "leading digit", input: "2Hands", expectErr: true},
		{name: "embedded space", input: "Two Hands", expectErr: true},
		{name: "trailing hyphen", input: "Area-", expectErr: true},
		{name: "double hyphen", input: "Area--Blast", expectErr: true},
		{name: "parenthesis", input: "Area(", expectErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sp, err := special.New(tc.input, 1, false)
			if tc.expectErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantName, sp.Name())
		})
	}
}

func (s *SpecialTestSuite) TestInvalidNameCarriesMeta() {
	_, err := special.New("1st", 1, false)
	s.Require().Error(err)
	s.Equal("1st", errors.GetMeta(err)[errors.MetaName])
}

func (s *SpecialTestSuite) TestStacked() {
	stacking := special.MustNew("Vicious", 2, true)
	override := special.MustNew("Stun", 2, false)

	s.Equal(5, stacking.Stacked(3).Value())
	s.Equal(2, stacking.Value(), "receiver is not modified")
	s.Equal(2, override.Stacked(3).Value())
	s.True(override.Stacked(3).Equal(override))
}

func (s *SpecialTestSuite) TestNumericValue() {
	testCases := []struct {
		name    string
		d       special.Derivation
		level   int
		want    int
		present bool
	}{
		{name: "none", d: special.None(), level: 3},
		{name: "identity", d: special.Identity(), level: 3, want: 3, present: true},
		{name: "constant", d: special.Constant(7), level: 3, want: 7, present: true},
		{name: "scaled", d: special.Scaled(2), level: 3, want: 6, present: true},
		{name: "custom", d: special.Custom(func(level int) (int, bool) {
			return level - 1, level > 1
		}), level: 3, want: 2, present: true},
		{name: "custom absent", d: special.Custom(func(level int) (int, bool) {
			return 0, false
		}), level: 3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sp := special.MustNew("Effect", tc.level, true, special.WithDerivation(tc.d))
			got, ok := sp.NumericValue()
			s.Equal(tc.present, ok)
			s.Equal(tc.want, got)
		})
	}
}

func (s *SpecialTestSuite) TestKind() {
	s.Equal(special.KindPlain, special.MustNew("Stun", 1, false).Kind())
	s.Equal(special.KindDerived, special.MustNew("Vicious", 1, true,
		special.WithDerivation(special.Identity())).Kind())
	s.Equal(special.KindBounded, special.MustNew("Area", 1, false,
		special.WithBounds(intPtr(1), nil)).Kind())
}

func (s *SpecialTestSuite) TestTemplateInstantiate() {
	tmpl, err := special.NewTemplate("Piercing", false,
		special.WithBounds(intPtr(1), intPtr(4)),
		special.WithDerivation(special.Scaled(2)))
	s.Require().NoError(err)
	s.True(tmpl.IsTemplate())
	s.Equal(0, tmpl.Value())

	s.Run("within bounds", func() {
		inst, err := tmpl.Instantiate(3)
		s.Require().NoError(err)
		s.False(inst.IsTemplate())
		s.Equal(3, inst.Value())
		n, ok := inst.NumericValue()
		s.True(ok)
		s.Equal(6, n)
	})

	s.Run("below min", func() {
		_, err := tmpl.Instantiate(0)
		s.Require().Error(err)
		s.True(errors.IsOutOfRange(err))
		meta := errors.GetMeta(err)
		s.Equal("Piercing", meta[errors.MetaName])
		s.Equal(0, meta[errors.MetaLevel])
	})

	s.Run("above max", func() {
		_, err := tmpl.Instantiate(5)
		s.Require().Error(err)
		s.True(errors.IsOutOfRange(err))
		s.Contains(err.Error(), "1..4")
	})

	s.Run("not a template", func() {
		inst, err := tmpl.Instantiate(2)
		s.Require().NoError(err)
		_, err = inst.Instantiate(2)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *SpecialTestSuite) TestOpenTemplate() {
	tmpl, err := special.NewTemplate("Vicious", true)
	s.Require().NoError(err)

	b, bounded := tmpl.Bounds()
	s.True(bounded)
	s.Nil(b.Min)
	s.Nil(b.Max)
	s.True(tmpl.ValidLevel(-50))
	s.True(tmpl.ValidLevel(50))
}

func (s *SpecialTestSuite) TestTemplateRejectsInvertedBounds() {
	_, err := special.NewTemplate("Area", false, special.WithBounds(intPtr(3), intPtr(1)))
	s.True(errors.IsInvalidArgument(err))
}

func (s *SpecialTestSuite) TestCompare() {
	identity := special.WithDerivation(special.Identity())

	s.Negative(special.Compare(special.MustNew("Area", 5, false), special.MustNew("Stun", 1, false)))
	s.Negative(special.Compare(special.MustNew("Area", 1, false), special.MustNew("Area", 2, false)))
	s.Negative(special.Compare(special.MustNew("Area", 1, false), special.MustNew("Area", 1, false, identity)),
		"absent numeric value sorts first")
	s.Positive(special.Compare(
		special.MustNew("Area", 1, false, special.WithDerivation(special.Constant(4))),
		special.MustNew("Area", 1, false, identity)))
	s.Zero(special.Compare(special.MustNew("Area", 1, false), special.MustNew("Area", 1, true)))
}

func (s *SpecialTestSuite) TestString() {
	testCases := []struct {
		name string
		sp   special.Special
		want string
	}{
		{name: "plain", sp: special.MustNew("Stun", 1, false), want: "Stun(1)"},
		{name: "stacking", sp: special.MustNew("Vicious", 3, true), want: "Vicious(s3)"},
		{name: "negative", sp: special.MustNew("Drag", -2, false), want: "Drag(-2)"},
		{name: "with numeric", sp: special.MustNew("Effect", 3, true,
			special.WithDerivation(special.Scaled(2))), want: "Effect(s3=6)"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, tc.sp.String())
		})
	}
}

func (s *SpecialTestSuite) TestText() {
	s.Equal("", special.MustNew("Complication", 0, true).Text())
	s.Equal("Stun", special.MustNew("Stun", 1, false).Text())
	s.Equal("Vicious 1", special.MustNew("Vicious", 1, true).Text())
	s.Equal("Area 3", special.MustNew("Area", 3, false).Text())
}

func (s *SpecialTestSuite) TestEqual() {
	a := special.MustNew("Vicious", 2, true, special.WithDerivation(special.Identity()))

	s.True(a.Equal(special.MustNew("Vicious", 2, true, special.WithDerivation(special.Constant(2)))))
	s.False(a.Equal(special.MustNew("Vicious", 2, true)))
	s.False(a.Equal(special.MustNew("Vicious", 2, false, special.WithDerivation(special.Identity()))))
	s.True(a.Equal(special.MustNew("Vicious", 2, true,
		special.WithDerivation(special.Identity()), special.WithBounds(nil, intPtr(5)))),
		"bounds do not distinguish instances")

	unbounded, err := special.NewTemplate("Piercing", false)
	s.Require().NoError(err)
	capped, err := special.NewTemplate("Piercing", false, special.WithBounds(intPtr(1), intPtr(4)))
	s.Require().NoError(err)
	s.False(unbounded.Equal(capped), "bounds distinguish templates")
}

func (s *SpecialTestSuite) TestInstanceRoundTripsThroughString() {
	tmpl, err := special.NewTemplate("Piercing", false,
		special.WithBounds(intPtr(1), intPtr(4)),
		special.WithDerivation(special.Scaled(2)))
	s.Require().NoError(err)

	inst, err := tmpl.Instantiate(2)
	s.Require().NoError(err)
	s.Equal("Piercing(2=4)", inst.String())

	parsed, err := special.Parse(inst.String())
	s.Require().NoError(err)
	s.True(parsed.Equal(inst))
	s.True(inst.Equal(parsed))
}

func (s *SpecialTestSuite) TestParseDerivation() {
	testCases := []struct {
		input     string
		want      string
		expectErr bool
	}{
		{input: "", want: "none"},
		{input: "Identity", want: "identity"},
		{input: "constant:4", want: "constant:4"},
		{input: "scaled:-2", want: "scaled:-2"},
		{input: "scaled", expectErr: true},
		{input: "constant:x", expectErr: true},
		{input: "custom", expectErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			d, err := special.ParseDerivation(tc.input)
			if tc.expectErr {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, d.String())
		})
	}
}
