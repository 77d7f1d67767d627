package template_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-roller/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-roller/internal/repositories/template"
	"github.com/KirkDiggler/rpg-roller/internal/testutils"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

// RepositoryContractSuite runs the same behaviour checks against every
// Repository implementation.
type RepositoryContractSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      template.Repository
	newRepo   func(s *RepositoryContractSuite) template.Repository
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(s *RepositoryContractSuite) template.Repository {
			return template.NewInMemory(s.mockClock)
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(s *RepositoryContractSuite) template.Repository {
			client, cleanup := testutils.CreateTestRedisClient(s.T())
			s.T().Cleanup(cleanup)

			repo, err := template.NewRedisRepository(&template.Config{
				Client: client,
				Clock:  s.mockClock,
			})
			s.Require().NoError(err)
			return repo
		},
	})
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().Return(testNow).AnyTimes()
	s.repo = s.newRepo(s)
}

func (s *RepositoryContractSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RepositoryContractSuite) mustTemplate(name string, stacks bool, opts ...special.Option) special.Special {
	t, err := special.NewTemplate(name, stacks, opts...)
	s.Require().NoError(err)
	return t
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	piercing := s.mustTemplate("Piercing", false,
		special.WithBounds(intPtr(1), intPtr(5)),
		special.WithDerivation(special.Scaled(2)))

	created, err := s.repo.Create(s.ctx, &template.CreateInput{Template: piercing})
	s.Require().NoError(err)
	s.Equal("Piercing", created.Record.Name)
	s.Equal("scaled:2", created.Record.Derivation)
	s.True(created.Record.CreatedAt.Equal(testNow))

	got, err := s.repo.Get(s.ctx, &template.GetInput{Name: "Piercing"})
	s.Require().NoError(err)
	s.True(got.Template.Equal(piercing), "got %s", got.Template)
	s.True(got.Template.IsTemplate())
	s.Equal(special.DerivationScaled, got.Template.Derivation().Kind())

	inst, err := got.Template.Instantiate(3)
	s.Require().NoError(err)
	n, _ := inst.NumericValue()
	s.Equal(6, n)
}

func (s *RepositoryContractSuite) TestCreateDuplicate() {
	vicious := s.mustTemplate("Vicious", true, special.WithDerivation(special.Identity()))

	_, err := s.repo.Create(s.ctx, &template.CreateInput{Template: vicious})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &template.CreateInput{Template: vicious})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestCreateRejectsUnstorable() {
	testCases := []struct {
		name string
		sp   special.Special
	}{
		{name: "not a template", sp: special.MustNew("Stun", 1, false)},
		{name: "custom derivation", sp: s.mustTemplate("Odd", false,
			special.WithDerivation(special.Custom(func(level int) (int, bool) { return level % 2, true })))},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, &template.CreateInput{Template: tc.sp})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryContractSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &template.GetInput{Name: "Missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("Missing", errors.GetMeta(err)[errors.MetaName])
}

func (s *RepositoryContractSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, &template.CreateInput{Template: s.mustTemplate("Stun", false)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &template.DeleteInput{Name: "Stun"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &template.GetInput{Name: "Stun"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &template.DeleteInput{Name: "Stun"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, &template.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Templates)
}

func (s *RepositoryContractSuite) TestList() {
	for _, name := range []string{"Stun", "Area", "Knockdown"} {
		_, err := s.repo.Create(s.ctx, &template.CreateInput{Template: s.mustTemplate(name, false)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &template.ListInput{})
	s.Require().NoError(err)

	var names []string
	for _, t := range out.Templates {
		names = append(names, t.Name())
	}
	s.Equal([]string{"Area", "Knockdown", "Stun"}, names)
}

func (s *RepositoryContractSuite) TestInvalidInput() {
	_, err := s.repo.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &template.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &template.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
