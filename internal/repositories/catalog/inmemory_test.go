package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/errors"
	mockclock "github.com/KirkDiggler/pokedex/internal/pkg/clock/mock"
	"github.com/KirkDiggler/pokedex/internal/repositories/catalog"
	"github.com/KirkDiggler/pokedex/internal/testutils"
)

type InMemoryCatalogTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      *catalog.InMemoryRepository
	ctx       context.Context
	start     time.Time
}

func TestInMemoryCatalogSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCatalogTestSuite))
}

func (s *InMemoryCatalogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.start = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.repo = catalog.NewInMemory(&catalog.InMemoryConfig{
		Clock: s.mockClock,
		TTL:   time.Hour,
	})
}

func (s *InMemoryCatalogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InMemoryCatalogTestSuite) TestPutThenGet() {
	s.mockClock.EXPECT().Now().Return(s.start).Times(2)

	out, err := s.repo.Put(s.ctx, catalog.PutInput{Scope: catalog.DefaultScope, Names: testutils.TestPokemonNames})
	s.Require().NoError(err)
	s.Equal(s.start.Add(time.Hour), out.ExpiresAt)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)
	s.Equal(testutils.TestPokemonNames, got.Names)
	s.Equal(s.start, got.FetchedAt)
}

func (s *InMemoryCatalogTestSuite) TestGetReturnsCopy() {
	s.mockClock.EXPECT().Now().Return(s.start).AnyTimes()

	names := []string{"bulbasaur", "ivysaur"}
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Scope: catalog.DefaultScope, Names: names})
	s.Require().NoError(err)
	names[0] = "mutated"

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)
	got.Names[1] = "mutated"

	again, err := s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)
	s.Equal([]string{"bulbasaur", "ivysaur"}, again.Names)
}

func (s *InMemoryCatalogTestSuite) TestExpiry() {
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.start),
		s.mockClock.EXPECT().Now().Return(s.start.Add(59*time.Minute)),
		s.mockClock.EXPECT().Now().Return(s.start.Add(time.Hour)),
	)

	_, err := s.repo.Put(s.ctx, catalog.PutInput{Scope: catalog.DefaultScope, Names: []string{"bulbasaur"}})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.True(errors.IsNotFound(err))

	// the expired entry was evicted, so no clock read is needed
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryCatalogTestSuite) TestNoTTLNeverExpires() {
	repo := catalog.NewInMemory(&catalog.InMemoryConfig{Clock: s.mockClock})
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.start),
		s.mockClock.EXPECT().Now().Return(s.start.Add(1000*time.Hour)).AnyTimes(),
	)

	out, err := repo.Put(s.ctx, catalog.PutInput{Scope: catalog.DefaultScope, Names: []string{"bulbasaur"}})
	s.Require().NoError(err)
	s.True(out.ExpiresAt.IsZero())

	_, err = repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.NoError(err)
}

func (s *InMemoryCatalogTestSuite) TestInvalidate() {
	s.mockClock.EXPECT().Now().Return(s.start).AnyTimes()

	_, err := s.repo.Put(s.ctx, catalog.PutInput{Scope: catalog.DefaultScope, Names: []string{"bulbasaur"}})
	s.Require().NoError(err)

	out, err := s.repo.Invalidate(s.ctx, catalog.InvalidateInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)
	s.True(out.Existed)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.Invalidate(s.ctx, catalog.InvalidateInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)
	s.False(out.Existed)
}

func (s *InMemoryCatalogTestSuite) TestEmptyScope() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, catalog.PutInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Invalidate(s.ctx, catalog.InvalidateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryCatalogTestSuite) TestConcurrentAccess() {
	s.mockClock.EXPECT().Now().Return(s.start).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.repo.Put(s.ctx, catalog.PutInput{Scope: catalog.DefaultScope, Names: []string{"bulbasaur"}})
			_, _ = s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
		}()
	}
	wg.Wait()

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Scope: catalog.DefaultScope})
	s.Require().NoError(err)
	s.Equal([]string{"bulbasaur"}, got.Names)
}
