package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	pokedexmock "github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex/mock"
	"github.com/KirkDiggler/pokedex/internal/testutils"
	"github.com/KirkDiggler/pokedex/internal/testutils/builders"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type CLITestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *pokedexmock.MockService
	dir         string
	closed      bool
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = pokedexmock.NewMockService(s.ctrl)
	s.dir = s.T().TempDir()
	s.closed = false
	s.T().Setenv("HOME", s.dir)
}

func (s *CLITestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CLITestSuite) run(args ...string) (string, error) {
	factory := func(_ *config.Config) (pokedex.Service, func(), error) {
		return s.mockService, func() { s.closed = true }, nil
	}

	cmd, release := newRootCmd(factory)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	release()
	return out.String(), err
}

func (s *CLITestSuite) loadFixture(record entities.Record) *entities.Pokemon {
	p, err := entities.FromRecord(record)
	s.Require().NoError(err)
	return p
}

func (s *CLITestSuite) TestList() {
	s.mockService.EXPECT().
		ListNames(gomock.Any(), &pokedex.ListNamesInput{}).
		Return(&pokedex.ListNamesOutput{Names: testutils.TestPokemonNames}, nil)

	out, err := s.run("list")
	s.Require().NoError(err)
	s.Equal("bulbasaur\nivysaur\nvenusaur\n", out)
	s.True(s.closed)
}

func (s *CLITestSuite) TestListRefreshAndPrefix() {
	s.mockService.EXPECT().
		ListNames(gomock.Any(), &pokedex.ListNamesInput{Refresh: true}).
		Return(&pokedex.ListNamesOutput{Names: []string{"bulbasaur", "ivysaur", "venusaur"}}, nil)

	out, err := s.run("list", "--refresh", "--prefix", "V")
	s.Require().NoError(err)
	s.Equal("venusaur\n", out)
}

func (s *CLITestSuite) TestListError() {
	s.mockService.EXPECT().
		ListNames(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("request failed"))

	_, err := s.run("list")
	s.True(errors.IsUnavailable(err))
	s.True(s.closed)
}

func (s *CLITestSuite) TestShow() {
	pokemon := s.loadFixture(builders.NewRecordBuilder().
		WithBackSprite("").
		WithStat("hp", 45).
		WithStat("attack", 49).
		Build())
	stats, err := pokemon.StatsView()
	s.Require().NoError(err)

	s.mockService.EXPECT().
		LoadPokemon(gomock.Any(), &pokedex.LoadPokemonInput{Name: "Bulbasaur"}).
		Return(&pokedex.LoadPokemonOutput{Pokemon: pokemon}, nil)
	s.mockService.EXPECT().
		FetchSprite(gomock.Any(), &pokedex.FetchSpriteInput{Pokemon: pokemon, Side: entities.SpriteFront}).
		Return(&pokedex.FetchSpriteOutput{
			Available:   true,
			URL:         testutils.TestFrontSpriteURL,
			Image:       bytes.NewReader(pngHeader),
			ContentType: "image/png",
			Size:        len(pngHeader),
		}, nil)
	s.mockService.EXPECT().
		FetchSprite(gomock.Any(), &pokedex.FetchSpriteInput{Pokemon: pokemon, Side: entities.SpriteBack}).
		Return(&pokedex.FetchSpriteOutput{Available: false}, nil)
	s.mockService.EXPECT().
		GetStats(gomock.Any(), &pokedex.GetStatsInput{Pokemon: pokemon}).
		Return(&pokedex.GetStatsOutput{Stats: stats}, nil)

	out, err := s.run("show", "Bulbasaur", "--out", s.dir)
	s.Require().NoError(err)

	s.Contains(out, "bulbasaur\n")
	s.Contains(out, "Base experience: 64\n")
	s.Contains(out, "front  sprite: url-f (image/png, 16 bytes)\n")
	s.Contains(out, "back   sprite: no image available\n")
	s.Contains(out, "hp       45 #######\n")
	s.Contains(out, "attack   49 #######\n")
	s.Contains(out, "total    94\n")

	saved, err := os.ReadFile(filepath.Join(s.dir, "bulbasaur_front.png"))
	s.Require().NoError(err)
	s.Equal(pngHeader, saved)
	s.NoFileExists(filepath.Join(s.dir, "bulbasaur_back.png"))
}

func (s *CLITestSuite) TestShowNoSprites() {
	pokemon := s.loadFixture(builders.NewRecordBuilder().WithNullBaseExperience().Build())
	stats, err := pokemon.StatsView()
	s.Require().NoError(err)

	s.mockService.EXPECT().
		LoadPokemon(gomock.Any(), gomock.Any()).
		Return(&pokedex.LoadPokemonOutput{Pokemon: pokemon}, nil)
	s.mockService.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(&pokedex.GetStatsOutput{Stats: stats}, nil)

	out, err := s.run("show", "bulbasaur", "--no-sprites")
	s.Require().NoError(err)
	s.Contains(out, "Base experience: unknown\n")
	s.NotContains(out, "sprite")
}

func (s *CLITestSuite) TestShowNotFound() {
	s.mockService.EXPECT().
		LoadPokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("unexpected status 404"))

	_, err := s.run("show", "missingno")
	s.True(errors.IsNotFound(err))
	s.True(s.closed)
}

func (s *CLITestSuite) TestShowRequiresName() {
	_, err := s.run("show")
	s.Error(err)
}

func (s *CLITestSuite) TestCacheClear() {
	s.mockService.EXPECT().
		InvalidateNames(gomock.Any(), gomock.Any()).
		Return(&pokedex.InvalidateNamesOutput{Existed: true}, nil)

	out, err := s.run("cache", "clear")
	s.Require().NoError(err)
	s.Equal("Cleared cached catalog \"global\"\n", out)
}

func (s *CLITestSuite) TestConfigShowSkipsService() {
	factoryCalled := false
	cmd, release := newRootCmd(func(_ *config.Config) (pokedex.Service, func(), error) {
		factoryCalled = true
		return nil, nil, errors.Internal("should not be built")
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "show", "--backend", "redis", "--redis-endpoint", "localhost:6379"})

	s.Require().NoError(cmd.Execute())
	release()
	s.False(factoryCalled)
	s.Contains(out.String(), "backend: redis")
	s.Contains(out.String(), "endpoint: localhost:6379")
	s.Contains(out.String(), "timeout: 30s")
}

func (s *CLITestSuite) TestInvalidConfig() {
	s.T().Setenv("POKEDEX_CATALOG_BACKEND", "disk")

	_, err := s.run("list")
	s.Require().Error(err)
	s.Contains(err.Error(), "catalog.backend")
}

func (s *CLITestSuite) TestBar() {
	s.Equal("", bar(0))
	s.Equal("#", bar(1))
	s.Len(bar(255), barWidth)
	s.Len(bar(300), barWidth)
}

func (s *CLITestSuite) TestSpriteFileName() {
	name, err := spriteFileName("mr-mime", entities.SpriteFront, "image/png")
	s.Require().NoError(err)
	s.Equal("mr-mime_front.png", name)

	for _, unsafe := range []string{"", ".", "..", "../../etc/passwd", "a/b", `a\b`} {
		_, err := spriteFileName(unsafe, entities.SpriteBack, "image/png")
		s.True(errors.IsInvalidArgument(err), unsafe)
	}
}

func (s *CLITestSuite) TestShowRejectsUnsafeNameWhenSaving() {
	pokemon := s.loadFixture(builders.NewRecordBuilder().WithName("../escape").Build())

	s.mockService.EXPECT().
		LoadPokemon(gomock.Any(), gomock.Any()).
		Return(&pokedex.LoadPokemonOutput{Pokemon: pokemon}, nil)
	s.mockService.EXPECT().
		FetchSprite(gomock.Any(), gomock.Any()).
		Return(&pokedex.FetchSpriteOutput{
			Available:   true,
			URL:         testutils.TestFrontSpriteURL,
			Image:       bytes.NewReader(pngHeader),
			ContentType: "image/png",
			Size:        len(pngHeader),
		}, nil)

	outDir := filepath.Join(s.dir, "sprites")
	_, err := s.run("show", "escape", "--out", outDir)
	s.True(errors.IsInvalidArgument(err))
	s.NoFileExists(filepath.Join(s.dir, "escape_front.png"))
	s.NoDirExists(outDir)
}

func (s *CLITestSuite) TestImageExt() {
	s.Equal(".png", imageExt("image/png"))
	s.Equal(".bin", imageExt("application/octet-stream"))
}
