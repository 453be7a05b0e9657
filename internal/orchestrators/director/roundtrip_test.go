package director_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/dungeonmaster/internal/dice"
	"github.com/tavernkeep/dungeonmaster/internal/engine"
	"github.com/tavernkeep/dungeonmaster/internal/orchestrators/director"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/clock"
	"github.com/tavernkeep/dungeonmaster/internal/repositories/snapshot"
	"github.com/tavernkeep/dungeonmaster/internal/testutils/builders"
)

// RoundTripTestSuite drives two directors against the real file
// repository and the real story loader: whatever one saves, the other
// must resume exactly.
type RoundTripTestSuite struct {
	suite.Suite
	ctx       context.Context
	storyPath string
	savePath  string
	repo      snapshot.Repository
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripTestSuite))
}

func (s *RoundTripTestSuite) SetupTest() {
	dir := s.T().TempDir()
	s.storyPath = filepath.Join(dir, "goblin_caves.yaml")
	s.savePath = filepath.Join(dir, "save.yaml")
	s.Require().NoError(os.WriteFile(s.storyPath, []byte(goblinCaves), 0o600))

	repo, err := snapshot.NewFileRepository(&snapshot.FileConfig{Clock: clock.New()})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RoundTripTestSuite) newDirector(roller *dice.Roller) director.Service {
	svc, err := director.NewOrchestrator(&director.Config{
		Roller:    roller,
		Snapshots: s.repo,
		Engine:    engine.NewStub(),
	})
	s.Require().NoError(err)
	return svc
}

func (s *RoundTripTestSuite) TestSaveLoadRoundTrip() {
	rollerA := dice.NewRoller(1234)
	a := s.newDirector(rollerA)

	_, err := a.Start(s.ctx, &director.StartInput{
		StoryPath: s.storyPath,
		Members:   builders.NewTestParty("Lyra", "Brand").Members,
	})
	s.Require().NoError(err)

	// Play into the middle of the campaign and burn some dice so the
	// saved RNG state is mid-stream.
	_, err = a.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	_, err = rollerA.Roll("3d6")
	s.Require().NoError(err)
	_, err = rollerA.Roll("1d20+2")
	s.Require().NoError(err)

	_, err = a.Save(s.ctx, &director.SaveInput{Slot: s.savePath})
	s.Require().NoError(err)

	// A second director with a differently seeded roller picks up the
	// save and must be observably equivalent.
	rollerB := dice.NewRoller(9999)
	b := s.newDirector(rollerB)

	out, err := b.Load(s.ctx, &director.LoadInput{Slot: s.savePath})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.SceneIndex)
	s.Assert().Equal(3, out.SceneCount)
	s.Assert().Equal(2, out.PartySize)
	s.Assert().False(out.Completed)

	// The restored roller continues the original's stream.
	for i := 0; i < 10; i++ {
		want, err := rollerA.Roll("2d8+1")
		s.Require().NoError(err)
		got, err := rollerB.Roll("2d8+1")
		s.Require().NoError(err)
		s.Assert().Equal(want.Rolls, got.Rolls)
	}

	// Both directors see the same remaining story.
	playedA, err := a.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	playedB, err := b.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	s.Assert().Equal(playedA.Scene, playedB.Scene)
	s.Assert().Equal(playedA.SceneIndex, playedB.SceneIndex)

	// And both finish together.
	doneA, err := a.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	doneB, err := b.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	s.Assert().True(doneA.Completed)
	s.Assert().True(doneB.Completed)
}

func (s *RoundTripTestSuite) TestLoadReplacesInProgressSession() {
	rollerA := dice.NewRoller(5)
	a := s.newDirector(rollerA)

	_, err := a.Start(s.ctx, &director.StartInput{
		StoryPath: s.storyPath,
		Members:   builders.NewTestParty("Lyra").Members,
	})
	s.Require().NoError(err)
	_, err = a.Save(s.ctx, &director.SaveInput{Slot: s.savePath})
	s.Require().NoError(err)

	// Advance past the save point, then load: the session must rewind
	// to scene zero, not merge.
	_, err = a.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	_, err = a.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)

	out, err := a.Load(s.ctx, &director.LoadInput{Slot: s.savePath})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.SceneIndex)
	s.Assert().Equal(1, out.PartySize)

	played, err := a.PlayNext(s.ctx, &director.PlayNextInput{})
	s.Require().NoError(err)
	s.Assert().Equal("intro", played.Scene.ID)
}
