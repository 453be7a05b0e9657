package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
	"github.com/tavernkeep/dungeonmaster/internal/errors"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/clock"
	"github.com/tavernkeep/dungeonmaster/internal/repositories/snapshot"
	"github.com/tavernkeep/dungeonmaster/internal/testutils/builders"
)

func testSnapshot() *game.Snapshot {
	return &game.Snapshot{
		Party: builders.NewTestParty("Lyra", "Brand"),
		Story: &game.Story{Scenes: []*game.Scene{
			{ID: "intro", Text: "A dank cave.", Monsters: []string{}, Choices: map[string]string{"deeper": "room1"}},
			{ID: "room1", Text: "Goblins!", Monsters: []string{"goblin", "goblin"}, Choices: map[string]string{}},
		}},
		CurrentSceneIdx: 1,
		RNGState:        "cGNnOkFBQUFBQUFBQUFBQUFBQUE=",
	}
}

type FileRepositoryTestSuite struct {
	suite.Suite
	repo snapshot.Repository
	ctx  context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	repo, err := snapshot.NewFileRepository(&snapshot.FileConfig{
		Clock: &clock.Fixed{Time: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) TestConfigValidation() {
	_, err := snapshot.NewFileRepository(&snapshot.FileConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestSaveLoadRoundTrip() {
	path := filepath.Join(s.T().TempDir(), "save.yaml")
	snap := testSnapshot()

	_, err := s.repo.Save(s.ctx, snapshot.SaveInput{Slot: path, Snapshot: snap})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, snapshot.LoadInput{Slot: path})
	s.Require().NoError(err)

	restored := out.Snapshot
	s.Assert().Equal(snap.CurrentSceneIdx, restored.CurrentSceneIdx)
	s.Assert().Equal(snap.RNGState, restored.RNGState)
	s.Assert().Equal(snap.Party, restored.Party)
	s.Assert().Equal(snap.Story, restored.Story)
}

func (s *FileRepositoryTestSuite) TestSaveOverwrites() {
	path := filepath.Join(s.T().TempDir(), "save.yaml")

	first := testSnapshot()
	_, err := s.repo.Save(s.ctx, snapshot.SaveInput{Slot: path, Snapshot: first})
	s.Require().NoError(err)

	second := testSnapshot()
	second.CurrentSceneIdx = 2
	_, err = s.repo.Save(s.ctx, snapshot.SaveInput{Slot: path, Snapshot: second})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, snapshot.LoadInput{Slot: path})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.Snapshot.CurrentSceneIdx)
}

func (s *FileRepositoryTestSuite) TestSaveRecordsTimestamp() {
	path := filepath.Join(s.T().TempDir(), "save.yaml")

	_, err := s.repo.Save(s.ctx, snapshot.SaveInput{Slot: path, Snapshot: testSnapshot()})
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Assert().Contains(string(data), "saved_at:")
	s.Assert().Contains(string(data), "2024-06-01T12:00:00Z")
}

func (s *FileRepositoryTestSuite) TestSaveUnwritablePath() {
	path := filepath.Join(s.T().TempDir(), "no", "such", "dir", "save.yaml")

	_, err := s.repo.Save(s.ctx, snapshot.SaveInput{Slot: path, Snapshot: testSnapshot()})
	s.Require().Error(err)
	s.Assert().True(errors.IsIO(err))
}

func (s *FileRepositoryTestSuite) TestSaveInvalidInput() {
	_, err := s.repo.Save(s.ctx, snapshot.SaveInput{Slot: "", Snapshot: testSnapshot()})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, snapshot.SaveInput{Slot: "save.yaml", Snapshot: nil})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestLoadMissingFile() {
	_, err := s.repo.Load(s.ctx, snapshot.LoadInput{Slot: filepath.Join(s.T().TempDir(), "nope.yaml")})
	s.Require().Error(err)
	s.Assert().True(errors.IsIO(err))
}

func (s *FileRepositoryTestSuite) TestLoadMalformedDocuments() {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "not yaml",
			doc:  "{party: [",
		},
		{
			name: "missing current_scene_idx",
			doc: `party:
  members: []
story_state:
  scenes:
    - id: intro
      text: hello
rng_state: AAAA
`,
		},
		{
			name: "missing rng_state",
			doc: `party:
  members: []
story_state:
  scenes:
    - id: intro
      text: hello
current_scene_idx: 0
`,
		},
		{
			name: "missing party",
			doc: `story_state:
  scenes:
    - id: intro
      text: hello
current_scene_idx: 0
rng_state: AAAA
`,
		},
		{
			name: "cursor past scene count",
			doc: `party:
  members: []
story_state:
  scenes:
    - id: intro
      text: hello
current_scene_idx: 5
rng_state: AAAA
`,
		},
		{
			name: "negative cursor",
			doc: `party:
  members: []
story_state:
  scenes:
    - id: intro
      text: hello
current_scene_idx: -1
rng_state: AAAA
`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := filepath.Join(s.T().TempDir(), "save.yaml")
			s.Require().NoError(os.WriteFile(path, []byte(tc.doc), 0o600))

			_, err := s.repo.Load(s.ctx, snapshot.LoadInput{Slot: path})
			s.Require().Error(err)
			s.Assert().True(errors.IsSnapshotFormat(err), "got %v", err)
		})
	}
}
