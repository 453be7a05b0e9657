package game

import (
	"github.com/tavernkeep/dungeonmaster/internal/errors"
)

// Snapshot is a complete, serializable capture of an in-progress
// campaign: party, story content, cursor, and the dice roller's opaque
// generator state. It is the sole unit of durability; there is no
// incremental persistence.
//
// CurrentSceneIdx ranges over [0, len(scenes)]; a value equal to the
// scene count means the campaign is complete.
type Snapshot struct {
	Party           *Party `json:"party" yaml:"party"`
	Story           *Story `json:"story_state" yaml:"story_state"`
	CurrentSceneIdx int    `json:"current_scene_idx" yaml:"current_scene_idx"`
	RNGState        string `json:"rng_state" yaml:"rng_state"`
}

// Validate checks the snapshot's structural invariants. Repositories
// call this after decoding a save document.
func (s *Snapshot) Validate() error {
	if s.Party == nil {
		return errors.SnapshotFormat("snapshot is missing party")
	}
	if s.Story == nil {
		return errors.SnapshotFormat("snapshot is missing story_state")
	}
	if s.RNGState == "" {
		return errors.SnapshotFormat("snapshot is missing rng_state")
	}
	if s.CurrentSceneIdx < 0 || s.CurrentSceneIdx > s.Story.Len() {
		return errors.SnapshotFormatf("current_scene_idx %d is outside [0, %d]", s.CurrentSceneIdx, s.Story.Len())
	}
	return nil
}
