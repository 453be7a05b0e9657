package snapshot

import (
	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
	"github.com/tavernkeep/dungeonmaster/internal/errors"
)

// saveDocument is the wire shape of a persisted snapshot. Required
// fields are pointers so a document missing current_scene_idx is
// distinguishable from one saved at scene zero.
type saveDocument struct {
	Party           *game.Party `json:"party" yaml:"party"`
	StoryState      *game.Story `json:"story_state" yaml:"story_state"`
	CurrentSceneIdx *int        `json:"current_scene_idx" yaml:"current_scene_idx"`
	RNGState        *string     `json:"rng_state" yaml:"rng_state"`
	SavedAt         string      `json:"saved_at,omitempty" yaml:"saved_at,omitempty"`
}

func newSaveDocument(snap *game.Snapshot, savedAt string) *saveDocument {
	idx := snap.CurrentSceneIdx
	state := snap.RNGState
	return &saveDocument{
		Party:           snap.Party,
		StoryState:      snap.Story,
		CurrentSceneIdx: &idx,
		RNGState:        &state,
		SavedAt:         savedAt,
	}
}

// toSnapshot validates the decoded document and converts it back to a
// snapshot, enforcing the cursor invariant.
func (d *saveDocument) toSnapshot() (*game.Snapshot, error) {
	if d.Party == nil {
		return nil, errors.SnapshotFormat("save document is missing party")
	}
	if d.StoryState == nil {
		return nil, errors.SnapshotFormat("save document is missing story_state")
	}
	if d.CurrentSceneIdx == nil {
		return nil, errors.SnapshotFormat("save document is missing current_scene_idx")
	}
	if d.RNGState == nil || *d.RNGState == "" {
		return nil, errors.SnapshotFormat("save document is missing rng_state")
	}

	snap := &game.Snapshot{
		Party:           d.Party,
		Story:           d.StoryState,
		CurrentSceneIdx: *d.CurrentSceneIdx,
		RNGState:        *d.RNGState,
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}
