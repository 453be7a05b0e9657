package snapshot

import (
	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
)

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Slot     string
	Snapshot *game.Snapshot
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	// Empty for now, can be extended later
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	Slot string
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Snapshot *game.Snapshot
}
