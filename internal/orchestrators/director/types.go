package director

import (
	"github.com/tavernkeep/dungeonmaster/internal/engine"
	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
)

// StartInput defines the request for starting a campaign
type StartInput struct {
	// StoryPath is the campaign content document to load
	StoryPath string
	// Members seeds the party. Empty is valid: character creation is an
	// external step and campaigns may begin with nobody enrolled yet.
	Members []*game.Character
}

// StartOutput defines the response for starting a campaign
type StartOutput struct {
	SceneCount int
	FirstScene *game.Scene
	// Choices lists the choice keys the first PlayNext will accept
	Choices []string
}

// PlayNextInput defines the request for advancing by one scene
type PlayNextInput struct {
	// Choice selects a branch from the current scene's choices map.
	// Empty means advance sequentially.
	Choice string
}

// PlayNextOutput defines the response for advancing by one scene
type PlayNextOutput struct {
	// Scene is the scene that was just played
	Scene *game.Scene
	// Combat holds the encounter outcome, nil when the scene had no monsters
	// or no engine is configured
	Combat *engine.Outcome
	// SceneIndex is the cursor position after advancing
	SceneIndex int
	// NextChoices lists the choice keys the next PlayNext will accept:
	// the choices of the scene now under the cursor, nil when the
	// campaign completed
	NextChoices []string
	// Completed reports whether this step finished the campaign
	Completed bool
}

// SaveInput defines the request for saving the session
type SaveInput struct {
	Slot string
}

// SaveOutput defines the response for saving the session
type SaveOutput struct {
	// Empty for now, can be extended later
}

// LoadInput defines the request for restoring a saved session
type LoadInput struct {
	Slot string
}

// LoadOutput defines the response for restoring a saved session
type LoadOutput struct {
	SceneIndex int
	SceneCount int
	PartySize  int
	// Choices lists the choice keys the next PlayNext will accept, nil
	// when the restored session is already complete
	Choices   []string
	Completed bool
}
