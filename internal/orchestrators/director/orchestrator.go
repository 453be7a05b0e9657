// Package director implements the campaign director: the state machine
// that advances a story one scene at a time, owns the party and the
// dice roller for a session, and drives save/load.
package director

//go:generate mockgen -destination=mock/mock_service.go -package=directormock github.com/tavernkeep/dungeonmaster/internal/orchestrators/director Service

import (
	"context"
	"log/slog"

	"github.com/tavernkeep/dungeonmaster/internal/content"
	"github.com/tavernkeep/dungeonmaster/internal/dice"
	"github.com/tavernkeep/dungeonmaster/internal/engine"
	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
	"github.com/tavernkeep/dungeonmaster/internal/errors"
	"github.com/tavernkeep/dungeonmaster/internal/repositories/snapshot"
)

// Service defines the interface for director operations
type Service interface {
	// Start loads a campaign and begins a fresh session
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// PlayNext advances the campaign by exactly one scene
	PlayNext(ctx context.Context, input *PlayNextInput) (*PlayNextOutput, error)

	// Save persists the current session to a slot
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load replaces the current session with a saved one
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// Screens receives the campaign's terminal moments. Win fires exactly
// once when the last scene has been played. Lose is part of the
// contract but nothing triggers it yet: no defeat condition exists in
// the current rules scope.
type Screens interface {
	Win(ctx context.Context)
	Lose(ctx context.Context)
}

// Config holds the dependencies for the director orchestrator
type Config struct {
	// Roller is the session's private dice roller
	Roller *dice.Roller
	// Snapshots persists and restores session state
	Snapshots snapshot.Repository
	// Engine resolves combat and growth; optional until a ruleset exists
	Engine engine.Engine
	// Screens presents win/lose moments; defaults to log output
	Screens Screens
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Snapshots == nil {
		vb.RequiredField("Snapshots")
	}

	return vb.Build()
}

type sessionState int

const (
	stateUninitialized sessionState = iota
	stateActive
	stateComplete
)

// orchestrator is single-threaded by contract: exactly one director
// acts on one party/story pair at a time, so no locking is needed.
type orchestrator struct {
	roller    *dice.Roller
	snapshots snapshot.Repository
	engine    engine.Engine
	screens   Screens

	state  sessionState
	party  *game.Party
	story  *game.Story
	cursor int
}

// NewOrchestrator creates a new director orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	screens := cfg.Screens
	if screens == nil {
		screens = &slogScreens{}
	}

	return &orchestrator{
		roller:    cfg.Roller,
		snapshots: cfg.Snapshots,
		engine:    cfg.Engine,
		screens:   screens,
		state:     stateUninitialized,
	}, nil
}

// Start loads a campaign and begins a fresh session. Calling Start on
// an active or completed director abandons that session and starts over.
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.StoryPath == "" {
		return nil, errors.InvalidArgument("story path is required")
	}

	story, err := content.LoadStory(input.StoryPath)
	if err != nil {
		return nil, err
	}

	o.story = story
	o.party = game.NewParty(input.Members...)
	o.cursor = 0
	o.state = stateActive

	slog.Info("Campaign started",
		"story_path", input.StoryPath,
		"scene_count", story.Len(),
		"party_size", o.party.Size(),
	)

	return &StartOutput{
		SceneCount: story.Len(),
		FirstScene: story.Scenes[0],
		Choices:    story.Scenes[0].ChoiceKeys(),
	}, nil
}

// PlayNext advances the campaign by exactly one scene: the scene at the
// cursor is entered (combat and growth run when it has monsters and an
// engine is configured), then the cursor moves. A non-empty Choice
// follows the scene's choices map; an empty one falls back to the next
// scene in content order. Reaching the end completes the campaign and
// fires the win screen exactly once.
func (o *orchestrator) PlayNext(ctx context.Context, input *PlayNextInput) (*PlayNextOutput, error) {
	if input == nil {
		input = &PlayNextInput{}
	}
	if err := o.requireActive(); err != nil {
		return nil, err
	}

	scene := o.story.Scenes[o.cursor]

	// Resolve the branch up front so a bad choice key fails before any
	// combat or growth side effects.
	next, err := o.nextCursor(scene, input.Choice)
	if err != nil {
		return nil, err
	}

	var outcome *engine.Outcome
	if scene.HasEncounter() && o.engine != nil {
		combat, err := o.engine.ResolveCombat(ctx, &engine.ResolveCombatInput{
			Party:    o.party,
			Monsters: scene.Monsters,
		})
		if err != nil {
			return nil, err
		}
		outcome = combat.Outcome

		if _, err := o.engine.ApplyGrowth(ctx, &engine.ApplyGrowthInput{
			Scene: scene,
			Party: o.party,
		}); err != nil {
			return nil, err
		}
	}

	o.cursor = next

	completed := o.cursor == o.story.Len()
	if completed {
		o.state = stateComplete
		slog.Info("Campaign complete", "scenes_played", o.story.Len())
		o.screens.Win(ctx)
	}

	output := &PlayNextOutput{
		Scene:      scene,
		Combat:     outcome,
		SceneIndex: o.cursor,
		Completed:  completed,
	}
	if !completed {
		output.NextChoices = o.story.Scenes[o.cursor].ChoiceKeys()
	}
	return output, nil
}

// nextCursor resolves where the cursor moves after playing a scene
func (o *orchestrator) nextCursor(scene *game.Scene, choice string) (int, error) {
	if choice == "" {
		return o.cursor + 1, nil
	}

	dest, ok := scene.Choices[choice]
	if !ok {
		return 0, errors.InvalidArgumentf("scene %q has no choice %q", scene.ID, choice)
	}
	idx := o.story.SceneIndex(dest)
	if idx < 0 {
		// The loader validates branch edges, so this means the story
		// was mutated out from under us.
		return 0, errors.Internalf("choice %q points at unknown scene %q", choice, dest)
	}
	return idx, nil
}

// Save builds a snapshot of the session and hands it to the repository
func (o *orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.state == stateUninitialized {
		return nil, errors.NotStarted("nothing to save: campaign has not been started")
	}

	rngState, err := o.roller.State()
	if err != nil {
		return nil, err
	}

	snap := &game.Snapshot{
		Party:           o.party,
		Story:           o.story,
		CurrentSceneIdx: o.cursor,
		RNGState:        rngState,
	}

	if _, err := o.snapshots.Save(ctx, snapshot.SaveInput{Slot: input.Slot, Snapshot: snap}); err != nil {
		return nil, err
	}

	slog.Info("Session saved", "slot", input.Slot, "scene_index", o.cursor)

	return &SaveOutput{}, nil
}

// Load replaces the session wholesale with a saved snapshot: party,
// story, cursor, and roller state are all overwritten, never merged.
func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.snapshots.Load(ctx, snapshot.LoadInput{Slot: input.Slot})
	if err != nil {
		return nil, err
	}
	snap := out.Snapshot

	if err := o.roller.SetState(snap.RNGState); err != nil {
		return nil, err
	}

	o.party = snap.Party
	o.story = snap.Story
	o.cursor = snap.CurrentSceneIdx
	if o.cursor == o.story.Len() {
		o.state = stateComplete
	} else {
		o.state = stateActive
	}

	slog.Info("Session restored",
		"slot", input.Slot,
		"scene_index", o.cursor,
		"party_size", o.party.Size(),
	)

	output := &LoadOutput{
		SceneIndex: o.cursor,
		SceneCount: o.story.Len(),
		PartySize:  o.party.Size(),
		Completed:  o.state == stateComplete,
	}
	if o.state == stateActive {
		output.Choices = o.story.Scenes[o.cursor].ChoiceKeys()
	}
	return output, nil
}

func (o *orchestrator) requireActive() error {
	switch o.state {
	case stateUninitialized:
		return errors.NotStarted("campaign has not been started: call Start first")
	case stateComplete:
		return errors.NotStarted("campaign is complete: call Start to begin a new one")
	default:
		return nil
	}
}

// slogScreens is the default Screens implementation
type slogScreens struct{}

func (s *slogScreens) Win(ctx context.Context) {
	slog.Info("Congratulations, you won!")
}

func (s *slogScreens) Lose(ctx context.Context) {
	slog.Info("Game over, better luck next time.")
}
