// Package engine defines the rule-engine contract the director calls
// into at scene entry: combat resolution and post-encounter growth.
// Real rules are future work; the provided implementation is a stub.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/tavernkeep/dungeonmaster/internal/engine Engine

import (
	"context"

	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
)

// Outcome records what happened in a combat encounter. Until a real
// ruleset lands, Resolved stays false and nothing is decided.
type Outcome struct {
	Monsters []string
	Resolved bool
}

// Engine resolves combat and applies growth for a campaign. The
// director treats it as an optional injected strategy; implementations
// must not assume any particular ruleset.
type Engine interface {
	// ResolveCombat runs an encounter between the party and the scene's monsters
	ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error)

	// ApplyGrowth applies XP, levels, and loot after an encounter
	ApplyGrowth(ctx context.Context, input *ApplyGrowthInput) (*ApplyGrowthOutput, error)
}

// ResolveCombatInput defines the request for resolving an encounter
type ResolveCombatInput struct {
	Party    *game.Party
	Monsters []string
}

// ResolveCombatOutput defines the response for resolving an encounter
type ResolveCombatOutput struct {
	Outcome *Outcome
}

// ApplyGrowthInput defines the request for applying growth
type ApplyGrowthInput struct {
	Scene *game.Scene
	Party *game.Party
}

// ApplyGrowthOutput defines the response for applying growth
type ApplyGrowthOutput struct {
	// Empty for now, can be extended when real rules land
}
