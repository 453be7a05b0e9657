package engine

import (
	"context"
	"log/slog"

	"github.com/tavernkeep/dungeonmaster/internal/errors"
)

// Stub is the placeholder rule engine. It logs what it was asked to do
// and decides nothing: combat outcomes come back unresolved and growth
// leaves the party untouched. It exists so the director's wiring can be
// exercised before a real ruleset is written.
type Stub struct{}

// NewStub creates the placeholder rule engine
func NewStub() *Stub {
	return &Stub{}
}

// ResolveCombat acknowledges the encounter without resolving it
func (s *Stub) ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slog.Info("Combat encounter (stub, no resolution)",
		"monsters", input.Monsters,
		"party_size", input.Party.Size(),
	)

	return &ResolveCombatOutput{
		Outcome: &Outcome{
			Monsters: input.Monsters,
			Resolved: false,
		},
	}, nil
}

// ApplyGrowth acknowledges the growth step without applying anything
func (s *Stub) ApplyGrowth(ctx context.Context, input *ApplyGrowthInput) (*ApplyGrowthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slog.Info("Growth step (stub, no XP or loot granted)",
		"scene_id", input.Scene.ID,
		"party_size", input.Party.Size(),
	)

	return &ApplyGrowthOutput{}, nil
}
