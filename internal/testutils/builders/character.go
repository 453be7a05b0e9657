// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/idgen"
)

var characterIDs = idgen.NewSequential("char")

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *game.Character
}

// NewCharacterBuilder creates a new builder with sensible defaults: a
// level-one nobody with the standard array and a few hit points.
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &game.Character{
			ID:        characterIDs.Generate(),
			Name:      "Test Adventurer",
			Abilities: game.DefaultAbilityScores(),
			HP:        10,
			XP:        0,
			Inventory: game.Inventory{Items: []string{}, Gold: 0},
		},
	}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithHP sets the character's hit points
func (b *CharacterBuilder) WithHP(hp int) *CharacterBuilder {
	b.character.HP = hp
	return b
}

// WithXP sets the character's experience points
func (b *CharacterBuilder) WithXP(xp int) *CharacterBuilder {
	b.character.XP = xp
	return b
}

// WithAbilities sets the full ability score block
func (b *CharacterBuilder) WithAbilities(scores game.AbilityScores) *CharacterBuilder {
	b.character.Abilities = scores
	return b
}

// WithItems sets the inventory item list
func (b *CharacterBuilder) WithItems(items ...string) *CharacterBuilder {
	b.character.Inventory.Items = items
	return b
}

// WithGold sets the inventory gold count
func (b *CharacterBuilder) WithGold(gold int) *CharacterBuilder {
	b.character.Inventory.Gold = gold
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *game.Character {
	return b.character
}

// NewTestParty builds a party of named characters with default stats
func NewTestParty(names ...string) *game.Party {
	party := game.NewParty()
	for _, name := range names {
		party.Add(NewCharacterBuilder().WithName(name).Build())
	}
	return party
}
