// Package game implements the dungeonmaster domain entities.
package game

// AbilityScores holds the six ability scores for a character
// NOTE: This is a data-only struct. Rule math beyond the standard
// modifier formula belongs to the rule engine, not here.
type AbilityScores struct {
	Strength     int `json:"str" yaml:"str"`
	Dexterity    int `json:"dex" yaml:"dex"`
	Constitution int `json:"con" yaml:"con"`
	Intelligence int `json:"int" yaml:"int"`
	Wisdom       int `json:"wis" yaml:"wis"`
	Charisma     int `json:"cha" yaml:"cha"`
}

// DefaultAbilityScores returns the standard starting array of 10s
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}
}

// AbilityModifier returns the standard d20 modifier for a raw score,
// floor((score-10)/2). Floor division, so a score of 9 yields -1.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// Inventory holds a character's carried items and gold
type Inventory struct {
	Items []string `json:"items" yaml:"items"`
	Gold  int      `json:"gold" yaml:"gold"`
}

// Character represents a playable entity in a campaign.
// Hit points are not clamped here; whether a character can drop below
// zero is a rule-engine concern.
type Character struct {
	ID        string        `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string        `json:"name" yaml:"name"`
	Abilities AbilityScores `json:"abilities" yaml:"abilities"`
	HP        int           `json:"hp" yaml:"hp"`
	XP        int           `json:"xp" yaml:"xp"`
	Inventory Inventory     `json:"inventory" yaml:"inventory"`
}

// Alive returns true while the character has hit points remaining
func (c *Character) Alive() bool {
	return c.HP > 0
}
