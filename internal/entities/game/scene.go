package game

import "sort"

// Scene is one narrative beat in a story: text to present, an optional
// monster encounter, and an optional set of player choices mapping a
// choice key to the id of the destination scene. A scene with no
// choices is a terminal or purely sequential beat. Scenes are immutable
// content once loaded; the director never mutates them.
type Scene struct {
	ID       string            `json:"id" yaml:"id"`
	Text     string            `json:"text" yaml:"text"`
	Monsters []string          `json:"monsters" yaml:"monsters"`
	Choices  map[string]string `json:"choices" yaml:"choices"`
}

// HasEncounter returns true when entering the scene should trigger combat
func (s *Scene) HasEncounter() bool {
	return len(s.Monsters) > 0
}

// ChoiceKeys returns the scene's choice keys in sorted order, so
// callers presenting them get a stable listing. Nil when the scene has
// no choices.
func (s *Scene) ChoiceKeys() []string {
	if len(s.Choices) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.Choices))
	for key := range s.Choices {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Story is the full ordered collection of scenes loaded from campaign
// content. Slice order defines the default sequential path; the choices
// maps define the branching edges on top of it.
type Story struct {
	Scenes []*Scene `json:"scenes" yaml:"scenes"`
}

// Len returns the number of scenes in the story
func (st *Story) Len() int {
	return len(st.Scenes)
}

// SceneIndex returns the position of the scene with the given id, or -1
// when no such scene exists.
func (st *Story) SceneIndex(id string) int {
	for i, sc := range st.Scenes {
		if sc.ID == id {
			return i
		}
	}
	return -1
}
