// Package content loads campaign story documents from disk.
//
// A campaign document is YAML with a single top-level `scenes` list:
//
//	scenes:
//	  - id: intro
//	    text: |
//	      You stand before the mouth of a dank cave.
//	    monsters: []
//	    choices:
//	      deeper: room1
//
// Per scene, `id` and `text` are required; `monsters` and `choices`
// default to empty.
package content

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
	"github.com/tavernkeep/dungeonmaster/internal/errors"
)

type storyDoc struct {
	Scenes []sceneDoc `yaml:"scenes"`
}

type sceneDoc struct {
	ID       string            `yaml:"id"`
	Text     string            `yaml:"text"`
	Monsters []string          `yaml:"monsters"`
	Choices  map[string]string `yaml:"choices"`
}

// LoadStory reads and validates a campaign document. Unreadable paths
// return an IO error; anything that fails to decode into an ordered
// list of valid scenes returns a ContentFormat error.
func LoadStory(path string) (*game.Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to read campaign %s", path)
	}
	return ParseStory(data)
}

// ParseStory decodes campaign document bytes into a story
func ParseStory(data []byte) (*game.Story, error) {
	var doc storyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeContentFormat, "campaign document does not parse")
	}

	if len(doc.Scenes) == 0 {
		return nil, errors.ContentFormat("campaign document has no scenes")
	}

	story := &game.Story{Scenes: make([]*game.Scene, 0, len(doc.Scenes))}
	seen := make(map[string]bool, len(doc.Scenes))
	for i, sc := range doc.Scenes {
		if sc.ID == "" {
			return nil, errors.ContentFormatf("scene %d is missing an id", i)
		}
		if sc.Text == "" {
			return nil, errors.ContentFormatf("scene %q is missing text", sc.ID)
		}
		if seen[sc.ID] {
			return nil, errors.ContentFormatf("duplicate scene id %q", sc.ID)
		}
		seen[sc.ID] = true

		monsters := sc.Monsters
		if monsters == nil {
			monsters = []string{}
		}
		choices := sc.Choices
		if choices == nil {
			choices = map[string]string{}
		}

		story.Scenes = append(story.Scenes, &game.Scene{
			ID:       sc.ID,
			Text:     sc.Text,
			Monsters: monsters,
			Choices:  choices,
		})
	}

	// Branch edges must land on scenes that exist.
	for _, sc := range story.Scenes {
		for key, dest := range sc.Choices {
			if !seen[dest] {
				return nil, errors.ContentFormatf("scene %q choice %q points at unknown scene %q", sc.ID, key, dest)
			}
		}
	}

	return story, nil
}
