package data

import (
	"fmt"
	"os"

	"github.com/oldentide/server/internal/entity"
	"gopkg.in/yaml.v3"
)

// NPCTemplate defines one NPC to seed into the world.
type NPCTemplate struct {
	Firstname  string  `yaml:"firstname"`
	Lastname   string  `yaml:"lastname"`
	Guild      string  `yaml:"guild"`
	Race       string  `yaml:"race"`
	Gender     string  `yaml:"gender"`
	Face       string  `yaml:"face"`
	Skin       string  `yaml:"skin"`
	Profession string  `yaml:"profession"`
	Zone       string  `yaml:"zone"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Z          float64 `yaml:"z"`
	Pitch      float64 `yaml:"pitch"`
	Yaw        float64 `yaml:"yaw"`
}

// LoadNPCs reads the NPC population file.
func LoadNPCs(path string) ([]NPCTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read npcs %s: %w", path, err)
	}
	var file struct {
		NPCs []NPCTemplate `yaml:"npcs"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse npcs %s: %w", path, err)
	}
	return file.NPCs, nil
}

// Entity converts the template into the entity the gateway persists.
func (t NPCTemplate) Entity() entity.NPC {
	return entity.NPC{
		Firstname:  t.Firstname,
		Lastname:   t.Lastname,
		Guild:      t.Guild,
		Race:       t.Race,
		Gender:     t.Gender,
		Face:       t.Face,
		Skin:       t.Skin,
		Profession: t.Profession,
		Location: entity.Location{
			Zone:  t.Zone,
			X:     t.X,
			Y:     t.Y,
			Z:     t.Z,
			Pitch: t.Pitch,
			Yaw:   t.Yaw,
		},
	}
}
