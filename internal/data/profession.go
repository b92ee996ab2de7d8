// Package data loads the static world definitions shipped as YAML files:
// profession starting templates and the NPC population.
package data

import (
	"fmt"
	"os"

	"github.com/oldentide/server/internal/entity"
	"gopkg.in/yaml.v3"
)

// ProfessionTemplate holds the starting stats, skills, and gear a new
// character of a profession is created with.
type ProfessionTemplate struct {
	Name  string `yaml:"name"`
	Stats struct {
		Level        int `yaml:"level"`
		HP           int `yaml:"hp"`
		MaxHP        int `yaml:"maxhp"`
		BP           int `yaml:"bp"`
		MaxBP        int `yaml:"maxbp"`
		MP           int `yaml:"mp"`
		MaxMP        int `yaml:"maxmp"`
		EP           int `yaml:"ep"`
		MaxEP        int `yaml:"maxep"`
		Strength     int `yaml:"strength"`
		Constitution int `yaml:"constitution"`
		Intelligence int `yaml:"intelligence"`
		Dexterity    int `yaml:"dexterity"`
	} `yaml:"stats"`
	Skills    map[string]int `yaml:"skills"`
	Equipment struct {
		Chest     string `yaml:"chest"`
		Legs      string `yaml:"legs"`
		Feet      string `yaml:"feet"`
		RightHand string `yaml:"righthand"`
		LeftHand  string `yaml:"lefthand"`
	} `yaml:"equipment"`
	Spawn struct {
		Zone  string  `yaml:"zone"`
		X     float64 `yaml:"x"`
		Y     float64 `yaml:"y"`
		Z     float64 `yaml:"z"`
		Pitch float64 `yaml:"pitch"`
		Yaw   float64 `yaml:"yaw"`
	} `yaml:"spawn"`
}

// LoadProfessions reads the profession template file and indexes the
// templates by name.
func LoadProfessions(path string) (map[string]*ProfessionTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read professions %s: %w", path, err)
	}
	var file struct {
		Professions []*ProfessionTemplate `yaml:"professions"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse professions %s: %w", path, err)
	}

	templates := make(map[string]*ProfessionTemplate, len(file.Professions))
	for _, t := range file.Professions {
		if t.Name == "" {
			return nil, fmt.Errorf("parse professions %s: unnamed profession entry", path)
		}
		templates[t.Name] = t
	}
	return templates, nil
}

// NewCharacter builds a character from the template with the given identity
// fields, starting at the template's spawn point.
func (t *ProfessionTemplate) NewCharacter(firstname, lastname, guild, race, gender, face, skin string) entity.Character {
	return entity.Character{
		Firstname:  firstname,
		Lastname:   lastname,
		Guild:      guild,
		Race:       race,
		Gender:     gender,
		Face:       face,
		Skin:       skin,
		Profession: t.Name,
		Stats: entity.Stats{
			Level: t.Stats.Level,
			HP:    t.Stats.HP, MaxHP: t.Stats.MaxHP,
			BP: t.Stats.BP, MaxBP: t.Stats.MaxBP,
			MP: t.Stats.MP, MaxMP: t.Stats.MaxMP,
			EP: t.Stats.EP, MaxEP: t.Stats.MaxEP,
			Strength:     t.Stats.Strength,
			Constitution: t.Stats.Constitution,
			Intelligence: t.Stats.Intelligence,
			Dexterity:    t.Stats.Dexterity,
		},
		Skills: skillsFromMap(t.Skills),
		Equipment: entity.Equipment{
			Chest:     t.Equipment.Chest,
			Legs:      t.Equipment.Legs,
			Feet:      t.Equipment.Feet,
			RightHand: t.Equipment.RightHand,
			LeftHand:  t.Equipment.LeftHand,
		},
		Location: entity.Location{
			Zone:  t.Spawn.Zone,
			X:     t.Spawn.X,
			Y:     t.Spawn.Y,
			Z:     t.Spawn.Z,
			Pitch: t.Spawn.Pitch,
			Yaw:   t.Spawn.Yaw,
		},
	}
}

// skillsFromMap translates the sparse YAML skill map onto the full sheet.
// Absent skills stay 0.
func skillsFromMap(m map[string]int) entity.Skills {
	var s entity.Skills
	for name, v := range m {
		switch name {
		case "axe":
			s.Axe = v
		case "dagger":
			s.Dagger = v
		case "unarmed":
			s.Unarmed = v
		case "hammer":
			s.Hammer = v
		case "polearm":
			s.Polearm = v
		case "spear":
			s.Spear = v
		case "staff":
			s.Staff = v
		case "sword":
			s.Sword = v
		case "archery":
			s.Archery = v
		case "crossbow":
			s.Crossbow = v
		case "sling":
			s.Sling = v
		case "thrown":
			s.Thrown = v
		case "armor":
			s.Armor = v
		case "dualweapon":
			s.DualWeapon = v
		case "shield":
			s.Shield = v
		case "bardic":
			s.Bardic = v
		case "conjuring":
			s.Conjuring = v
		case "druidic":
			s.Druidic = v
		case "illusion":
			s.Illusion = v
		case "necromancy":
			s.Necromancy = v
		case "sorcery":
			s.Sorcery = v
		case "shamanic":
			s.Shamanic = v
		case "summoning":
			s.Summoning = v
		case "spellcraft":
			s.Spellcraft = v
		case "focus":
			s.Focus = v
		case "armorsmithing":
			s.Armorsmithing = v
		case "tailoring":
			s.Tailoring = v
		case "fletching":
			s.Fletching = v
		case "weaponsmithing":
			s.Weaponsmithing = v
		case "alchemy":
			s.Alchemy = v
		case "lapidary":
			s.Lapidary = v
		case "calligraphy":
			s.Calligraphy = v
		case "enchanting":
			s.Enchanting = v
		case "herbalism":
			s.Herbalism = v
		case "hunting":
			s.Hunting = v
		case "mining":
			s.Mining = v
		case "bargaining":
			s.Bargaining = v
		case "camping":
			s.Camping = v
		case "firstaid":
			s.FirstAid = v
		case "lore":
			s.Lore = v
		case "picklocks":
			s.Picklocks = v
		case "scouting":
			s.Scouting = v
		case "search":
			s.Search = v
		case "stealth":
			s.Stealth = v
		case "traps":
			s.Traps = v
		case "aeolandis":
			s.Aeolandis = v
		case "hieroform":
			s.Hieroform = v
		case "highgundis":
			s.HighGundis = v
		case "oldpraxic":
			s.OldPraxic = v
		case "praxic":
			s.Praxic = v
		case "runic":
			s.Runic = v
		}
	}
	return s
}
