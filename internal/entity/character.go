package entity

import "math"

// Location places an object in the world: coordinates, facing, and the zone
// (map) it belongs to.
type Location struct {
	Zone  string
	X     float64
	Y     float64
	Z     float64
	Pitch float64
	Yaw   float64
}

// Finite reports whether every coordinate is a finite number and the zone is
// set. NaN or Inf coordinates would round-trip through the store but corrupt
// the world on load.
func (l Location) Finite() bool {
	if l.Zone == "" {
		return false
	}
	for _, v := range []float64{l.X, l.Y, l.Z, l.Pitch, l.Yaw} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Stats holds level, the four resource pools with their maximums, and the
// four core attributes.
type Stats struct {
	Level        int
	HP           int
	MaxHP        int
	BP           int
	MaxBP        int
	MP           int
	MaxMP        int
	EP           int
	MaxEP        int
	Strength     int
	Constitution int
	Intelligence int
	Dexterity    int
}

// Bounded reports whether every current resource value is within its maximum.
func (s Stats) Bounded() bool {
	return s.HP <= s.MaxHP && s.BP <= s.MaxBP && s.MP <= s.MaxMP && s.EP <= s.MaxEP
}

// SkillMax is the upper bound of any single proficiency.
const SkillMax = 100

// Skills is the full proficiency sheet. The zero value means untrained in
// everything; each field ranges 0..SkillMax.
type Skills struct {
	// Weapons
	Axe        int
	Dagger     int
	Unarmed    int
	Hammer     int
	Polearm    int
	Spear      int
	Staff      int
	Sword      int
	Archery    int
	Crossbow   int
	Sling      int
	Thrown     int
	Armor      int
	DualWeapon int
	Shield     int
	// Magic schools
	Bardic     int
	Conjuring  int
	Druidic    int
	Illusion   int
	Necromancy int
	Sorcery    int
	Shamanic   int
	Summoning  int
	Spellcraft int
	Focus      int
	// Crafting
	Armorsmithing  int
	Tailoring      int
	Fletching      int
	Weaponsmithing int
	Alchemy        int
	Lapidary       int
	Calligraphy    int
	Enchanting     int
	// Wilderness and utility
	Herbalism  int
	Hunting    int
	Mining     int
	Bargaining int
	Camping    int
	FirstAid   int
	Lore       int
	Picklocks  int
	Scouting   int
	Search     int
	Stealth    int
	Traps      int
	// Languages
	Aeolandis  int
	Hieroform  int
	HighGundis int
	OldPraxic  int
	Praxic     int
	Runic      int
}

// InRange reports whether every proficiency is within 0..SkillMax.
func (s Skills) InRange() bool {
	for _, v := range s.list() {
		if v < 0 || v > SkillMax {
			return false
		}
	}
	return true
}

func (s Skills) list() []int {
	return []int{
		s.Axe, s.Dagger, s.Unarmed, s.Hammer, s.Polearm, s.Spear, s.Staff,
		s.Sword, s.Archery, s.Crossbow, s.Sling, s.Thrown, s.Armor,
		s.DualWeapon, s.Shield, s.Bardic, s.Conjuring, s.Druidic, s.Illusion,
		s.Necromancy, s.Sorcery, s.Shamanic, s.Summoning, s.Spellcraft,
		s.Focus, s.Armorsmithing, s.Tailoring, s.Fletching, s.Weaponsmithing,
		s.Alchemy, s.Lapidary, s.Calligraphy, s.Enchanting, s.Herbalism,
		s.Hunting, s.Mining, s.Bargaining, s.Camping, s.FirstAid, s.Lore,
		s.Picklocks, s.Scouting, s.Search, s.Stealth, s.Traps, s.Aeolandis,
		s.Hieroform, s.HighGundis, s.OldPraxic, s.Praxic, s.Runic,
	}
}

// Equipment maps the fixed worn slots to item references. An empty string is
// an empty slot.
type Equipment struct {
	Head      string
	Chest     string
	Arms      string
	Hands     string
	Legs      string
	Feet      string
	Cloak     string
	Necklace  string
	RingOne   string
	RingTwo   string
	RightHand string
	LeftHand  string
}

// Character is the persisted definition of a playable avatar. Identity
// fields are immutable after creation; a character row is the append-only
// base a player row references.
type Character struct {
	ID         int64
	Firstname  string
	Lastname   string
	Guild      string
	Race       string
	Gender     string
	Face       string
	Skin       string
	Profession string

	Stats     Stats
	Skills    Skills
	Equipment Equipment
	Location  Location
}

// DisplayName is the "Firstname Lastname" form shown in player listings.
func (c Character) DisplayName() string {
	return c.Firstname + " " + c.Lastname
}
