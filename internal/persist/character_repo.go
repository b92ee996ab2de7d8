package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/oldentide/server/internal/entity"
	"github.com/oldentide/server/internal/validate"
	"go.uber.org/zap"
)

// The character table is wide (~90 columns), so the mapping is composed from
// one column list and one bind list per sub-record instead of a single giant
// literal. The column and arg helpers for a sub-record must stay in the same
// order or every insert silently shears.

var identityColumns = []string{
	"firstname", "lastname", "guild", "race", "gender", "face", "skin", "profession",
}

func identityArgs(c *entity.Character) []any {
	return []any{c.Firstname, c.Lastname, c.Guild, c.Race, c.Gender, c.Face, c.Skin, c.Profession}
}

var statsColumns = []string{
	"level", "hp", "maxhp", "bp", "maxbp", "mp", "maxmp", "ep", "maxep",
	"strength", "constitution", "intelligence", "dexterity",
}

func statsArgs(s entity.Stats) []any {
	return []any{
		s.Level, s.HP, s.MaxHP, s.BP, s.MaxBP, s.MP, s.MaxMP, s.EP, s.MaxEP,
		s.Strength, s.Constitution, s.Intelligence, s.Dexterity,
	}
}

var skillsColumns = []string{
	"axe", "dagger", "unarmed", "hammer", "polearm", "spear", "staff", "sword",
	"archery", "crossbow", "sling", "thrown", "armor", "dualweapon", "shield",
	"bardic", "conjuring", "druidic", "illusion", "necromancy", "sorcery",
	"shamanic", "summoning", "spellcraft", "focus",
	"armorsmithing", "tailoring", "fletching", "weaponsmithing", "alchemy",
	"lapidary", "calligraphy", "enchanting",
	"herbalism", "hunting", "mining", "bargaining", "camping", "firstaid",
	"lore", "picklocks", "scouting", "search", "stealth", "traps",
	"aeolandis", "hieroform", "highgundis", "oldpraxic", "praxic", "runic",
}

func skillsArgs(s entity.Skills) []any {
	return []any{
		s.Axe, s.Dagger, s.Unarmed, s.Hammer, s.Polearm, s.Spear, s.Staff, s.Sword,
		s.Archery, s.Crossbow, s.Sling, s.Thrown, s.Armor, s.DualWeapon, s.Shield,
		s.Bardic, s.Conjuring, s.Druidic, s.Illusion, s.Necromancy, s.Sorcery,
		s.Shamanic, s.Summoning, s.Spellcraft, s.Focus,
		s.Armorsmithing, s.Tailoring, s.Fletching, s.Weaponsmithing, s.Alchemy,
		s.Lapidary, s.Calligraphy, s.Enchanting,
		s.Herbalism, s.Hunting, s.Mining, s.Bargaining, s.Camping, s.FirstAid,
		s.Lore, s.Picklocks, s.Scouting, s.Search, s.Stealth, s.Traps,
		s.Aeolandis, s.Hieroform, s.HighGundis, s.OldPraxic, s.Praxic, s.Runic,
	}
}

var equipmentColumns = []string{
	"head", "chest", "arms", "hands", "legs", "feet",
	"cloak", "necklace", "ringone", "ringtwo", "righthand", "lefthand",
}

func equipmentArgs(e entity.Equipment) []any {
	return []any{
		e.Head, e.Chest, e.Arms, e.Hands, e.Legs, e.Feet,
		e.Cloak, e.Necklace, e.RingOne, e.RingTwo, e.RightHand, e.LeftHand,
	}
}

var locationColumns = []string{"zone", "x", "y", "z", "pitch", "yaw"}

func locationArgs(l entity.Location) []any {
	return []any{l.Zone, l.X, l.Y, l.Z, l.Pitch, l.Yaw}
}

var insertCharacterQuery = buildInsertCharacterQuery()

func buildInsertCharacterQuery() string {
	var cols []string
	cols = append(cols, identityColumns...)
	cols = append(cols, statsColumns...)
	cols = append(cols, skillsColumns...)
	cols = append(cols, equipmentColumns...)
	cols = append(cols, locationColumns...)
	binds := make([]string, len(cols))
	for i := range binds {
		binds[i] = "?"
	}
	return fmt.Sprintf(
		`INSERT INTO characters (%s) VALUES (%s) RETURNING id`,
		strings.Join(cols, ", "),
		strings.Join(binds, ", "),
	)
}

func characterArgs(c *entity.Character) []any {
	var args []any
	args = append(args, identityArgs(c)...)
	args = append(args, statsArgs(c.Stats)...)
	args = append(args, skillsArgs(c.Skills)...)
	args = append(args, equipmentArgs(c.Equipment)...)
	args = append(args, locationArgs(c.Location)...)
	return args
}

// validateCharacter enforces the write-time invariants of a character row.
func validateCharacter(c *entity.Character) error {
	if !validate.Alphanumeric(c.Firstname) || !validate.Alphanumeric(c.Lastname) {
		return fmt.Errorf("character name %q %q fails sanitization", c.Firstname, c.Lastname)
	}
	if c.Guild != "" && !validate.Alphanumeric(c.Guild) {
		return fmt.Errorf("guild %q fails sanitization", c.Guild)
	}
	if !c.Location.Finite() {
		return fmt.Errorf("location in zone %q is not finite", c.Location.Zone)
	}
	if !c.Stats.Bounded() {
		return errors.New("a current stat exceeds its maximum")
	}
	if !c.Skills.InRange() {
		return errors.New("a skill proficiency is out of range")
	}
	return nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// insertCharacter binds the character into one parameterized insert against
// q, which may be the session or an open transaction.
func insertCharacter(ctx context.Context, q rowQuerier, c *entity.Character) (int64, error) {
	var id int64
	if err := q.QueryRowContext(ctx, insertCharacterQuery, characterArgs(c)...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

type CharacterRepo struct {
	db *DB
}

func NewCharacterRepo(db *DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

// Insert stores a character and returns its new row id. Row ids start at 1;
// 0 reports failure, whether from validation, a constraint, or the store.
func (r *CharacterRepo) Insert(ctx context.Context, c *entity.Character) int64 {
	if err := validateCharacter(c); err != nil {
		r.db.log.Warn("character rejected", zap.Error(err))
		return 0
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, err := insertCharacter(ctx, r.db.sql, c)
	if err != nil {
		r.db.log.Warn("insert character",
			zap.String("firstname", c.Firstname),
			zap.String("lastname", c.Lastname),
			zap.Error(err))
		return 0
	}
	return id
}

// Count reports the number of character rows.
func (r *CharacterRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int
	err := r.db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&n)
	return n, err
}
