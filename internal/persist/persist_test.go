package persist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/oldentide/server/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openTestDB opens a fresh store under t.TempDir with the schema applied.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "db", "world.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

// testCharacter is a valid character in the shape character creation
// produces.
func testCharacter() entity.Character {
	return entity.Character{
		Firstname:  "Poop",
		Lastname:   "Stain",
		Guild:      "Newcomers_Guild",
		Race:       "Human",
		Gender:     "Male",
		Face:       "Scarred",
		Skin:       "Pale",
		Profession: "Shaman",
		Stats: entity.Stats{
			Level: 1,
			HP:    40, MaxHP: 40,
			BP: 20, MaxBP: 20,
			MP: 30, MaxMP: 30,
			EP: 10, MaxEP: 10,
			Strength: 10, Constitution: 10, Intelligence: 12, Dexterity: 8,
		},
		Skills: entity.Skills{Shamanic: 15, Staff: 5, Herbalism: 10},
		Equipment: entity.Equipment{
			Chest:     "padded_tunic",
			RightHand: "gnarled_staff",
		},
		Location: entity.Location{Zone: "Iskirra", X: 120, Y: 64, Z: 12.5, Yaw: 90},
	}
}

// insertTestAccount stores a valid account and returns its row id.
func insertTestAccount(t *testing.T, db *DB, name string) int64 {
	t.Helper()
	accounts := NewAccountRepo(db)
	require.True(t, accounts.Insert(context.Background(), name, name+"@example.com", "deadbeef019", "dead1337"))
	id := accounts.ID(context.Background(), name)
	require.NotZero(t, id)
	return id
}
