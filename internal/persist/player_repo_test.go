package persist

import (
	"context"
	"testing"

	"github.com/oldentide/server/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertPlayer(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	players := NewPlayerRepo(db)

	accountID := insertTestAccount(t, db, "my_account")

	p := &entity.Player{Character: testCharacter(), AccountID: accountID}
	assert.True(t, players.Insert(ctx, p))
	assert.GreaterOrEqual(t, p.Character.ID, int64(1))

	// Both rows exist and the player row references them.
	res, err := db.QueryAdHoc(ctx, `SELECT character_id, account_id FROM players`)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"1", "1"}, res.Rows[0])

	chars, err := NewCharacterRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, chars)
}

func TestInsertPlayerRollsBackOrphanCharacter(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	players := NewPlayerRepo(db)

	// Account id 999 has no row; the character insert succeeds but the
	// player insert hits the foreign key, so both must roll back.
	p := &entity.Player{Character: testCharacter(), AccountID: 999}
	assert.False(t, players.Insert(ctx, p))

	chars, err := NewCharacterRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, chars, "no orphan character row may survive a failed player insert")

	count, err := players.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInsertPlayerRejectsInvalidCharacter(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	players := NewPlayerRepo(db)
	accountID := insertTestAccount(t, db, "my_account")

	p := &entity.Player{Character: testCharacter(), AccountID: accountID}
	p.Character.Firstname = "Bad Name"
	assert.False(t, players.Insert(ctx, p))

	p = &entity.Player{Character: testCharacter()}
	assert.False(t, players.Insert(ctx, p), "a player without an account id is rejected")
}

func TestGetPlayerList(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	players := NewPlayerRepo(db)

	assert.Empty(t, players.List(ctx, "nonexistent_account"))
	assert.Empty(t, players.List(ctx, "; drop all tables"))

	accountID := insertTestAccount(t, db, "my_account")
	p := &entity.Player{Character: testCharacter(), AccountID: accountID}
	require.True(t, players.Insert(ctx, p))

	assert.Equal(t, []string{"Poop Stain"}, players.List(ctx, "my_account"))

	// Players owned by one account are invisible under another.
	otherID := insertTestAccount(t, db, "other_account")
	other := &entity.Player{Character: testCharacter(), AccountID: otherID}
	other.Character.Firstname = "Grel"
	other.Character.Lastname = "Thornweave"
	require.True(t, players.Insert(ctx, other))

	assert.Equal(t, []string{"Poop Stain"}, players.List(ctx, "my_account"))
	assert.Equal(t, []string{"Grel Thornweave"}, players.List(ctx, "other_account"))
}

// TestAccountAndPlayerScenario walks the whole registration-to-listing path.
func TestAccountAndPlayerScenario(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)
	players := NewPlayerRepo(db)

	require.True(t, accounts.Insert(ctx, "my_account", "my_email@my.example.com", "deadbeef019", "dead1337"))

	p := &entity.Player{Character: testCharacter(), AccountID: accounts.ID(ctx, "my_account")}
	require.True(t, players.Insert(ctx, p))

	assert.Equal(t, []string{"Poop Stain"}, players.List(ctx, "my_account"))
}
