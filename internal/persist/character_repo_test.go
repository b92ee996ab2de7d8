package persist

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCharacter(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	characters := NewCharacterRepo(db)

	c := testCharacter()
	id := characters.Insert(ctx, &c)
	assert.GreaterOrEqual(t, id, int64(1), "row identities start at 1")

	c2 := testCharacter()
	c2.Firstname = "Second"
	id2 := characters.Insert(ctx, &c2)
	assert.Greater(t, id2, id)
}

func TestInsertCharacterRejectsBadRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	characters := NewCharacterRepo(db)

	bad := testCharacter()
	bad.Firstname = "Poop Stain" // space fails sanitization
	assert.Zero(t, characters.Insert(ctx, &bad))

	bad = testCharacter()
	bad.Lastname = ""
	assert.Zero(t, characters.Insert(ctx, &bad))

	bad = testCharacter()
	bad.Location.X = math.Inf(1)
	assert.Zero(t, characters.Insert(ctx, &bad))

	bad = testCharacter()
	bad.Stats.HP = bad.Stats.MaxHP + 1
	assert.Zero(t, characters.Insert(ctx, &bad))

	bad = testCharacter()
	bad.Skills.Sword = 101
	assert.Zero(t, characters.Insert(ctx, &bad))

	n, err := characters.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "rejected characters never reach the store")
}

func TestCharacterColumnsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	characters := NewCharacterRepo(db)

	c := testCharacter()
	id := characters.Insert(ctx, &c)
	require.NotZero(t, id)

	// Spot-check one column from each sub-record through the ad-hoc path.
	res, err := db.QueryAdHoc(ctx,
		`SELECT firstname, level, shamanic, righthand, zone, z FROM characters`)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"Poop", "1", "15", "gnarled_staff", "Iskirra", "12.5"}, res.Rows[0])
}
