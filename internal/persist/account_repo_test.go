package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAccount(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)

	assert.True(t, accounts.Insert(ctx, "my_account", "my_email@my.example.com", "deadBEEF019", "deAD1337"))

	list, err := accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "my_account", list[0].Name)
	assert.True(t, list[0].Valid)
	assert.True(t, list[0].Playing)
	assert.GreaterOrEqual(t, list[0].ID, int64(1))
}

func TestInsertAccountValidationNeverWrites(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)

	tests := []struct {
		name            string
		acct, key, salt string
	}{
		{"bad name", "; drop all tables", "deadbeef", "dead1337"},
		{"name too short", "a", "deadbeef", "dead1337"},
		{"bad key", "my_account", "not hex!", "dead1337"},
		{"bad salt", "my_account", "deadbeef", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, accounts.Insert(ctx, tt.acct, "e@example.com", tt.key, tt.salt))
			n, err := accounts.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n, "a rejected insert must not touch the store")
		})
	}
}

func TestInsertAccountDuplicate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)

	assert.True(t, accounts.Insert(ctx, "my_account", "e@example.com", "deadbeef", "dead1337"))
	assert.False(t, accounts.Insert(ctx, "my_account", "other@example.com", "beefdead", "1337dead"),
		"duplicate name must fail cleanly")

	n, err := accounts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListAccountsOrdered(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)

	for _, name := range []string{"zed", "alice", "mira"} {
		require.True(t, accounts.Insert(ctx, name, name+"@example.com", "abcd", "1234"))
	}

	list, err := accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alice", list[0].Name)
	assert.Equal(t, "mira", list[1].Name)
	assert.Equal(t, "zed", list[2].Name)
}

func TestAccountCredentialLookups(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)

	require.True(t, accounts.Insert(ctx, "my_account", "e@example.com", "deadbeef019", "dead1337"))

	salt, ok := accounts.Salt(ctx, "my_account")
	assert.True(t, ok)
	assert.Equal(t, "dead1337", salt)

	key, ok := accounts.Key(ctx, "my_account")
	assert.True(t, ok)
	assert.Equal(t, "deadbeef019", key)

	_, ok = accounts.Salt(ctx, "nonexistent_account")
	assert.False(t, ok)

	_, ok = accounts.Key(ctx, "; drop all tables")
	assert.False(t, ok, "invalid names never reach the store")
}

func TestAccountID(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	accounts := NewAccountRepo(db)

	assert.Zero(t, accounts.ID(ctx, "my_account"))
	require.True(t, accounts.Insert(ctx, "my_account", "e@example.com", "abcd", "1234"))
	assert.GreaterOrEqual(t, accounts.ID(ctx, "my_account"), int64(1))
}
