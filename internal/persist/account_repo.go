package persist

import (
	"context"
	"database/sql"
	"errors"

	"github.com/oldentide/server/internal/entity"
	"github.com/oldentide/server/internal/validate"
	"go.uber.org/zap"
)

type AccountRepo struct {
	db *DB
}

func NewAccountRepo(db *DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Insert stores a new account. The name must pass the account-name check and
// key and salt must be hex digests; on any validation failure nothing is
// written. A duplicate name is rejected by the unique constraint and
// reported as false, never as a raised error.
func (r *AccountRepo) Insert(ctx context.Context, name, email, key, salt string) bool {
	if !validate.AccountName(name) {
		r.db.log.Warn("account name is invalid, cannot insert account", zap.String("name", name))
		return false
	}
	if !validate.HexString(key) {
		r.db.log.Warn("account key is not a hex digest, cannot insert account", zap.String("name", name))
		return false
	}
	if !validate.HexString(salt) {
		r.db.log.Warn("account salt is not a hex digest, cannot insert account", zap.String("name", name))
		return false
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO accounts (accountname, valid, email, playing, key, salt)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, true, email, true, key, salt,
	)
	if err != nil {
		r.db.log.Warn("insert account", zap.String("name", name), zap.Error(err))
		return false
	}
	return true
}

// List returns every account ordered by name. Rendering is the caller's job.
func (r *AccountRepo) List(ctx context.Context) ([]entity.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT id, accountname, valid, email, playing, key, salt
		 FROM accounts ORDER BY accountname`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Valid, &a.Email, &a.Playing, &a.Key, &a.Salt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Salt looks up the stored salt for a validated account name. Returns false
// when the name fails validation, the account does not exist, or the stored
// material is not itself a hex digest.
func (r *AccountRepo) Salt(ctx context.Context, name string) (string, bool) {
	return r.credential(ctx, name, `SELECT salt FROM accounts WHERE accountname = ?`)
}

// Key looks up the stored credential key for a validated account name, with
// the same failure behavior as Salt.
func (r *AccountRepo) Key(ctx context.Context, name string) (string, bool) {
	return r.credential(ctx, name, `SELECT key FROM accounts WHERE accountname = ?`)
}

func (r *AccountRepo) credential(ctx context.Context, name, query string) (string, bool) {
	if !validate.AccountName(name) {
		return "", false
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var value string
	err := r.db.sql.QueryRowContext(ctx, query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		r.db.log.Warn("look up account credential", zap.String("name", name), zap.Error(err))
		return "", false
	}
	if !validate.HexString(value) {
		r.db.log.Warn("stored credential is not a hex digest", zap.String("name", name))
		return "", false
	}
	return value, true
}

// ID resolves an account name to its row id. Returns 0 when the name does
// not validate or no row matches.
func (r *AccountRepo) ID(ctx context.Context, name string) int64 {
	if !validate.AccountName(name) {
		return 0
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var id int64
	err := r.db.sql.QueryRowContext(ctx,
		`SELECT id FROM accounts WHERE accountname = ?`, name,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0
	}
	if err != nil {
		r.db.log.Warn("look up account id", zap.String("name", name), zap.Error(err))
		return 0
	}
	return id
}

// Count reports the number of account rows. Used by tests to prove that a
// rejected insert never touched the store.
func (r *AccountRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int
	err := r.db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n)
	return n, err
}
