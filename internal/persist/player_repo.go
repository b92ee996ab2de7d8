package persist

import (
	"context"

	"github.com/oldentide/server/internal/entity"
	"github.com/oldentide/server/internal/validate"
	"go.uber.org/zap"
)

type PlayerRepo struct {
	db *DB
}

func NewPlayerRepo(db *DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// Insert stores the player's base character and the player row referencing
// it and the owning account, in one transaction. If either insert fails the
// whole write rolls back, so a failed player can never leave an orphaned
// character row behind. Returns true only when both rows committed.
func (r *PlayerRepo) Insert(ctx context.Context, p *entity.Player) bool {
	if p.AccountID < 1 {
		r.db.log.Warn("player rejected, no account id",
			zap.String("firstname", p.Firstname))
		return false
	}
	if err := validateCharacter(&p.Character); err != nil {
		r.db.log.Warn("player rejected", zap.Error(err))
		return false
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		r.db.log.Error("begin player insert", zap.Error(err))
		return false
	}
	defer tx.Rollback()

	charID, err := insertCharacter(ctx, tx, &p.Character)
	if err != nil {
		r.db.log.Warn("insert player, base character insert failed",
			zap.String("firstname", p.Firstname),
			zap.String("lastname", p.Lastname),
			zap.Error(err))
		return false
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO players (character_id, account_id) VALUES (?, ?)`,
		charID, p.AccountID,
	); err != nil {
		r.db.log.Warn("insert player row",
			zap.Int64("character_id", charID),
			zap.Int64("account_id", p.AccountID),
			zap.Error(err))
		return false
	}

	if err := tx.Commit(); err != nil {
		r.db.log.Error("commit player insert", zap.Error(err))
		return false
	}

	p.Character.ID = charID
	return true
}

// List returns the display names of every player owned by the named
// account, ordered by account name. An invalid or unknown account yields an
// empty list, not an error.
func (r *PlayerRepo) List(ctx context.Context, accountName string) []string {
	if !validate.AccountName(accountName) {
		return nil
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT c.firstname, c.lastname
		 FROM players p
		 JOIN characters c ON p.character_id = c.id
		 JOIN accounts a ON p.account_id = a.id
		 WHERE a.accountname = ?
		 ORDER BY a.accountname, c.firstname`,
		accountName,
	)
	if err != nil {
		r.db.log.Warn("list players", zap.String("account", accountName), zap.Error(err))
		return nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var first, last string
		if err := rows.Scan(&first, &last); err != nil {
			r.db.log.Warn("scan player row", zap.Error(err))
			return nil
		}
		names = append(names, first+" "+last)
	}
	if err := rows.Err(); err != nil {
		r.db.log.Warn("list players", zap.String("account", accountName), zap.Error(err))
		return nil
	}
	return names
}

// Count reports the number of player rows.
func (r *PlayerRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int
	err := r.db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&n)
	return n, err
}
