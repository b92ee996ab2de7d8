package persist

import (
	"context"

	"github.com/oldentide/server/internal/entity"
	"github.com/oldentide/server/internal/validate"
	"go.uber.org/zap"
)

type NPCRepo struct {
	db *DB
}

func NewNPCRepo(db *DB) *NPCRepo {
	return &NPCRepo{db: db}
}

// Insert stores an NPC and returns its new row id, or 0 on failure.
func (r *NPCRepo) Insert(ctx context.Context, n *entity.NPC) int64 {
	if !validate.Alphanumeric(n.Firstname) {
		r.db.log.Warn("npc name fails sanitization", zap.String("firstname", n.Firstname))
		return 0
	}
	if !n.Location.Finite() {
		r.db.log.Warn("npc location is not finite", zap.String("firstname", n.Firstname))
		return 0
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var id int64
	err := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO npcs (firstname, lastname, guild, race, gender, face, skin, profession,
		                   zone, x, y, z, pitch, yaw)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		n.Firstname, n.Lastname, n.Guild, n.Race, n.Gender, n.Face, n.Skin, n.Profession,
		n.Location.Zone, n.Location.X, n.Location.Y, n.Location.Z, n.Location.Pitch, n.Location.Yaw,
	).Scan(&id)
	if err != nil {
		r.db.log.Warn("insert npc", zap.String("firstname", n.Firstname), zap.Error(err))
		return 0
	}
	return id
}

// List returns every NPC in the store ordered by zone then name, for world
// population at boot.
func (r *NPCRepo) List(ctx context.Context) ([]entity.NPC, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT id, firstname, lastname, guild, race, gender, face, skin, profession,
		        zone, x, y, z, pitch, yaw
		 FROM npcs ORDER BY zone, firstname`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entity.NPC
	for rows.Next() {
		var n entity.NPC
		if err := rows.Scan(
			&n.ID, &n.Firstname, &n.Lastname, &n.Guild, &n.Race, &n.Gender,
			&n.Face, &n.Skin, &n.Profession,
			&n.Location.Zone, &n.Location.X, &n.Location.Y, &n.Location.Z,
			&n.Location.Pitch, &n.Location.Yaw,
		); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}
