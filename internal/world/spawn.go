package world

import (
	"context"
	"fmt"

	"github.com/oldentide/server/internal/data"
	"github.com/oldentide/server/internal/entity"
	"github.com/oldentide/server/internal/persist"
	"go.uber.org/zap"
)

// SpawnNPCs makes sure every templated NPC has a row in the store and
// returns the full population. Seeding happens once; on later boots the
// stored rows win.
func SpawnNPCs(ctx context.Context, npcs *persist.NPCRepo, templates []data.NPCTemplate, log *zap.Logger) ([]entity.NPC, error) {
	existing, err := npcs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load npc population: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	for _, t := range templates {
		n := t.Entity()
		if id := npcs.Insert(ctx, &n); id == 0 {
			log.Warn("npc template rejected, skipping",
				zap.String("firstname", t.Firstname),
				zap.String("zone", t.Zone))
		}
	}
	seeded, err := npcs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload npc population: %w", err)
	}
	log.Info("npc population seeded", zap.Int("count", len(seeded)))
	return seeded, nil
}
