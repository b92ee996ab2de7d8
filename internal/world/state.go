// Package world holds the live, in-memory view of who is connected. It is a
// collaborator of the persistence gateway, not a cache of it: the admin
// shell's player listing reads this registry, while the database keeps the
// durable rows.
package world

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/oldentide/server/internal/entity"
)

// State is the active-player registry. Handlers for concurrent connections
// and the admin shell read and write it, so access is guarded.
type State struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*entity.Player
}

func NewState() *State {
	return &State{players: make(map[uuid.UUID]*entity.Player)}
}

// Add registers a player under its session id, replacing any previous entry
// for the same session.
func (s *State) Add(p *entity.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.SessionID] = p
}

// Remove drops the session from the registry.
func (s *State) Remove(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, sessionID)
}

// Get returns the player for a session, or nil.
func (s *State) Get(sessionID uuid.UUID) *entity.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players[sessionID]
}

// Players returns a snapshot of every connected player sorted by display
// name.
func (s *State) Players() []*entity.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*entity.Player, 0, len(s.players))
	for _, p := range s.players {
		snapshot = append(snapshot, p)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].DisplayName() < snapshot[j].DisplayName()
	})
	return snapshot
}

// Count reports how many players are connected.
func (s *State) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
