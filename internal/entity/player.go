package entity

import (
	"net"

	"github.com/google/uuid"
)

// Player associates a character with the account that owns it, plus the
// runtime connection fields of a live session. Only AccountID and the
// embedded Character are persisted; Addr and SessionID exist for the
// lifetime of a connection.
type Player struct {
	Character

	AccountID int64

	Addr      net.Addr
	SessionID uuid.UUID
}

// NPC is a non-player inhabitant of the world. NPCs share the character
// identity fields and a location but carry no account, stats sheet, or
// equipment in the store.
type NPC struct {
	ID         int64
	Firstname  string
	Lastname   string
	Guild      string
	Race       string
	Gender     string
	Face       string
	Skin       string
	Profession string
	Location   Location
}
