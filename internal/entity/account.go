// Package entity defines the value types persisted by the database gateway:
// accounts, characters, players, and the sub-records a character decomposes
// into. These carry no behavior beyond invariant checks; the gateway copies
// them into rows and never retains them.
package entity

// Account is a login credential with its status flags. Key and Salt are hex
// digests produced by the auth package; the gateway refuses to store either
// if it fails the hex-string check.
type Account struct {
	ID      int64
	Name    string
	Email   string
	Key     string
	Salt    string
	Valid   bool
	Playing bool
}
