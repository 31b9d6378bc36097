// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record of the system. Email doubles as the login
// identifier and is unique at the store level, stored case-sensitively.
type User struct {
	ID           int64     // Numeric primary key, immutable once assigned by the store.
	Email        string    // Login identifier, unique.
	PasswordHash string    // Opaque argon2id hash. Never holds plaintext.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	MiddleName   string    // Optional middle name; empty when not provided.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
