// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Bookmark is a user-owned resource. UserID is fixed at creation and is the
// sole authorization anchor: only the owner may read or mutate the record.
type Bookmark struct {
	ID          int64     // Numeric primary key.
	UserID      int64     // Owning user, immutable after creation.
	Title       string    // Display title of the bookmark.
	Description string    // Optional free-form description; empty when not provided.
	Link        string    // The bookmarked URL.
	CreatedAt   time.Time // Timestamp of when this bookmark was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
