package model

import "time"

// BookmarkModel mirrors the 'bookmarks' table. UserID references users.id and
// is never updated after insertion.
type BookmarkModel struct {
	ID          int64   `gorm:"primaryKey"`
	UserID      int64   `gorm:"not null;index"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Link        string  `gorm:"type:varchar(2048);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}
