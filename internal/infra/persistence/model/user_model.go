package model

import "time"

// UserModel mirrors the 'users' table. IDs are bigserial values assigned by
// PostgreSQL. Email carries the unique constraint that backs duplicate-signup
// detection.
type UserModel struct {
	ID           int64   `gorm:"primaryKey"`
	Email        string  `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	FirstName    string  `gorm:"type:varchar(100);not null"`
	LastName     string  `gorm:"type:varchar(100);not null"`
	MiddleName   *string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Bookmarks []BookmarkModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
