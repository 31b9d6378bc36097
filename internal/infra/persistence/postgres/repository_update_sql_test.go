package postgres

import (
	"context"
	"strings"
	"testing"

	"markd/internal/domain/entity"
	"markd/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm session that builds SQL without touching a live
// database, and captures the statement produced by update calls.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=markd dbname=markd",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	captured := new(string)
	err = db.Callback().Update().After("gorm:update").Register("capture_update_sql", func(tx *gorm.DB) {
		*captured = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return db, captured
}

func TestUserRepository_UpdateTouchesOnlyMutableColumns(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{
		ID:           3,
		Email:        "alice@example.com",
		PasswordHash: "stored_hash",
		FirstName:    "Alicia",
		LastName:     "Doe",
	}

	// A dry run affects zero rows, which must read as a missing row.
	err := repo.Update(context.Background(), user)
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	sql := *captured
	require.True(t, strings.HasPrefix(sql, "UPDATE"), "expected an UPDATE, got %q", sql)
	assert.Contains(t, sql, `"first_name"`)
	assert.Contains(t, sql, `"last_name"`)
	assert.Contains(t, sql, `"middle_name"`)
	assert.Contains(t, sql, `"updated_at"`)
	assert.NotContains(t, sql, `"created_at"`)
	assert.NotContains(t, sql, `"email"`)
	assert.NotContains(t, sql, `"password_hash"`)
}

func TestBookmarkRepository_UpdateTouchesOnlyMutableColumns(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewBookmarkRepository(db)

	bookmark := &entity.Bookmark{
		ID:          10,
		UserID:      5,
		Title:       "The Go Blog",
		Description: "official blog",
		Link:        "https://go.dev/blog",
	}

	err := repo.Update(context.Background(), bookmark)
	require.ErrorIs(t, err, repository.ErrBookmarkNotFound)

	sql := *captured
	require.True(t, strings.HasPrefix(sql, "UPDATE"), "expected an UPDATE, got %q", sql)
	assert.Contains(t, sql, `"title"`)
	assert.Contains(t, sql, `"description"`)
	assert.Contains(t, sql, `"link"`)
	assert.Contains(t, sql, `"updated_at"`)
	assert.NotContains(t, sql, `"created_at"`)
	assert.NotContains(t, sql, `"user_id"`)
	assert.NotContains(t, sql, "INSERT")
	assert.NotContains(t, sql, "ON CONFLICT")
}
