package database

import (
	"path/filepath"
	"testing"

	"bloglist/internal/config"
	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SqliteMigratesSchema(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		DBDriver: "sqlite",
		DBName:   filepath.Join(t.TempDir(), "bloglist.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Blog{}))

	// The unique guard on usernames must exist at the storage level.
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Username"))
}

func TestPersistentModels(t *testing.T) {
	ms := PersistentModels()
	require.Len(t, ms, 2)

	hasUser, hasBlog := false, false
	for _, m := range ms {
		switch m.(type) {
		case *models.User:
			hasUser = true
		case *models.Blog:
			hasBlog = true
		}
	}
	assert.True(t, hasUser)
	assert.True(t, hasBlog)
}
