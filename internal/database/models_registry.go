package database

import "bloglist/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// AutoMigrate and the SQL migrations must stay in sync with this list.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Blog{},
	}
}
