package migration

import (
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schema string

// Apply creates every table the API needs. It is safe to run repeatedly.
func Apply(db *gorm.DB) error {
	if err := db.Exec(schema).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Truncate empties every table and resets identities. Used by tests and
// the seed command's --reset flag.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE notifications, activity_log, site_settings, pages,
		top_lists, news, guides, platforms, users RESTART IDENTITY CASCADE`).Error
}
