package database

import (
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

// Active restricts a query to rows that have not been soft deleted.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("state = ?", entities.RecordStateActive)
}
