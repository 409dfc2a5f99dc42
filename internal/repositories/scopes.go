package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// cursorPage keeps rows with column > cursor, ascending, at most limit of them.
// A nil cursor starts from the beginning; limit <= 0 means no limit.
func cursorPage(column string, cursor *uint, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if cursor != nil {
			db = db.Where(column+" > ?", *cursor)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db.Order(column + " ASC")
	}
}

// nameContains is a case-insensitive substring match that behaves the same on
// Postgres and SQLite. Blank search terms add no condition.
func nameContains(column string, search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(search)
		if term == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}
