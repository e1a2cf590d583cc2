package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy filters records by owning user. Every business entity carries a
// user_id column; repositories apply this scope on all list queries so one
// user can never read another's records.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == uuid.Nil {
			// Fail-safe: no owner in context means no results, not all results.
			return db.Where("1 = 0")
		}
		return db.Where("user_id = ?", userID)
	}
}

// DateBetween bounds a date column by optional inclusive start/end dates.
func DateBetween(column string, start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where(column+" >= ?", *start)
		}
		if end != nil {
			db = db.Where(column+" <= ?", *end)
		}
		return db
	}
}

// SearchILike applies a case-insensitive substring match across the given
// columns, OR-ed together. A blank term leaves the query untouched.
func SearchILike(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + term + "%"
		cond := db.Session(&gorm.Session{NewDB: true})
		clause := cond.Where(columns[0]+" ILIKE ?", pattern)
		for _, col := range columns[1:] {
			clause = clause.Or(col+" ILIKE ?", pattern)
		}
		return db.Where(clause)
	}
}
