package rdb

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenFromURL opens a GORM DB based on a simple journal-url string.
// Supported:
//   - sqlite:<dsn>   e.g., sqlite:./driverset.db or sqlite::memory:
//   - sqlite3:<dsn>  alias of sqlite
func OpenFromURL(journalURL string) (*gorm.DB, error) {
	var dsn string
	switch {
	case strings.HasPrefix(journalURL, "sqlite:"):
		dsn = strings.TrimPrefix(journalURL, "sqlite:")
	case strings.HasPrefix(journalURL, "sqlite3:"):
		dsn = strings.TrimPrefix(journalURL, "sqlite3:")
	default:
		return nil, fmt.Errorf("unsupported journal scheme: %s", journalURL)
	}
	if dsn == "" {
		dsn = "./driverset.db"
	}
	// The journal is a side channel of startup; keep gorm quiet so its
	// logging does not interleave with the outcome report.
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
}

// AutoMigrate applies schema migrations for all journal models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&OutcomeRecord{})
}
