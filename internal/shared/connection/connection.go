package connection

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens the salary store. The file must already exist: the schema
// is owned by the server process and an importer must never create an empty
// database by accident.
func OpenSQLite(path string) (*gorm.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("database file does not exist: %s", path)
		}
		return nil, fmt.Errorf("stat database file %s: %w", path, err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// One writer, no concurrent readers. A single connection also keeps the
	// importer's transaction and queries on the same SQLite handle.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Close releases the underlying connection. Safe to call on a nil handle.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
