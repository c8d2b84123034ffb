package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database. An empty databasePath falls back to
// portfolio.db in the working directory.
func Open(databasePath string) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "portfolio.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, eris.Wrapf(err, "preparing database directory for %s", path)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, eris.Wrapf(err, "opening database %s", path)
	}

	return gdb, nil
}

// Migrate creates the record table for every allow-listed name if it does
// not exist yet. All tables share the Record schema.
func Migrate(gdb *gorm.DB) error {
	for _, table := range AllTables() {
		if err := gdb.Table(table.String()).AutoMigrate(&Record{}); err != nil {
			return eris.Wrapf(err, "migrating table %s", table)
		}
	}
	return nil
}

// Close releases the underlying sql connection pool.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
