package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/entities"
)

// sqlite connection parameters understood by mattn/go-sqlite3.
// Immediate transactions take the write lock up front so two borrow
// transactions never deadlock on a lock upgrade.
const dsnParams = "_busy_timeout=5000&_txlock=immediate&_foreign_keys=on"

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type Database struct {
	DB *gorm.DB
}

type Options struct {
	LogLevel logger.LogLevel
}

func dsn(path string) string {
	if path == MemoryPath {
		return "file::memory:?" + dsnParams
	}
	if strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?" + dsnParams
}

func NewDatabase(dbPath string) (*Database, error) {
	return NewDatabaseWithOptions(dbPath, Options{LogLevel: logger.Warn})
}

func NewDatabaseWithOptions(dbPath string, opts Options) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Each connection to :memory: sees its own empty database.
	if dbPath == MemoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to configure database pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

// Migrate creates or updates every table used by the application.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entities.Book{},
		&entities.User{},
		&entities.Borrowing{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
