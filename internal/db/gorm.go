package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studymate/courseapi/internal/config"
	"github.com/studymate/courseapi/internal/pkg/logger"
)

const (
	// SQLiteDriverName is the sqlite3 driver with the Unicode lowercase function registered
	SQLiteDriverName = "sqlite3_unicode"
	// SQLiteLowerFunc lowercases the full Unicode range. sqlite's own LOWER only folds ASCII.
	SQLiteLowerFunc = "unicode_lower"
)

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(SQLiteLowerFunc, strings.ToLower, true)
		},
	})
}

// SQLiteDialector opens a sqlite file through SQLiteDriverName
func SQLiteDialector(path string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: SQLiteDriverName, DSN: path})
}

// IsUnicodeSQLite reports whether gdb was opened with SQLiteDialector
func IsUnicodeSQLite(gdb *gorm.DB) bool {
	d, ok := gdb.Dialector.(*sqlite.Dialector)
	return ok && d.DriverName == SQLiteDriverName
}

// isMemoryDSN reports whether a sqlite DSN names an in-memory database
func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// NewGormDB opens a GORM connection for the sqlite and mysql drivers and
// applies the pool settings from the database config.
func NewGormDB(cfg *config.Config) (*gorm.DB, error) {
	maxOpen, maxIdle, lifetime := cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		dialector = SQLiteDialector(cfg.Database.Path)
		// every pooled connection to :memory: is a separate empty database
		if isMemoryDSN(cfg.Database.Path) {
			maxOpen, maxIdle, lifetime = 1, 1, "0"
		}
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.GetMySQLConnectionString())
	default:
		return nil, fmt.Errorf("driver %q is not served by gorm", cfg.Database.Driver)
	}

	return OpenGorm(dialector, maxOpen, maxIdle, lifetime)
}

// OpenGorm opens any GORM dialector with the zerolog-backed query logger.
func OpenGorm(dialector gorm.Dialector, maxOpen, maxIdle int, connMaxLifetime string) (*gorm.DB, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger.Logger(), 200*time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}
	if lifetime, err := time.ParseDuration(connMaxLifetime); err == nil {
		sqlDB.SetConnMaxLifetime(lifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return gdb, nil
}
