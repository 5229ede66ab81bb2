package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/entities"
	"github.com/mrlokans/birdwatch/internal/logging"
)

// ErrNotFound is returned when an update targets a row that no longer exists.
var ErrNotFound = errors.New("record not found")

type Database struct {
	DB     *gorm.DB
	driver config.DatabaseDriver
}

func NewDatabase(cfg config.Database, log logging.Logger) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		NowFunc: entities.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver != config.DatabaseDriverPostgres {
		// SQLite allows a single writer; one connection avoids "database is locked"
		// and keeps the foreign_keys pragma on the connection we use.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := db.AutoMigrate(&entities.Bird{}, &entities.Sighting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if log != nil {
		log.Infof("Database initialized successfully (driver=%s)", driverName(cfg.Driver))
	}

	return &Database{DB: db, driver: cfg.Driver}, nil
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for the postgres driver")
		}
		return postgres.Open(cfg.DSN), nil
	case config.DatabaseDriverSQLite, "":
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN enables foreign key enforcement so ON DELETE CASCADE applies.
func sqliteDSN(path string) string {
	if path == "" {
		path = config.DefaultDatabasePath
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func driverName(d config.DatabaseDriver) string {
	if d == "" {
		return string(config.DatabaseDriverSQLite)
	}
	return string(d)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks connectivity to the underlying database.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ContainsPattern builds a LIKE pattern matching s anywhere in a column.
// LIKE wildcards in s are escaped; use with ESCAPE '\'.
func ContainsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
