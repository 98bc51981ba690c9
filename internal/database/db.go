package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"andes-autoparts/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxAttempts = 10

var retryInterval = 2 * time.Second

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		if dir := filepath.Dir(dsn); dir != "." && !isMemory(dsn) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file:")
}

// Open connects to the store and creates the usuarios / productos tables if
// they are missing. No rows are seeded.
func Open(driver, dsn string) (*gorm.DB, error) {
	d, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := 1; i <= maxAttempts; i++ {
		log.WithFields(log.Fields{"driver": driver, "attempt": i}).Debug("connecting to DB")

		db, err = gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err == nil {
			break
		}
		// sqlite either opens or never will
		if driver == "sqlite" {
			break
		}
		log.WithError(err).Warnf("failed to connect to DB (attempt %d/%d)", i, maxAttempts)
		time.Sleep(retryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.WithField("driver", driver).Info("connected to DB")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Part{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
