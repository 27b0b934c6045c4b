package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects gorm with the configured driver. SQL is logged in
// development only.
func OpenDB(c Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch c.DBDriver {
	case "postgres":
		dial = postgres.Open(c.DBDSN)
	default:
		dial = mysql.Open(c.DBDSN)
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if c.Production() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	return db, nil
}
