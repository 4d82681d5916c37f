package database

import (
	"time"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options tunes the connection pool
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string, opts Options, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if opts.AutoMigrate {
		// The legacy schema is owned elsewhere; migrating is for local databases only
		if err := db.AutoMigrate(
			&model.Identifier{},
			&model.Parameter{},
			&model.Assignment{},
			&model.Person{},
			&model.AuditEntry{},
			&model.Status{},
			&model.LegacyUser{},
			&model.User{},
			&model.Role{},
			&model.SalesTarget{},
			&model.SalesTargetDetail{},
		); err != nil {
			logger.WithError(err).Warn("Failed to auto-migrate models")
		}
	}

	return db, nil
}

// NewGormLogger routes gorm's SQL logging through logrus
func NewGormLogger(logger *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
