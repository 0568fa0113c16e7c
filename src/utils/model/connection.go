package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/curated-contracts/registry/src/utils/build_info"
	"github.com/curated-contracts/registry/src/utils/config"
	l "github.com/curated-contracts/registry/src/utils/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(ctx context.Context, config *config.Config, applicationName string) (self *gorm.DB, err error) {
	log := l.NewSublogger("db")

	logger := logger.New(log,
		logger.Config{
			SlowThreshold:             500 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Error,           // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,                  // Disable color
		},
	)

	dsn, err := buildDsn(&config.Database, applicationName)
	if err != nil {
		return
	}

	self, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger})
	if err != nil {
		return
	}

	db, err := self.DB()
	if err != nil {
		return
	}

	db.SetMaxOpenConns(config.Database.MaxOpenConns)
	db.SetMaxIdleConns(config.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(config.Database.ConnMaxIdleTime)
	db.SetConnMaxLifetime(config.Database.ConnMaxLifetime)

	err = ping(ctx, &config.Database, self)
	if err != nil {
		return
	}

	return
}

func buildDsn(dbConfig *config.Database, applicationName string) (dsn string, err error) {
	if dbConfig.Url != "" {
		return dbConfig.Url, nil
	}

	if dbConfig.Host == "" || dbConfig.Name == "" {
		err = errors.New("database location must be provided via --database-url, the DATABASE_URL environment variable or the Database config section")
		return
	}

	dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=%s/registry/%s",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.SslMode,
		applicationName,
		build_info.Version,
	)
	return
}

func ping(ctx context.Context, dbConfig *config.Database, db *gorm.DB) (err error) {
	if dbConfig.PingTimeout < 0 {
		// Ping disabled
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbConfig.PingTimeout)
	defer cancel()

	err = sqlDB.PingContext(dbCtx)
	if err != nil {
		return
	}
	return
}
