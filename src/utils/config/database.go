package config

import (
	"time"

	"github.com/spf13/viper"
)

type Database struct {
	// Full connection string. Takes precedence over the individual fields below.
	Url string

	Port            uint16
	Host            string
	User            string
	Password        string
	Name            string
	SslMode         string
	PingTimeout     time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// Host and Name deliberately have no defaults, a database destination
// has to be configured explicitly before an import may start.
func setDatabaseDefaults() {
	viper.SetDefault("Database.Url", "")
	viper.SetDefault("Database.Port", "5432")
	viper.SetDefault("Database.Host", "")
	viper.SetDefault("Database.User", "postgres")
	viper.SetDefault("Database.Password", "postgres")
	viper.SetDefault("Database.Name", "")
	viper.SetDefault("Database.SslMode", "disable")
	viper.SetDefault("Database.PingTimeout", "15s")
	viper.SetDefault("Database.MaxOpenConns", "10")
	viper.SetDefault("Database.MaxIdleConns", "2")
	viper.SetDefault("Database.ConnMaxIdleTime", "30m")
	viper.SetDefault("Database.ConnMaxLifetime", "1h")
}
