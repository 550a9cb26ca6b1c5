package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string
	DBDriver    string // "postgres" or "sqlite"
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBPath      string // sqlite file, used when DBDriver is "sqlite"
	SeedFile    string // optional JSON dataset consumed by the seed binary
}

func Load() *Config {
	vip := viper.New()

	vip.SetDefault("PORT", "8080")
	vip.SetDefault("BIND_ADDRESS", "0.0.0.0")
	vip.SetDefault("DB_DRIVER", "sqlite")
	vip.SetDefault("DB_HOST", "localhost")
	vip.SetDefault("DB_PORT", "5432")
	vip.SetDefault("DB_USER", "quizhub")
	vip.SetDefault("DB_PASSWORD", "quizhub")
	vip.SetDefault("DB_NAME", "quizhub")
	vip.SetDefault("DB_SSLMODE", "disable")
	vip.SetDefault("DB_PATH", "quizhub.db")
	vip.SetDefault("SEED_FILE", "quiz_data.json")
	vip.AutomaticEnv()

	return &Config{
		Port:        vip.GetString("PORT"),
		BindAddress: vip.GetString("BIND_ADDRESS"),
		DBDriver:    vip.GetString("DB_DRIVER"),
		DBHost:      vip.GetString("DB_HOST"),
		DBPort:      vip.GetString("DB_PORT"),
		DBUser:      vip.GetString("DB_USER"),
		DBPassword:  vip.GetString("DB_PASSWORD"),
		DBName:      vip.GetString("DB_NAME"),
		DBSSLMode:   vip.GetString("DB_SSLMODE"),
		DBPath:      vip.GetString("DB_PATH"),
		SeedFile:    vip.GetString("SEED_FILE"),
	}
}

// InitDB opens the configured database. SQLite is the out-of-the-box default
// so the API works without any external services; Postgres is for deployments.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	case "sqlite":
		// Foreign keys are off by default in sqlite; cascade deletes need them.
		dialector = sqlite.Open(cfg.DBPath + "?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
