package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type RankScope string

const (
	// RankPage ranks only the capped page the store returned.
	RankPage RankScope = "page"
	// RankFull ranks every match before applying the cap.
	RankFull RankScope = "full"
)

type Config struct {
	DBDriver      string `validate:"required,oneof=sqlite postgres mysql"`
	DBDSN         string `validate:"required"`
	ServerPort    string `validate:"required,numeric"`
	SessionSecret string
	SessionStore  string    `validate:"required,oneof=cookie memory"`
	RankScope     RankScope `validate:"required,oneof=page full"`
	LogLevel      string    `validate:"required"`
	ImportFile    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "data/andes.db")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("SESSION_STORE", "cookie")
	v.SetDefault("SEARCH_RANK_SCOPE", string(RankPage))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("IMPORT_FILE", "ANDES AUTO PARTS.xlsx")
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:      v.GetString("DB_DRIVER"),
		DBDSN:         v.GetString("DB_DSN"),
		ServerPort:    v.GetString("SERVER_PORT"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		SessionStore:  v.GetString("SESSION_STORE"),
		RankScope:     RankScope(v.GetString("SEARCH_RANK_SCOPE")),
		LogLevel:      v.GetString("LOG_LEVEL"),
		ImportFile:    v.GetString("IMPORT_FILE"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

var ErrNoSessionSecret = errors.New("SESSION_SECRET is not set")

// CheckServer validates settings only the web server needs.
func (c *Config) CheckServer() error {
	if c.SessionStore == "cookie" && c.SessionSecret == "" {
		return ErrNoSessionSecret
	}
	return nil
}
