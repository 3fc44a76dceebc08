package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	domerrors "github.com/elifsedaa/uygulama-havuzu-backend/internal/domain/errors"
)

type Config struct {
	JWT      JWTConfig
	Password PasswordConfig
	Lockout  LockoutConfig
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	Audience    string
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

type PasswordConfig struct {
	Iterations int
}

type LockoutConfig struct {
	MaxAttempts int
	Cooldown    time.Duration
}

// Load reads configuration from the environment (plus an optional CONFIG_FILE).
// A missing signing secret is a fatal configuration error.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		JWT: JWTConfig{
			Secret:      viper.GetString("AUTH_SECRET"),
			Issuer:      getStringOrDefault("AUTH_ISSUER", "uygulama-havuzu"),
			Audience:    getStringOrDefault("AUTH_AUDIENCE", "uygulama-havuzu-users"),
			SessionTTL:  time.Duration(viper.GetInt64("AUTH_SESSION_TTL_MINUTES")) * time.Minute,
			RememberTTL: time.Duration(viper.GetInt64("AUTH_REMEMBER_TTL_DAYS")) * 24 * time.Hour,
		},
		Password: PasswordConfig{
			Iterations: viper.GetInt("AUTH_PBKDF2_ITERATIONS"),
		},
		Lockout: LockoutConfig{
			MaxAttempts: viper.GetInt("AUTH_LOCKOUT_MAX_ATTEMPTS"),
			Cooldown:    time.Duration(viper.GetInt64("AUTH_LOCKOUT_COOLDOWN_SECONDS")) * time.Second,
		},
	}
	if cfg.JWT.Secret == "" {
		return nil, domerrors.ErrMissingSecret
	}
	if cfg.JWT.SessionTTL <= 0 {
		cfg.JWT.SessionTTL = 60 * time.Minute
	}
	if cfg.JWT.RememberTTL <= 0 {
		cfg.JWT.RememberTTL = 30 * 24 * time.Hour
	}
	if cfg.Password.Iterations <= 0 {
		cfg.Password.Iterations = 10000
	}
	if cfg.Lockout.Cooldown <= 0 {
		cfg.Lockout.Cooldown = 15 * time.Minute
	}
	return cfg, nil
}

func getStringOrDefault(key, def string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}
