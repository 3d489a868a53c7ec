// Package config loads settings from configs/config.yml, TABATA_* environment
// variables and built-in defaults, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tabata_timer/internal/logger"
	"tabata_timer/internal/timer"

	"github.com/spf13/viper"
)

const envPrefix = "TABATA"

type Config struct {
	Port    string        `mapstructure:"port"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Timer   TimerConfig   `mapstructure:"timer"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Auth    AuthConfig    `mapstructure:"auth"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// TimerConfig holds the default phase lengths in seconds and the tick cadence.
type TimerConfig struct {
	WorkTime     int           `mapstructure:"work_time"`
	RestTime     int           `mapstructure:"rest_time"`
	PairRestTime int           `mapstructure:"pair_rest_time"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// Phases returns the phase lengths as a timer config.
func (t TimerConfig) Phases() timer.Config {
	return timer.Config{WorkTime: t.WorkTime, RestTime: t.RestTime, PairRestTime: t.PairRestTime}
}

// CatalogConfig points at an optional YAML file of extra workouts.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	PinHash    string        `mapstructure:"pin_hash"`
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "data/tabata.db")
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("timer.work_time", timer.DefaultConfig.WorkTime)
	v.SetDefault("timer.rest_time", timer.DefaultConfig.RestTime)
	v.SetDefault("timer.pair_rest_time", timer.DefaultConfig.PairRestTime)
	v.SetDefault("timer.tick_interval", time.Second)
	v.SetDefault("catalog.path", "")
	v.SetDefault("auth.pin_hash", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{})
}

// Load reads the config file at path. An empty path looks for config.yml in
// ./configs and falls back to defaults when none exists; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port is required")
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		return errors.New("config: db.path is required")
	}
	if err := c.Timer.Phases().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Timer.TickInterval <= 0 {
		return errors.New("config: timer.tick_interval must be positive")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: auth.token_ttl must be positive")
	}
	return nil
}
