package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type TokenConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type PasswordConfig struct {
	MinLength    int  `yaml:"min_length"`
	RequireDigit bool `yaml:"require_digit"`
}

type EventsConfig struct {
	Stream string `yaml:"stream"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Tokens   TokenConfig    `yaml:"tokens"`
	Password PasswordConfig `yaml:"password"`
	Events   EventsConfig   `yaml:"events"`
}

type Config struct {
	Port                 string
	GinMode              string
	DSN                  string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	TokenSecret          string
	TokenIssuer          string
	TokenTTL             time.Duration
	PasswordMinLength    int
	PasswordRequireDigit bool
	EventStream          string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment variable overrides
// for the settings that differ across deployments.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	ttl, err := time.ParseDuration(configFile.Tokens.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid token TTL: %w", err)
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		redisDB = n
	}

	return &Config{
		Port:                 env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:              configFile.App.GinMode,
		DSN:                  env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:            env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:        env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:              redisDB,
		TokenSecret:          env("TOKEN_SECRET", configFile.Tokens.Secret),
		TokenIssuer:          configFile.Tokens.Issuer,
		TokenTTL:             ttl,
		PasswordMinLength:    configFile.Password.MinLength,
		PasswordRequireDigit: configFile.Password.RequireDigit,
		EventStream:          configFile.Events.Stream,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
