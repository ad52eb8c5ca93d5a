package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Exchange ExchangeConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// ExchangeConfig carries the optional KRW/USD rate override. A zero value
// means "use the settings table" (and ultimately the hardcoded fallback).
type ExchangeConfig struct {
	RateOverride float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional in containerized deployments; env vars alone are fine.
	_ = viper.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Exchange: ExchangeConfig{
			RateOverride: viper.GetFloat64("EXCHANGE_RATE_OVERRIDE"),
		},
	}

	if config.App.Port == "" {
		config.App.Port = "8080"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate fails fast on values the process cannot run without.
func (c *Config) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", c.DB.Host},
		{"DB_PORT", c.DB.Port},
		{"DB_USER", c.DB.User},
		{"DB_NAME", c.DB.Name},
		{"JWT_SECRET", c.JWT.Secret},
	}
	for _, item := range required {
		if item.value == "" {
			return fmt.Errorf("missing required config: %s", item.key)
		}
	}
	return nil
}
