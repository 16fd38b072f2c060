package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Redis   RedisConfig   `yaml:"redis"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	AI      AIConfig      `yaml:"ai"`
}

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type RedisConfig struct {
	Addr          string `yaml:"addr"`
	Password      string `yaml:"password"`
	DB            int    `yaml:"db"`
	ChannelPrefix string `yaml:"channel_prefix"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Redis: RedisConfig{
			Addr:          "localhost:6379",
			ChannelPrefix: "wavegram",
		},
		Store: StoreConfig{
			Path: "wavegram.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("WAVEGRAM_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if baseURL := os.Getenv("WAVEGRAM_BACKEND_URL"); baseURL != "" {
		cfg.Backend.BaseURL = baseURL
	}
	if apiKey := os.Getenv("WAVEGRAM_BACKEND_KEY"); apiKey != "" {
		cfg.Backend.APIKey = apiKey
	}
	if addr := os.Getenv("WAVEGRAM_REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("WAVEGRAM_REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if dbStr := os.Getenv("WAVEGRAM_REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WAVEGRAM_REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if prefix := os.Getenv("WAVEGRAM_CHANNEL_PREFIX"); prefix != "" {
		cfg.Redis.ChannelPrefix = prefix
	}
	if storePath := os.Getenv("WAVEGRAM_STORE_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if level := os.Getenv("WAVEGRAM_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if aiKey := os.Getenv("WAVEGRAM_AI_KEY"); aiKey != "" {
		cfg.AI.APIKey = aiKey
	}
	if model := os.Getenv("WAVEGRAM_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	return cfg, nil
}

// Validate checks that the settings required to reach the backend are present.
func (c Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required (set WAVEGRAM_BACKEND_URL)")
	}
	if c.Backend.APIKey == "" {
		return fmt.Errorf("backend API key is required (set WAVEGRAM_BACKEND_KEY)")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
