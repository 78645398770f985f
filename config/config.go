package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the interview agent
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Interview InterviewConfig `mapstructure:"interview"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// LLMConfig contains the oracle provider configuration
type LLMConfig struct {
	Provider     string        `mapstructure:"provider"` // openai
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Model        string        `mapstructure:"model"`
	Temperature  float64       `mapstructure:"temperature"`
	MaxTokens    int           `mapstructure:"max_tokens"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.Provider) == "" {
		return fmt.Errorf("llm.provider required")
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0,2]")
	}
	return nil
}

// InterviewConfig contains the knobs of the turn-decision loop
type InterviewConfig struct {
	MaxTurns     int           `mapstructure:"max_turns"`
	KeywordCount int           `mapstructure:"keyword_count"`
	FirstTopic   string        `mapstructure:"first_topic"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
}

func (i InterviewConfig) Validate() error {
	if i.MaxTurns <= 0 {
		return fmt.Errorf("interview.max_turns must be > 0")
	}
	if i.KeywordCount <= 0 {
		return fmt.Errorf("interview.keyword_count must be > 0")
	}
	return nil
}

// StorageConfig selects where live session snapshots are kept
type StorageConfig struct {
	Store string      `mapstructure:"store"` // inmemory or redis
	Redis RedisConfig `mapstructure:"redis"`
}

func (s StorageConfig) Validate() error {
	switch s.Store {
	case "", "inmemory":
		return nil
	case "redis":
		if strings.TrimSpace(s.Redis.Host) == "" {
			return fmt.Errorf("storage.redis.host required when store is redis")
		}
		return nil
	default:
		return fmt.Errorf("unsupported storage.store: %s", s.Store)
	}
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads config from file, falling back to defaults and
// INTERVIEW_* environment variables when no file is present.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("server.address", ":10020")
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.0)
	viper.SetDefault("llm.max_tokens", 2048)
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("llm.max_retries", 2)
	viper.SetDefault("llm.retry_backoff", 300*time.Millisecond)
	viper.SetDefault("interview.max_turns", 5)
	viper.SetDefault("interview.keyword_count", 10)
	viper.SetDefault("interview.first_topic", "Experience")
	viper.SetDefault("interview.session_ttl", time.Hour)
	viper.SetDefault("storage.store", "inmemory")
	viper.SetDefault("storage.redis.port", "6379")
	viper.SetDefault("storage.redis.timeout", 5*time.Second)
	viper.SetDefault("telemetry.enabled", true)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("INTERVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		// no config file: defaults + env only
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.LLM.Validate(); err != nil {
		panic(err)
	}
	if err := config.Interview.Validate(); err != nil {
		panic(err)
	}
	if err := config.Storage.Validate(); err != nil {
		panic(err)
	}
	return &config
}
