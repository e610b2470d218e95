// Package config loads configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings.
type Config struct {
	AppName         string
	DatabaseURL     string
	OpenAIAPIKey    string
	TranscribeModel string
	ReplyDelay      time.Duration
	AnalysisDelay   time.Duration
	VisualizerBars  int
}

// Load reads an optional .env file and the environment, applies defaults,
// and exits if the result is invalid.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load env file", "path", envFile, "error", err.Error())
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{
		AppName:         os.Getenv("APP_NAME"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		TranscribeModel: os.Getenv("TRANSCRIBE_MODEL"),
	}

	cfg.ReplyDelay = getEnvDuration("REPLY_DELAY", time.Second)
	cfg.AnalysisDelay = getEnvDuration("ANALYSIS_DELAY", 1500*time.Millisecond)
	cfg.VisualizerBars = getEnvInt("VISUALIZER_BARS", 20)

	if cfg.AppName == "" {
		cfg.AppName = "wellness_companion"
	}
	if cfg.TranscribeModel == "" {
		cfg.TranscribeModel = "whisper-1"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.ReplyDelay < 0 {
		return errors.New("REPLY_DELAY must be >= 0")
	}
	if c.AnalysisDelay < 0 {
		return errors.New("ANALYSIS_DELAY must be >= 0")
	}
	if c.VisualizerBars < 1 {
		return fmt.Errorf("VISUALIZER_BARS must be >= 1, got %d", c.VisualizerBars)
	}
	return nil
}

// StatsEnabled reports whether detection counts should be stored.
func (c Config) StatsEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
