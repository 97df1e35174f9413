package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	AI       AIConfig       `yaml:"ai"`
	Sampling SamplingConfig `yaml:"sampling"`
	Activity ActivityConfig `yaml:"activity"`
	Display  DisplayConfig  `yaml:"display"`
}

// AIConfig contains generation model configuration
type AIConfig struct {
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	TopK            int32   `yaml:"top_k"`
	TopP            float32 `yaml:"top_p"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

// SamplingConfig contains file sampling limits
type SamplingConfig struct {
	MaxFiles        int `yaml:"max_files"`
	MaxFileSize     int `yaml:"max_file_size"`
	MaxExcerptChars int `yaml:"max_excerpt_chars"`
	Workers         int `yaml:"workers"`
}

// ActivityConfig contains commit recency configuration
type ActivityConfig struct {
	RecencyMonths int `yaml:"recency_months"`
}

// DisplayConfig contains report presentation configuration
type DisplayConfig struct {
	SegmentChars int `yaml:"segment_chars"`
}

// Credentials holds the secrets read from the environment. BotToken is
// passed through to an attached chat front end and is never used by the
// analysis pipeline itself.
type Credentials struct {
	GithubToken  string
	GeminiAPIKey string
	BotToken     string
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Model:           "gemini-2.5-flash",
			Temperature:     0.2,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2000,
		},
		Sampling: SamplingConfig{
			MaxFiles:        50,
			MaxFileSize:     500000,
			MaxExcerptChars: 1000,
			Workers:         4,
		},
		Activity: ActivityConfig{
			RecencyMonths: 12,
		},
		Display: DisplayConfig{
			SegmentChars: 4000,
		},
	}
}

// LoadConfig loads configuration from the specified file. Keys absent
// from the file keep their built-in defaults. With no path given, the
// default file is used when present and the built-in defaults otherwise;
// an explicitly named file must exist.
func LoadConfig(configPath string) (*Config, error) {
	path := configPath
	if path == "" {
		path = "config/development.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if configPath == "" {
			return Default(), nil
		}
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadCredentials reads the service secrets from the environment.
func LoadCredentials() Credentials {
	return Credentials{
		GithubToken:  os.Getenv("GITHUB_TOKEN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		BotToken:     os.Getenv("BOT_TOKEN"),
	}
}
