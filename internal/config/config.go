package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	GitHubToken   string `json:"github_token"`
	GeminiAPIKey  string `json:"gemini_api_key"`
	GeminiModel   string `json:"gemini_model"`
	Language      string `json:"language"`
	CacheTTLHours int    `json:"cache_ttl_hours"`
	MaxPRs        int    `json:"max_prs"`
	PathFile      string `json:"path_file"`
}

const (
	defaultLang     = "en"
	defaultModel    = "gemini-1.5-flash"
	defaultCacheTTL = 24
	defaultMaxPRs   = 5
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".security-parser")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}
	config.PathFile = configPath

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:      defaultLang,
		GeminiModel:   defaultModel,
		CacheTTLHours: defaultCacheTTL,
		MaxPRs:        defaultMaxPRs,
		PathFile:      path,
	}

	// Tokens come from the environment until set explicitly
	config.GitHubToken = os.Getenv("GITHUB_TOKEN")
	config.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("configuration file path is not set")
	}

	dir := filepath.Dir(config.PathFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.GeminiModel == "" {
		config.GeminiModel = defaultModel
	}
	if config.CacheTTLHours <= 0 {
		config.CacheTTLHours = defaultCacheTTL
	}
	if config.MaxPRs <= 0 {
		config.MaxPRs = defaultMaxPRs
	}
	if config.GitHubToken == "" {
		config.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	if config.GeminiAPIKey == "" {
		config.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language must not be empty")
	}
	if config.GeminiModel == "" {
		return errors.New("gemini model must not be empty")
	}
	if config.CacheTTLHours <= 0 {
		return errors.New("cache TTL must be greater than 0")
	}
	if config.MaxPRs <= 0 {
		return errors.New("max PRs must be greater than 0")
	}
	return nil
}
