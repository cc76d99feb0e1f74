package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Environment variables holding the Jira credentials.
const (
	EnvLogin  = "JLOG_LOGIN"
	EnvToken  = "JLOG_API_TOKEN"
	EnvDomain = "JLOG_API_DOMAIN"

	// EnvBaseURL replaces the Atlassian Cloud URL derived from the domain,
	// e.g. for a self-hosted Jira.
	EnvBaseURL = "JLOG_API_BASE_URL"
)

// Config defines the structure of the jira-worklog configuration.
type Config struct {
	Login  string `yaml:"login"`
	Token  string `yaml:"token"`
	Domain string `yaml:"domain"`
	Query  string `yaml:"query,omitempty"`

	BaseURL string `yaml:"base_url,omitempty"`
}

// FilePath returns the absolute path to the configuration file.
// JLOG_CONFIG overrides the default location.
func FilePath() (string, error) {
	if p := os.Getenv("JLOG_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".jira-worklog.yaml"), nil
}

// Load loads the configuration from the file. A missing file yields an
// empty Config and os.ErrNotExist.
func Load() (Config, error) {
	var cfg Config
	path, err := FilePath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config file not found at %s: %w", path, os.ErrNotExist)
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Save saves the configuration to the file.
func Save(cfg Config) error {
	path, err := FilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return nil
}

// SetValue updates a specific configuration key.
func SetValue(key, value string) error {
	cfg, err := Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	switch key {
	case "login":
		cfg.Login = value
	case "token":
		cfg.Token = value
	case "domain":
		cfg.Domain = value
	case "query":
		cfg.Query = value
	case "base_url":
		cfg.BaseURL = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return Save(cfg)
}

// Resolve builds the effective configuration. A .env file in the working
// directory is loaded first without overriding variables already set, then
// the environment takes precedence over the config file. Nothing is
// validated: absent credentials surface as authentication errors from Jira.
// Without a resolvable config path (no $HOME, no JLOG_CONFIG) only the
// environment is used.
func Resolve() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if _, err := FilePath(); err == nil {
		loaded, err := Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		cfg = loaded
	}
	return overlayEnv(cfg), nil
}

func overlayEnv(cfg Config) Config {
	if v := os.Getenv(EnvLogin); v != "" {
		cfg.Login = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvDomain); v != "" {
		cfg.Domain = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}

// PrintRaw prints the raw configuration (for view command).
func PrintRaw(cfg Config) {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		fmt.Printf("Error formatting config: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// PrintMasked prints the configuration with the token masked (for show command).
func PrintMasked(cfg Config) {
	fmt.Printf("Login: %s\n", cfg.Login)
	fmt.Printf("API Token: %s\n", MaskToken(cfg.Token))
	fmt.Printf("Domain: %s\n", cfg.Domain)
	fmt.Printf("Default Query: %s\n", cfg.Query)
	if cfg.BaseURL != "" {
		fmt.Printf("Base URL: %s\n", cfg.BaseURL)
	}
}

// MaskToken keeps the first and last four characters of long tokens.
func MaskToken(token string) string {
	if len(token) > 8 {
		return token[:4] + "..." + token[len(token)-4:]
	}
	return token
}
