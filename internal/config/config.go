package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AthenaConfig holds the defaults for query submission.
type AthenaConfig struct {
	WorkGroup           string `yaml:"workGroup,omitempty" json:"workGroup,omitempty"`
	Catalog             string `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Database            string `yaml:"database,omitempty" json:"database,omitempty"`
	ResultBucket        string `yaml:"resultBucket,omitempty" json:"resultBucket,omitempty"`
	ResultPrefix        string `yaml:"resultPrefix,omitempty" json:"resultPrefix,omitempty"`
	PollIntervalSeconds int    `yaml:"pollIntervalSeconds,omitempty" json:"pollIntervalSeconds,omitempty"`
	TimeoutSeconds      int    `yaml:"timeoutSeconds,omitempty" json:"timeoutSeconds,omitempty"`
}

// FileConfig is the content of ~/.config/awskit/config.yaml.
type FileConfig struct {
	Profile  string       `yaml:"profile,omitempty" json:"profile,omitempty"`
	Region   string       `yaml:"region,omitempty" json:"region,omitempty"`
	CacheDir string       `yaml:"cacheDir,omitempty" json:"cacheDir,omitempty"`
	Athena   AthenaConfig `yaml:"athena,omitempty" json:"athena,omitempty"`
}

type Config struct {
	ConfigDir string
	File      *FileConfig
}

var ErrNoConfigFile = errors.New("no config file found")

func DefaultConfigDir() (string, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".config", "awskit"), nil
}

// NewConfig loads the tool config from the default directory. A missing file
// yields an empty config.
func NewConfig() (*Config, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

func Load(dir string) (*Config, error) {
	cfg := &Config{ConfigDir: dir}

	fileConfig, err := loadConfigFile(dir)
	if err != nil {
		if errors.Is(err, ErrNoConfigFile) {
			cfg.File = &FileConfig{}
			return cfg, nil
		}
		return nil, err
	}
	cfg.File = fileConfig
	return cfg, nil
}

func loadConfigFile(dir string) (*FileConfig, error) {
	configFilePath, err := FindConfigFile(dir)
	if err != nil {
		return nil, err
	}

	fileData, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(fileData, &parsed); err != nil {
		if err := json.Unmarshal(fileData, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFilePath, err)
		}
	}

	return &parsed, nil
}

func FindConfigFile(dir string) (string, error) {
	names := []string{"config.yml", "config.yaml", "config.json"}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", ErrNoConfigFile
	} else if err != nil {
		return "", fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}

	for _, name := range names {
		possiblePath := filepath.Join(dir, name)
		if _, err := os.Stat(possiblePath); err == nil {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}

func (c *Config) Save() error {
	configFilePath := filepath.Join(c.ConfigDir, "config.yaml")
	if err := os.MkdirAll(c.ConfigDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c.File)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
