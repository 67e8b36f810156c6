package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/textgate/textgate/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".textgate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .textgate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .textgate.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg := mergeConfig(domain.DefaultConfig(), raw)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// fileConfig mirrors domain.Config with pointer fields so a key that is
// present in the file, even with a zero value, can be told apart from one
// that is absent.
type fileConfig struct {
	Policy struct {
		MinWords *int `yaml:"min_words"`
	} `yaml:"policy"`
	Scorer struct {
		Endpoint *string        `yaml:"endpoint"`
		Timeout  *time.Duration `yaml:"timeout"`
		RetryMax *int           `yaml:"retry_max"`
	} `yaml:"scorer"`
	Server struct {
		Addr         *string `yaml:"addr"`
		MaxBodyBytes *int64  `yaml:"max_body_bytes"`
	} `yaml:"server"`
	Log struct {
		Level *string `yaml:"level"`
		JSON  *bool   `yaml:"json"`
	} `yaml:"log"`
}

// mergeConfig overlays the keys present in the file on top of defaults.
// An explicit zero wins, except min_words where 0 means the default.
func mergeConfig(base domain.Config, f fileConfig) domain.Config {
	result := base

	if v := f.Policy.MinWords; v != nil && *v != 0 {
		result.Policy.MinWords = *v
	}

	setIfPresent(&result.Scorer.Endpoint, f.Scorer.Endpoint)
	setIfPresent(&result.Scorer.Timeout, f.Scorer.Timeout)
	setIfPresent(&result.Scorer.RetryMax, f.Scorer.RetryMax)

	setIfPresent(&result.Server.Addr, f.Server.Addr)
	setIfPresent(&result.Server.MaxBodyBytes, f.Server.MaxBodyBytes)

	setIfPresent(&result.Log.Level, f.Log.Level)
	setIfPresent(&result.Log.JSON, f.Log.JSON)

	return result
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
