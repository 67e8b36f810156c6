package domain

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultMinWords is the word count below which a text is considered too short.
const DefaultMinWords = 20

// ValidLogLevels enumerates the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds textgate configuration loaded from .textgate.yaml.
type Config struct {
	Policy Policy       `yaml:"policy" json:"policy"`
	Scorer ScorerConfig `yaml:"scorer" json:"scorer"`
	Server ServerConfig `yaml:"server" json:"server"`
	Log    LogConfig    `yaml:"log"    json:"log"`
}

// Policy tunes the validation rules. Zero values mean "use the default".
type Policy struct {
	MinWords int `yaml:"min_words" json:"min_words,omitempty"`
}

// ScorerConfig points at the external essay-scoring model.
type ScorerConfig struct {
	Endpoint string        `yaml:"endpoint"  json:"endpoint,omitempty"`
	Timeout  time.Duration `yaml:"timeout"   json:"timeout,omitempty"`
	RetryMax int           `yaml:"retry_max" json:"retry_max,omitempty"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr         string `yaml:"addr"           json:"addr,omitempty"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" json:"max_body_bytes,omitempty"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level" json:"level,omitempty"`
	JSON  bool   `yaml:"json"  json:"json,omitempty"`
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{MinWords: DefaultMinWords}
}

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() Config {
	return Config{
		Policy: DefaultPolicy(),
		Scorer: ScorerConfig{
			Timeout:  10 * time.Second,
			RetryMax: 3,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 64 << 10,
		},
		Log: LogConfig{Level: "info"},
	}
}

// EffectiveMinWords returns the configured minimum word count,
// falling back to DefaultMinWords if not specified.
func (p Policy) EffectiveMinWords() int {
	if p.MinWords > 0 {
		return p.MinWords
	}
	return DefaultMinWords
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Policy.MinWords < 0 {
		return fmt.Errorf("policy.min_words must be >= 0 (got %d)", c.Policy.MinWords)
	}

	if c.Scorer.Endpoint != "" {
		u, err := url.Parse(c.Scorer.Endpoint)
		if err != nil {
			return fmt.Errorf("scorer.endpoint: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("scorer.endpoint %q must be an absolute http(s) URL", c.Scorer.Endpoint)
		}
	}
	if c.Scorer.Timeout < 0 {
		return fmt.Errorf("scorer.timeout must be >= 0 (got %s)", c.Scorer.Timeout)
	}
	if c.Scorer.RetryMax < 0 {
		return fmt.Errorf("scorer.retry_max must be >= 0 (got %d)", c.Scorer.RetryMax)
	}

	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must be >= 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.Log.Level != "" && !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: debug, info, warn, error)", c.Log.Level)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
