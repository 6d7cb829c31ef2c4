// Package config loads .rnlint.yml over defaults with a small set of
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/rnlint/internal/rule"
	"github.com/bartekus/rnlint/internal/scanner"
)

// FileName is the config discovered at the project root.
const FileName = ".rnlint.yml"

type Config struct {
	Scan struct {
		Extensions  []string `yaml:"extensions"`
		ExcludeDirs []string `yaml:"exclude_dirs"`
		GitTracked  bool     `yaml:"git_tracked"`
		MaxFileSize int64    `yaml:"max_file_size"`
		Jobs        int      `yaml:"jobs"`
	} `yaml:"scan"`

	Rules struct {
		Disabled   []string          `yaml:"disabled"`
		Severities map[string]string `yaml:"severities"` // rule id -> warning|error
		Packs      []string          `yaml:"packs"`      // extra YAML rule packs
	} `yaml:"rules"`

	Logging struct {
		Format string `yaml:"format"` // "text"|"json"
		Level  string `yaml:"level"`  // "debug"|"info"|"warn"|"error"
	} `yaml:"logging"`
}

func Default() Config {
	var c Config
	c.Scan.Extensions = scanner.DefaultExtensions()
	c.Scan.ExcludeDirs = scanner.DefaultExcludeDirs()
	c.Logging.Format = "text"
	c.Logging.Level = "warn"
	return c
}

// Load reads the config at path over defaults. An empty path loads pure
// defaults plus env overrides. A missing explicit path, unparseable
// YAML, or an invalid value is a configuration error.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Env overrides (simple, explicit)
	if v := os.Getenv("RNLINT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("RNLINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RNLINT_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("RNLINT_JOBS: %w", err)
		}
		c.Scan.Jobs = n
	}

	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Discover returns the config path at the project root if one exists.
func Discover(root string) string {
	p := filepath.Join(root, FileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Settings converts the rule section into registry settings, validating
// severity names.
func (c Config) Settings() (rule.Settings, error) {
	s := rule.Settings{
		Disabled:   make(map[string]bool, len(c.Rules.Disabled)),
		Severities: make(map[string]rule.Severity, len(c.Rules.Severities)),
	}
	for _, id := range c.Rules.Disabled {
		s.Disabled[id] = true
	}
	for id, sev := range c.Rules.Severities {
		parsed, err := rule.ParseSeverity(sev)
		if err != nil {
			return s, fmt.Errorf("rule %s: %w", id, err)
		}
		s.Severities[id] = parsed
	}
	return s, nil
}

func (c Config) validate() error {
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q (want text or json)", c.Logging.Format)
	}
	if c.Scan.MaxFileSize < 0 {
		return fmt.Errorf("scan.max_file_size must be >= 0")
	}
	return nil
}
