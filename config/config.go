// Package config loads the lpc settings.
//
// Values are resolved in this order, the last one wins: built-in defaults,
// the YAML configuration file, a .env file, LPC_* environment variables and
// finally command line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/etnz/lifeplan"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "lpc.yaml"

// Environment variables overriding the configuration file.
const (
	EnvCurrency    = "LPC_CURRENCY"
	EnvDefaultAge  = "LPC_DEFAULT_AGE"
	EnvCurrentYear = "LPC_CURRENT_YEAR"
	EnvMember      = "LPC_MEMBER"
	EnvLogLevel    = "LPC_LOG_LEVEL"
	EnvPlanDir     = "LPC_PLAN_DIR"
	EnvTopN        = "LPC_TOP_N"
	EnvAssistModel = "LPC_ASSIST_MODEL"
)

// Config holds the lpc configuration.
type Config struct {
	Currency    string `yaml:"currency"`     // used when the plan does not set one.
	DefaultAge  int    `yaml:"default_age"`  // age when no member is selected.
	CurrentYear int    `yaml:"current_year"` // year in which member ages are known.
	Member      string `yaml:"member"`       // id or name of the member anchoring ages.
	LogLevel    string `yaml:"log_level"`
	PlanDir     string `yaml:"plan_dir"`
	TopN        int    `yaml:"top_n"`
	Assist      struct {
		Model string `yaml:"model"`
	} `yaml:"assist"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Currency:    "JPY",
		DefaultAge:  lifeplan.DefaultAge,
		CurrentYear: time.Now().Year(),
		LogLevel:    "info",
		PlanDir:     ".",
	}
	cfg.Assist.Model = "gemini-2.5-pro"
	return cfg
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	strs := []struct {
		env string
		dst *string
	}{
		{EnvCurrency, &c.Currency},
		{EnvMember, &c.Member},
		{EnvLogLevel, &c.LogLevel},
		{EnvPlanDir, &c.PlanDir},
		{EnvAssistModel, &c.Assist.Model},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		env string
		dst *int
	}{
		{EnvDefaultAge, &c.DefaultAge},
		{EnvCurrentYear, &c.CurrentYear},
		{EnvTopN, &c.TopN},
	}
	var errs error
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", i.env, err))
			continue
		}
		*i.dst = n
	}
	return errs
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	var errs error
	if c.DefaultAge < 0 {
		errs = errors.Join(errs, fmt.Errorf("default_age must not be negative, got %d", c.DefaultAge))
	}
	if c.TopN < 0 {
		errs = errors.Join(errs, fmt.Errorf("top_n must not be negative, got %d", c.TopN))
	}
	if c.PlanDir == "" {
		errs = errors.Join(errs, errors.New("plan_dir is required"))
	}
	return errs
}
