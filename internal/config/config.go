// Package config reads the settings shared by the airroutes binaries from the
// environment, after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/airroutes/dataset"
)

// Environment keys.
const (
	KeyDataDir            = "DATA_DIR"
	KeyAirlines           = "AIRLINES"
	KeyDatabaseDriver     = "DATABASE_DRIVER"
	KeyDatabaseURL        = "DATABASE_URL"
	KeyPort               = "PORT"
	KeyExclusionCacheSize = "EXCLUSION_CACHE_SIZE"
	KeyQueryTimeout       = "QUERY_TIMEOUT"
)

// Airline selection names accepted by AIRLINES besides an explicit list.
const (
	SelectionDefault = "default"
	SelectionMore    = "more"
)

// ErrInvalid is returned when a variable is set to a value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	DataDir            string
	Airlines           []string
	DatabaseDriver     string
	DatabaseURL        string
	Port               string
	ExclusionCacheSize int
	QueryTimeout       time.Duration
}

// UseDatabase reports whether records come from SQL rather than DataDir.
func (c Config) UseDatabase() bool { return c.DatabaseURL != "" }

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }

// Load reads .env (when present) into the environment and resolves Config.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	LoadDotEnv()

	return FromEnv()
}

// LoadDotEnv copies a .env file in the working directory, if any, into the
// environment without overriding variables that are already set.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// FromEnv resolves Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		DataDir:        Get(KeyDataDir, "data"),
		DatabaseDriver: Get(KeyDatabaseDriver, "pgx"),
		DatabaseURL:    Get(KeyDatabaseURL, ""),
		Port:           Get(KeyPort, "8080"),
	}

	var err error
	if cfg.Airlines, err = Airlines(Get(KeyAirlines, SelectionDefault)); err != nil {
		return Config{}, err
	}

	if cfg.ExclusionCacheSize, err = strconv.Atoi(Get(KeyExclusionCacheSize, "32")); err != nil || cfg.ExclusionCacheSize <= 0 {
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, KeyExclusionCacheSize, os.Getenv(KeyExclusionCacheSize))
	}

	if cfg.QueryTimeout, err = time.ParseDuration(Get(KeyQueryTimeout, "10s")); err != nil || cfg.QueryTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, KeyQueryTimeout, os.Getenv(KeyQueryTimeout))
	}

	switch cfg.DatabaseDriver {
	case "pgx", "mysql":
	default:
		return Config{}, fmt.Errorf("%w: %s=%q (want pgx or mysql)", ErrInvalid, KeyDatabaseDriver, cfg.DatabaseDriver)
	}

	return cfg, nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

// Airlines resolves a selection: "default", "more", or a comma-separated list
// of airline codes. Codes are upper-cased; blanks are dropped.
func Airlines(selection string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(selection)) {
	case SelectionDefault:
		return append([]string(nil), dataset.AirlineCodes...), nil
	case SelectionMore:
		return append([]string(nil), dataset.MoreAirlineCodes...), nil
	}

	var out []string
	for _, code := range strings.Split(selection, ",") {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			out = append(out, code)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalid, KeyAirlines, selection)
	}

	return out, nil
}
