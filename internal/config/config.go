// Package config loads program defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/iw2rmb/clozify/cloze"
)

const (
	EnvTag       = "CLOZIFY_TAG"
	EnvAssignID  = "CLOZIFY_ASSIGN_ID"
	EnvSeparator = "CLOZIFY_SEPARATOR"
	EnvLogFile   = "CLOZIFY_LOG_FILE"
)

// Config holds the program settings before flag overrides.
type Config struct {
	Cloze   cloze.Options
	LogFile string
}

// DotEnvFile is the optional file Load reads before the environment.
const DotEnvFile = ".env"

// Load reads DotEnvFile from the working directory, then the process
// environment. Unset variables keep cloze.DefaultOptions.
func Load() (Config, error) {
	return LoadFile(DotEnvFile)
}

// LoadFile is Load with an explicit dotenv path. A missing file is skipped;
// a malformed one is an error. Variables already set in the environment win.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Cloze: cloze.DefaultOptions()}

	if v, ok := lookup(EnvTag); ok {
		cfg.Cloze.Tag = v
	}
	if v, ok := lookup(EnvSeparator); ok {
		cfg.Cloze.Separator = v
	}
	if v, ok := lookup(EnvAssignID); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvAssignID, err)
		}
		cfg.Cloze.AssignID = b
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	return cfg, nil
}
