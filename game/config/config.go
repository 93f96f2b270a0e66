package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by Load.
const (
	EnvSeed  = "KING_ALBERT_SEED"
	EnvASCII = "KING_ALBERT_ASCII"
	EnvDebug = "KING_ALBERT_DEBUG"
)

// Options holds the runtime options shared by every mode. These tune the
// environment a game runs in, not the rules of the game itself.
type Options struct {
	// Seed for the deck shuffle. Zero picks a time-based seed.
	Seed int64
	// ASCII replaces suit glyphs with S/H/D/C on rendered boards.
	ASCII bool
	// Debug enables verbose logging.
	Debug bool
}

// Default returns the options used when nothing is configured.
func Default() *Options {
	return &Options{}
}

// Load reads options from the environment, honoring a .env file in the
// working directory if one exists.
func Load() (*Options, error) {
	// Ignore a missing .env; any other read error is worth surfacing.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	opts := Default()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		opts.Seed = seed
	}

	var err error
	if opts.ASCII, err = boolEnv(EnvASCII); err != nil {
		return nil, err
	}
	if opts.Debug, err = boolEnv(EnvDebug); err != nil {
		return nil, err
	}

	return opts, nil
}

func boolEnv(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return b, nil
}
