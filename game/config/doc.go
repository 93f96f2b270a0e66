// Package config provides runtime configuration for King Albert.
//
// Options are read from the environment, with .env file support for
// development:
//   - KING_ALBERT_SEED: deck shuffle seed (0 or unset for time-based)
//   - KING_ALBERT_ASCII: render suits as S/H/D/C instead of glyphs
//   - KING_ALBERT_DEBUG: verbose logging
//
// Command-line flags may override any loaded value; the config package only
// establishes the baseline.
package config
