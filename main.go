// Command king-albert plays King Albert patience.
//
// It supports three modes:
//  1. "play" (default) - the interactive terminal game
//  2. "mcp" - an MCP stdio server exposing the game as tools
//  3. "solve" - random greedy playouts of a deal, reporting the best result
//
// Runtime options come from the environment (with .env support) and can be
// overridden per command with flags.
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/matt-harvey/king-albert/game/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "King Albert"
)

func main() {
	opts, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	root := &cli.Command{
		Name:           "king-albert",
		Usage:          "King Albert patience",
		Version:        Version,
		DefaultCommand: "play",
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "Play interactively in the terminal",
				Flags: gameFlags(opts),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))
					return runPlay(cmd.Int64("seed"), cmd.Bool("ascii"))
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve the game to MCP clients over stdio",
				Flags: gameFlags(opts),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))
					return runMCP(cmd.Bool("ascii"))
				},
			},
			{
				Name:  "solve",
				Usage: "Run random greedy playouts of a deal and report the best",
				Flags: append(gameFlags(opts),
					&cli.IntFlag{
						Name:  "attempts",
						Usage: "number of playouts to run",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "max-moves",
						Usage: "move cap per playout",
						Value: 300,
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))
					return runSolve(cmd.Int64("seed"), cmd.Int("attempts"), cmd.Int("max-moves"), cmd.Bool("ascii"))
				},
			},
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s failed: %v", AppName, err)
	}
}

// gameFlags returns the flags shared by every mode, defaulted from the
// loaded environment configuration so flags override the environment.
func gameFlags(opts *config.Options) []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "deck shuffle seed (0 for a random deal)",
			Value: opts.Seed,
		},
		&cli.BoolFlag{
			Name:  "ascii",
			Usage: "render suits as S/H/D/C instead of glyphs",
			Value: opts.ASCII,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
			Value: opts.Debug,
		},
	}
}

func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}
