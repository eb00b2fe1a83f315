package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/codekit"
	"github.com/dmitrymomot/codekit/pkg/profile"
)

type genCmd struct {
	template string
	length   int64
	count    int64
	charset  string
	pool     string
	prefix   string
	suffix   string
}

func newGenCmd() *genCmd {
	return &genCmd{}
}

// register adds the gen command to the application.
func (cmd *genCmd) register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "gen",
		Usage:     "Generate a batch of unique codes",
		UsageText: "codekit gen [options]",
		Description: `Generates codes from an explicit template ('#' marks random positions)
or a plain length, printed one per line to stdout.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "code template, '#' marks a random position",
				Destination: &cmd.template,
			},
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "number of random positions (alternative to --template)",
				Destination: &cmd.length,
			},
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "number of unique codes to generate",
				Value:       1,
				Destination: &cmd.count,
			},
			&cli.StringFlag{
				Name:        "charset",
				Aliases:     []string{"c"},
				Usage:       "charset: numeric, alphabetic, alphanumeric, or custom",
				Value:       "alphanumeric",
				Destination: &cmd.charset,
			},
			&cli.StringFlag{
				Name:        "pool",
				Usage:       "character pool for the custom charset",
				Destination: &cmd.pool,
			},
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "literal prefix for every code",
				Destination: &cmd.prefix,
			},
			&cli.StringFlag{
				Name:        "suffix",
				Usage:       "literal suffix for every code",
				Destination: &cmd.suffix,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *genCmd) run(ctx context.Context, c *cli.Command) error {
	// No shape given at all: fall back to the default 8-character code.
	if cmd.template == "" && cmd.length == 0 {
		cmd.length = 8
	}

	cfg, err := profile.Profile{
		Template: cmd.template,
		Length:   int(cmd.length),
		Count:    int(cmd.count),
		Charset:  cmd.charset,
		Pool:     cmd.pool,
		Prefix:   cmd.prefix,
		Suffix:   cmd.suffix,
	}.Config()
	if err != nil {
		return err
	}

	return generateAndPrint(c, cfg)
}

// generateAndPrint runs one generation call, prints the codes to the command
// writer, and logs the batch stats to stderr.
func generateAndPrint(c *cli.Command, cfg codekit.Config) error {
	logger := log.With().Str("run_id", uuid.NewString()).Logger()

	start := time.Now()
	codes, err := codekit.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate %d codes: %w", cfg.Count, err)
	}

	logger.Info().
		Int("count", len(codes)).
		Str("pattern", cfg.Pattern.String()).
		Dur("elapsed", time.Since(start)).
		Msg("batch generated")

	out := c.Root().Writer
	for _, code := range codes {
		_, _ = fmt.Fprintln(out, code)
	}
	return nil
}
