package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, short)
}

// envConfig holds process-level defaults, overridable per flag.
type envConfig struct {
	LogLevel     string `env:"CODEKIT_LOG_LEVEL" envDefault:"info"`
	ProfilesFile string `env:"CODEKIT_PROFILES" envDefault:"profiles.yaml"`
}

func main() {
	// The .env file might not exist and that's ok.
	_ = godotenv.Load()

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse environment: %v\n", err)
		os.Exit(1)
	}

	app := &cli.Command{
		Name:      "codekit",
		Usage:     "Generate unique, pattern-constrained random codes",
		UsageText: "codekit [global options] command [command options]",
		Description: `Codekit renders batches of unique codes (referral codes, vouchers, PINs)
from a template where '#' marks random positions, filled from a chosen
character set. A batch either yields exactly the requested number of
distinct codes or fails up front when the template cannot hold them.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("CODEKIT_LOG_LEVEL"),
				Value:       envCfg.LogLevel,
				Destination: &envCfg.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(envCfg.LogLevel); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	app = newGenCmd().register(app)
	app = newProfilesCmd(&envCfg).register(app)

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("codekit failed")
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsedLevel)
	return nil
}
