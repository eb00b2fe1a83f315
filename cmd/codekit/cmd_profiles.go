package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/codekit/pkg/profile"
)

type profilesCmd struct {
	env  *envConfig
	file string
}

func newProfilesCmd(env *envConfig) *profilesCmd {
	return &profilesCmd{env: env}
}

// register adds the profiles command to the application.
func (cmd *profilesCmd) register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "profiles",
		Usage:     "Generate codes from named profiles in a YAML file",
		UsageText: "codekit profiles [options] [profile...]",
		Description: `Resolves each named profile from the profiles file and generates its
batch. Without arguments, lists the available profile names.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the profiles YAML file",
				Sources:     cli.EnvVars("CODEKIT_PROFILES"),
				Value:       cmd.env.ProfilesFile,
				Destination: &cmd.file,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *profilesCmd) run(ctx context.Context, c *cli.Command) error {
	profiles, err := profile.LoadFile(cmd.file)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	names := c.Args().Slice()
	if len(names) == 0 {
		out := c.Root().Writer
		for _, name := range profiles.Names() {
			_, _ = fmt.Fprintln(out, name)
		}
		return nil
	}

	for _, name := range names {
		cfg, err := profiles.Resolve(name)
		if err != nil {
			return err
		}

		log.Debug().Str("profile", name).Str("file", cmd.file).Msg("resolved profile")

		if err := generateAndPrint(c, cfg); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}
