package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/autolist"
	"github.com/iw2rmb/autolist/internal/commands"
	"github.com/iw2rmb/autolist/internal/config"
)

func main() {
	ctx := context.Background()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "autolist",
		Usage:     "Autoformat ordered lists as you type",
		UsageText: "autolist [global options] command [command options]",
		Description: `autolist turns paragraphs typed as "12. text" into tab-structured list
items and keeps their tab stops aligned with the default layout.

Run 'autolist edit' for the interactive editor or 'autolist format' to
process a file.`,
		Version: autolist.VersionTag(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error); overrides the config file",
				Sources:     cli.EnvVars("AUTOLIST_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr for format, " + commands.DefaultLogFile() + " for edit)",
				Sources:     cli.EnvVars("AUTOLIST_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("AUTOLIST_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable colored output",
				Sources:     cli.EnvVars("AUTOLIST_NO_COLOR"),
				Destination: &flags.NoColor,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			if err := flags.SetupLogger(flags.LogFile); err != nil {
				return ctx, err
			}

			if flags.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			log.Debug().Str("config", flags.ConfigPath).Str("version", autolist.Version()).Msg("starting")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			flags.CloseLogger()
			return nil
		},
	}

	app = commands.NewEditCmd(flags).Register(app)
	app = commands.NewFormatCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
