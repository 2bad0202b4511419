package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/editor"
)

type FormatCmd struct {
	flags *Flags
	raw   bool
	stats bool
}

// NewFormatCmd creates a new format command.
func NewFormatCmd(flags *Flags) *FormatCmd {
	return &FormatCmd{flags: flags}
}

// Register adds the format command to the application.
func (cmd *FormatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "format",
		Usage:     "Type a file through the list autoformatter and print the result",
		UsageText: "autolist format [options] [file]",
		Description: `Reads text from file (or stdin when file is "-" or omitted) and types it
cluster by cluster into a document with autoformatting attached, the same way
the interactive editor would see it.

Paragraphs typed as "12. text" become list items. By default TABs are
expanded to each paragraph's tab stops; --raw prints them as-is.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print TAB characters instead of expanding them",
				Destination: &cmd.raw,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "report conversions and tab stop corrections on stderr",
				Destination: &cmd.stats,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FormatCmd) run(_ context.Context, c *cli.Command) error {
	root := c.Root()

	text, err := readInput(c.Args().First(), root.Reader)
	if err != nil {
		return err
	}

	cfg := cmd.flags.config()
	logger := cmd.flags.Logger
	b, stats := autoformat.Replay(text, autoformat.Config{
		DefaultTabStops: cfg.DefaultTabStops(),
		Logger:          &logger,
	})

	out := b.Text()
	if !cmd.raw {
		out = editor.RenderPlain(b, cmd.flags.layout())
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := fmt.Fprint(root.Writer, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cmd.stats {
		fmt.Fprintf(root.ErrWriter, "converted: %d, corrected: %d\n", stats.Converted, stats.Corrected)
	}
	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
