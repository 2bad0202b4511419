package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/autolist/editor"
)

type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the interactive editor with list autoformatting",
		UsageText: "autolist edit [file]",
		Description: `Opens file (or an empty document) in a terminal editor. Typing "1. "
at the start of a paragraph turns it into a list item.

Logs go to the default log file unless --log-file is set, since the
editor owns the terminal.

Keys: ctrl+s saves to file, f1 toggles help, ctrl+c or ctrl+q quits.`,
		Before: cmd.before,
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) before(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if cmd.flags.LogFile != "" {
		return ctx, nil
	}
	return ctx, cmd.flags.SetupLogger(DefaultLogFile())
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()

	var text string
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// New file, created on save.
		case err != nil:
			return fmt.Errorf("read %s: %w", path, err)
		default:
			text = string(data)
		}
	}

	m := newEditModel(cmd.flags, path, text)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	if fm, ok := final.(editModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

type editModel struct {
	editor editor.Model
	path   string
	status string
	help   bool
	err    error
}

func newEditModel(flags *Flags, path, text string) editModel {
	cfg := flags.config()
	logger := flags.Logger
	layout := flags.layout()

	return editModel{
		editor: editor.New(editor.Config{
			Text:          text,
			ShowLineNums:  cfg.ShowLineNums,
			Style:         editor.DefaultStyle(),
			TabStops:      layout.DefaultTabStops,
			PointsPerCell: layout.PointsPerCell,
			Logger:        &logger,
		}),
		path: path,
	}
}

func (m editModel) Init() tea.Cmd { return nil }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve the last line for the status bar.
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		case "f1":
			m.help = !m.help
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *editModel) save() {
	if m.path == "" {
		m.status = "no file to save to"
		return
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Buffer().Text()), 0o644); err != nil {
		m.err = fmt.Errorf("write %s: %w", m.path, err)
		m.status = m.err.Error()
		return
	}
	m.err = nil
	m.status = "saved " + m.path
}

func (m editModel) View() string {
	st := m.editor.Stats()
	status := fmt.Sprintf("lists: %d  tab stop fixes: %d", st.Converted, st.Corrected)
	if m.status != "" {
		status = m.status + "  " + status
	}
	view := m.editor.View() + "\n" + status
	if m.help {
		view = m.withHelp(view)
	}
	return view
}
