package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/project"
	"github.com/erichgess/tisk/internal/tasks"
	"github.com/erichgess/tisk/internal/terminal"
	"github.com/erichgess/tisk/internal/view"
)

var headerStyle = lipgloss.NewStyle().Underline(true)

// openStore opens the task store of the current project.
func openStore() (tasks.Store, error) {
	if env.taskDir == "" {
		return nil, project.ErrNoProject
	}
	return tasks.OpenStore(env.taskDir, env.cfg.Storage.Backend, env.cfg.Storage.Database)
}

// readTasks loads the task list and passes it to fn. Nothing is written.
func readTasks(cmd *cobra.Command, fn func(*tasks.List) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read tasks: %w", err)
	}
	return fn(list)
}

// updateTasks loads the task list, applies fn and writes the list back.
// The list is not written when fn fails.
func updateTasks(cmd *cobra.Command, fn func(*tasks.List) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read tasks: %w", err)
	}
	if err := fn(list); err != nil {
		return err
	}

	n, err := store.Save(cmd.Context(), list)
	if err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	slog.Debug("saved tasks", "count", n)
	return nil
}

// parseID parses a task ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid ID %q, must be an integer greater than or equal to 0", arg)
	}
	return id, nil
}

// displayOptions returns the table settings for cmd's output. The width is
// taken from --width, then display.width, then the terminal.
func displayOptions(cmd *cobra.Command) view.Options {
	opts := view.Options{
		Width:      width,
		SplitLimit: env.cfg.Display.SplitLimit,
		DateFormat: env.cfg.Display.DateFormat,
	}
	if opts.Width <= 0 {
		opts.Width = env.cfg.Display.Width
	}
	if opts.Width <= 0 {
		opts.Width = terminal.StdoutWidth()
	}

	if f, ok := cmd.OutOrStdout().(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		opts.HeaderStyle = headerStyle.Render
	}
	return opts
}
