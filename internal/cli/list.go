package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/project"
	"github.com/erichgess/tisk/internal/tasks"
	"github.com/erichgess/tisk/internal/terminal"
	"github.com/erichgess/tisk/internal/view"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of this project",
	Long: `List tasks ordered by priority (highest first), then by creation time.

Open tasks are listed unless --all or --closed is given. With --watch the
table is redrawn whenever the tasks change, until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	registerListFlags(listCmd)
}

// registerListFlags adds the list flags to cmd. The root command shares
// them since it lists tasks by default.
func registerListFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false, "Display all tasks, regardless of state")
	cmd.Flags().Bool("open", false, "Display open tasks")
	cmd.Flags().Bool("closed", false, "Display closed tasks")
	cmd.Flags().Bool("watch", false, "Redraw the list when tasks change")
	cmd.MarkFlagsMutuallyExclusive("all", "open", "closed")
}

func runList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	closed, _ := cmd.Flags().GetBool("closed")
	watch, _ := cmd.Flags().GetBool("watch")

	filter := tasks.FilterOpen
	switch {
	case all:
		filter = tasks.FilterAll
	case closed:
		filter = tasks.FilterClosed
	}

	out := cmd.OutOrStdout()
	if !watch {
		return renderList(cmd, out, filter)
	}
	return watchList(cmd, out, filter)
}

func renderList(cmd *cobra.Command, w io.Writer, filter string) error {
	return readTasks(cmd, func(list *tasks.List) error {
		selected, err := list.Select(filter)
		if err != nil {
			return err
		}
		return view.Tasks(w, selected, displayOptions(cmd))
	})
}

// watchList renders the list, then renders it again after every change to
// the task directory until the process is interrupted.
func watchList(cmd *cobra.Command, w io.Writer, filter string) error {
	if env.taskDir == "" {
		return project.ErrNoProject
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clearTTY := false
	if f, ok := w.(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		clearTTY = true
	}

	redraw := func() {
		if clearTTY {
			fmt.Fprint(w, clearScreen)
		}
		if err := renderList(cmd, w, filter); err != nil {
			slog.Error("failed to render tasks", "error", err)
		}
	}

	if clearTTY {
		fmt.Fprint(w, clearScreen)
	}
	if err := renderList(cmd, w, filter); err != nil {
		return err
	}
	return watchTasks(ctx, env.taskDir, redraw)
}

// watchTasks is replaced in tests.
var watchTasks = tasks.Watch
