package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/tasks"
	"github.com/erichgess/tisk/internal/view"
)

var errNoTask = errors.New("must have a task checked out or provide an id")

var noteCmd = &cobra.Command{
	Use:   "note [NOTE]",
	Short: "Add a note to a task or list its notes",
	Long: `Add a note to a task.

The note goes to the checked out task unless --id is given. Without a NOTE,
or with --list, the notes of the task are printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNote,
}

func init() {
	noteCmd.Flags().Int("id", 0, "Task ID; overrides the checked out task and is required if none is checked out")
	noteCmd.Flags().BoolP("list", "l", false, "List the notes of the task")
}

func runNote(cmd *cobra.Command, args []string) error {
	listNotes, _ := cmd.Flags().GetBool("list")

	id, err := noteTarget(cmd)
	if err != nil {
		return err
	}

	if listNotes || len(args) == 0 {
		return readTasks(cmd, func(list *tasks.List) error {
			task := list.Get(id)
			if task == nil {
				return fmt.Errorf("%w %d", tasks.ErrNotFound, id)
			}
			return view.Notes(cmd.OutOrStdout(), task.Notes, displayOptions(cmd))
		})
	}

	return updateTasks(cmd, func(list *tasks.List) error {
		_, err := list.AddNote(id, args[0])
		return err
	})
}

// noteTarget returns the task selected with --id, or the checked out task.
func noteTarget(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("id") {
		id, _ := cmd.Flags().GetInt("id")
		if id < 0 {
			return 0, fmt.Errorf("invalid ID %d, must be an integer greater than or equal to 0", id)
		}
		return id, nil
	}

	if env.taskDir == "" {
		return 0, errNoTask
	}
	id, ok, err := tasks.ReadCheckout(env.taskDir)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errNoTask
	}
	return id, nil
}
