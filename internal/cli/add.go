package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/tasks"
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new task to the project",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().IntP("priority", "p", 1, "Priority of the task (0+)")
	addCmd.Flags().StringP("note", "n", "", "Add a note to the new task")
}

func runAdd(cmd *cobra.Command, args []string) error {
	priority, _ := cmd.Flags().GetInt("priority")
	note, _ := cmd.Flags().GetString("note")

	if priority < 0 {
		return fmt.Errorf("invalid priority %d, must be an integer greater than or equal to 0", priority)
	}

	return updateTasks(cmd, func(list *tasks.List) error {
		slog.Debug("adding new task", "name", args[0], "priority", priority)
		id := list.Add(args[0], priority)
		if note != "" {
			if _, err := list.AddNote(id, note); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added task %d\n", id)
		return nil
	})
}
