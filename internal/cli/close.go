package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/tasks"
)

var closeCmd = &cobra.Command{
	Use:   "close ID",
	Short: "Close a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runClose,
}

func init() {
	closeCmd.Flags().StringP("note", "n", "", "Add a note to the task before closing it")
}

func runClose(cmd *cobra.Command, args []string) error {
	note, _ := cmd.Flags().GetString("note")

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return updateTasks(cmd, func(list *tasks.List) error {
		slog.Debug("closing task", "id", id)
		if note != "" {
			if _, err := list.AddNote(id, note); err != nil {
				return err
			}
		}
		task, err := list.Close(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d was closed\n", task.ID)
		return nil
	})
}
