package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/tasks"
)

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change properties of an existing task",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().IntP("priority", "p", 0, "New priority of the task (0+)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Nothing to change
	if !cmd.Flags().Changed("priority") {
		return nil
	}
	priority, _ := cmd.Flags().GetInt("priority")
	if priority < 0 {
		return fmt.Errorf("invalid priority %d, must be an integer greater than or equal to 0", priority)
	}

	return updateTasks(cmd, func(list *tasks.List) error {
		old, err := list.SetPriority(id, priority)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d priority set from %d to %d\n", id, old, priority)
		return nil
	})
}
