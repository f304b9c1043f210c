package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/project"
	"github.com/erichgess/tisk/internal/tasks"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout ID",
	Short: "Check out a task",
	Long: `Check out a task.

Task specific commands such as note apply to the checked out task when no ID
is given. Checking out another task replaces the current one.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckout,
}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Release the checked out task",
	Args:  cobra.NoArgs,
	RunE:  runCheckin,
}

func runCheckout(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	err = readTasks(cmd, func(list *tasks.List) error {
		if list.Get(id) == nil {
			return fmt.Errorf("%w %d", tasks.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := tasks.WriteCheckout(env.taskDir, id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Checkout task %d\n", id)
	return nil
}

func runCheckin(cmd *cobra.Command, args []string) error {
	if env.taskDir == "" {
		return project.ErrNoProject
	}
	return tasks.Checkin(env.taskDir)
}
