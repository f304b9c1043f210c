package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new tisk project in this directory",
	Long: `Initialize a tisk project.

Creates .tisk/ with a default config.yaml in the current directory (or the
directory given with --dir). Running init in an initialized directory leaves
it untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	result, err := project.Initialize(env.start)
	if err != nil {
		return fmt.Errorf("failed to initialize tisk project: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
