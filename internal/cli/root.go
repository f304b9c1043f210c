package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/config"
	"github.com/erichgess/tisk/internal/logging"
	"github.com/erichgess/tisk/internal/project"
)

var (
	verbose bool
	width   int
	workDir string
	rootCmd *cobra.Command

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// env is the state every command runs with. It is filled in by
// PersistentPreRunE before any command handler runs.
var env struct {
	// start is the directory commands act on: --dir or the working directory.
	start string
	// taskDir is the project's .tisk directory, empty outside a project.
	taskDir string
	cfg     *config.Config
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "tisk",
		Short: "Task management with scoping",
		Long: `tisk tracks the tasks of a project in a .tisk directory next to its code.

Tasks are found by searching the current directory and its parents, so every
command works from anywhere inside the project. Run without a command to list
the open tasks.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setup,
		RunE:              runList, // Default action is list
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Table width (default: display.width, then the terminal width)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "Run as if tisk was started in this directory")

	registerListFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		return err
	}
	return nil
}

// setup locates the project, loads the merged configuration and installs
// the logger.
func setup(cmd *cobra.Command, args []string) error {
	start := workDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		start = wd
	}

	taskDir, err := project.Find(start)
	if err != nil && !errors.Is(err, project.ErrNoProject) {
		return err
	}

	cfg, err := config.Load(taskDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}

	env.start = start
	env.taskDir = taskDir
	env.cfg = cfg
	return nil
}
