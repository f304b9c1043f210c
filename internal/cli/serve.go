package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/erichgess/tisk/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only HTTP view of the tasks",
	Long: `Serve the tasks of this project over HTTP until interrupted.

Routes:
  GET /tasks              task table as text (?status=open|closed|all, ?width=N)
  GET /tasks/:id/notes    notes table of a task as text
  GET /api/tasks          tasks as JSON (?status=open|closed|all)
  GET /api/tasks/:id      one task as JSON`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "localhost:8080", "Address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	display := displayOptions(cmd)
	display.HeaderStyle = nil
	if width <= 0 && env.cfg.Display.Width <= 0 {
		// The terminal width means nothing to HTTP clients
		display.Width = 0
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.NewServer(store, display).Run(ctx, addr)
}
