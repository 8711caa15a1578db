package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amonks/gantt/task"
	"github.com/amonks/gantt/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only web timeline of the plan",
	Long: `Serve a read-only web timeline of the plan.

The page at / draws every task on a shared date axis and highlights the
critical path. JSON is available at /api/tasks, /api/critical-path, and
/api/summary. Tasks are re-read on every request.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr       string
	serveNoCritical bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, else 127.0.0.1:8080)")
	serveCmd.Flags().BoolVar(&serveNoCritical, "no-critical", false, "Do not highlight the critical path by default")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openTaskStoreWithConfig(cfg, task.OpenOptions{ReadOnly: true})
	if err != nil {
		return err
	}

	addr := cfg.ServeAddr()
	if cmd.Flags().Changed("addr") {
		addr = serveAddr
	}

	logger := log.New(os.Stderr, "gantt: ", log.LstdFlags)
	handler := web.NewHandler(web.Options{
		Source:       store,
		ShowCritical: cfg.ShowCritical() && !serveNoCritical,
		Logger:       logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.Serve(ctx, addr, handler, logger)
}
