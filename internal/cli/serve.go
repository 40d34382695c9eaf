package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/api"
	"cpu-scheduler-sim/internal/store"
)

func newServeCmd() *cobra.Command {
	var port int
	var dbPath string
	var noStore bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}

			var st store.Store
			if !noStore {
				sq, err := store.NewSQLiteStore(cfg.DBPath, logger)
				if err != nil {
					return err
				}
				defer sq.Close()
				if err := sq.Migrate(cmd.Context()); err != nil {
					return err
				}
				st = sq
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, st, logger), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				app.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr, "db", cfg.DBPath, "store", !noStore)
			return app.Listen(addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite path for stored runs (overrides config)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Disable run storage")
	return cmd
}

