package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/jsonrepair-go/jsonrepair/internal/api"
	"github.com/jsonrepair-go/jsonrepair/internal/cache"
	"github.com/jsonrepair-go/jsonrepair/internal/history"
	"github.com/jsonrepair-go/jsonrepair/internal/obslog"
	"github.com/jsonrepair-go/jsonrepair/internal/repair"
	"github.com/jsonrepair-go/jsonrepair/internal/repairconfig"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the repair engine as an HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := repairconfig.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := obslog.New(cfg.Debug)
			engine := repair.New(repair.DefaultRegistry,
				repair.WithLogger(logger),
				repair.WithMode(repair.Mode(cfg.Mode)),
				repair.WithAutoFlow(cfg.AutoFlow),
				repair.WithMaxIterations(cfg.MaxIterations),
			)

			var opts []api.ServerOption

			if cfg.Cache.Enabled {
				c, err := cache.NewLRU(cfg.Cache.LRUEntries)
				if err != nil {
					return fmt.Errorf("building cache: %w", err)
				}
				opts = append(opts, api.WithCache(c))
			}

			if cfg.History.Enabled {
				db, dialect, err := history.Open(cfg.History.DSN)
				if err != nil {
					return fmt.Errorf("opening history store: %w", err)
				}
				store := history.NewSQLStore(db, dialect)
				if err := store.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrating history store: %w", err)
				}
				opts = append(opts, api.WithHistory(store))
			}

			if cfg.API.RequireAuth {
				if cfg.API.APIKeyHash == "" && cfg.API.JWTSecret == "" {
					return fmt.Errorf("api.require_auth is set but neither api.jwt_secret nor api.api_key_hash is configured; run jsonrepair init")
				}
				auth := api.NewAuthService(cfg.API.JWTSecret, 24*time.Hour)
				opts = append(opts, api.WithAuth(auth, cfg.API.APIKeyHash))
			}

			server := api.NewServer(engine, opts...)

			addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
			httpServer := &http.Server{Addr: addr, Handler: server.Routes()}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Infow("listening", "addr", addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					return err
				}
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
			return nil
		},
	}
}
