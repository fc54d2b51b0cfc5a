package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonrepair-go/jsonrepair/internal/obslog"
	"github.com/jsonrepair-go/jsonrepair/internal/repair"
	"github.com/jsonrepair-go/jsonrepair/internal/repairconfig"
	"github.com/jsonrepair-go/jsonrepair/internal/rpc"
)

func newRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpc",
		Short: "Run the repair engine as a JSON-RPC 2.0 service over stdio",
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

			server := rpc.NewServer(engine, logger)
			return server.Run(cmd.Context())
		},
	}
}
