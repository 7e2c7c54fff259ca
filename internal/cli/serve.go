package cli

import (
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/quickcut/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(cfg)
		},
	}
}
