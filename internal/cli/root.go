// Package cli is the quickcutctl command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/quickcut/internal/config"
)

var cfg *config.Config

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quickcutctl",
		Short: "QuickCut barber shop administration",
		Long: `quickcutctl runs the QuickCut API and performs maintenance on the
shop data held in the configured store (STORE_DRIVER).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg != nil {
				return nil
			}
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
			return nil
		},
	}

	root.AddCommand(
		newServeCmd(),
		newSeedCmd(),
		newExportCmd(),
		newPasswdCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
