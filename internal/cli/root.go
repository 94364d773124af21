// Package cli defines the cobra command tree for the site binary.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"luxe_estate/internal/adapters/observability"
	"luxe_estate/internal/shared"
)

var (
	cfg         shared.Config
	flagBackend string
)

// NewRootCmd creates the root command. Configuration comes from the
// environment; --backend overrides CONTENT_BACKEND.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "luxe-site",
		Short:         "LuxeEstate property listing site",
		Long:          "Serve or pre-render the LuxeEstate listing site from the content store, and print the studio schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = shared.Load()
			if flagBackend != "" {
				if flagBackend != shared.BackendAPI && flagBackend != shared.BackendMySQL {
					return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, shared.BackendAPI, shared.BackendMySQL)
				}
				cfg.Backend = flagBackend
			}
			log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagBackend, "backend", "", "content backend (api|mysql), overrides CONTENT_BACKEND")

	root.AddCommand(
		newServeCmd(),
		newExportCmd(),
		newSchemaCmd(),
	)
	return root
}
