package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	server "luxe_estate/internal/adapters/http_server"
	"luxe_estate/internal/adapters/imageurl"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Pre-render the site into a directory",
		Long:  "Render the landing, listing and contact pages plus one page per property slug as static HTML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openContent(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			pages, err := server.NewPages(svc, imageurl.New(cfg.ProjectID, cfg.Dataset), server.WithStudioURL(cfg.StudioURL))
			if err != nil {
				return err
			}
			rep, err := pages.Export(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages to %s\n", len(rep.Pages), out)
			for _, s := range rep.SkippedSlugs {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped %s\n", s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}
