package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	server "luxe_estate/internal/adapters/http_server"
	"luxe_estate/internal/adapters/imageurl"
	"luxe_estate/internal/adapters/observability"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Long:  "Render pages on request, re-reading content at most once per revalidation window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.HTTPAddr
			}
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")
	return cmd
}

func runServe(ctx context.Context, addr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := openContent(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	pages, err := server.NewPages(svc, imageurl.New(cfg.ProjectID, cfg.Dataset), server.WithStudioURL(cfg.StudioURL))
	if err != nil {
		return err
	}

	srv := server.New(15 * time.Second)
	reg := observability.InitRegistry()
	if cfg.MetricsAddr != "" {
		observability.Serve(cfg.MetricsAddr, observability.MetricsHandler(reg))
	} else {
		srv.Mount("/metrics", observability.MetricsHandler(reg))
	}
	srv.MountPages(pages, cfg.Revalidate)

	httpSrv := &http.Server{Addr: addr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Str("backend", cfg.Backend).Dur("revalidate", cfg.Revalidate).Msg("site listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("site stopped")
	return nil
}
