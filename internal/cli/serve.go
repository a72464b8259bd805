package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"impractical.co/learnphoto/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves a live preview of the site",
		Long: `The serve command renders every page on request. When a content file is
configured, it's watched and the site is reloaded whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = a.cfg.Addr
			}

			site, err := a.site()
			if err != nil {
				return err
			}
			srv := web.NewServer(site, web.ServerConfig{
				ImagesDir: a.cfg.ImagesDir,
				Logger:    a.logger,
			})

			if a.cfg.ContentFile != "" {
				stop, err := watchContent(ctx, a.cfg.ContentFile, reloadDebounce, func() {
					site, err := a.site()
					if err != nil {
						a.logger.ErrorContext(ctx, "error reloading content, keeping previous content", "error", err)
						return
					}
					srv.SetSite(site)
					a.logger.InfoContext(ctx, "content reloaded", "path", a.cfg.ContentFile)
				})
				if err != nil {
					return err
				}
				defer func() {
					if err := stop(); err != nil {
						a.logger.ErrorContext(ctx, "error closing watcher", "error", err)
					}
				}()
			}

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       2 * time.Minute,
			}
			errs := make(chan error, 1)
			go func() {
				errs <- httpSrv.ListenAndServe()
			}()
			a.logger.InfoContext(ctx, "serving site", "addr", addr)

			select {
			case err := <-errs:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				a.logger.InfoContext(ctx, "shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (overrides addr)")
	return cmd
}
