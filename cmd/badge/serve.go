package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkteam/badge/gallery"
	"github.com/networkteam/badge/showcase"
)

type serveConfig struct {
	Addr       string
	PathPrefix string
	Showcase   string
	Watch      bool
	Strict     bool
}

func newServeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a gallery previewing all badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), root.verbose)

			cfg := serveConfig{
				Addr:       v.GetString("addr"),
				PathPrefix: strings.TrimRight(v.GetString("path-prefix"), "/"),
				Showcase:   v.GetString("showcase"),
				Watch:      v.GetBool("watch"),
				Strict:     v.GetBool("strict"),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, logger)
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().String("path-prefix", "", "Path prefix to mount the gallery at (e.g. /_badges)")
	cmd.Flags().String("showcase", "", "Showcase YAML file to render instead of all variants and sizes")
	cmd.Flags().Bool("watch", false, "Reload the showcase file on changes")
	cmd.Flags().Bool("strict", false, "Reject unknown variants and sizes in the showcase file")

	return cmd
}

// newServeHandler builds the gallery handler. The returned close function releases the showcase watcher.
func newServeHandler(cfg serveConfig, logger *slog.Logger) (http.Handler, func() error, error) {
	opts := []gallery.HandlerOption{
		gallery.WithPathPrefix(cfg.PathPrefix),
		gallery.WithLogger(logger),
	}
	closeFn := func() error { return nil }

	switch {
	case cfg.Showcase == "":
		if cfg.Watch {
			return nil, nil, errors.New("--watch requires --showcase")
		}
	case cfg.Watch:
		w, err := showcase.NewWatcher(cfg.Showcase, showcase.WatcherOptions{Strict: cfg.Strict, Logger: logger})
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, gallery.WithShowcaseSource(w.Current))
		closeFn = w.Close
	default:
		s, err := showcase.Load(cfg.Showcase)
		if err != nil {
			return nil, nil, err
		}
		if err := showcase.Validate(s, cfg.Strict); err != nil {
			return nil, nil, err
		}
		opts = append(opts, gallery.WithShowcase(s))
	}

	handler := gallery.NewHandler(opts...)
	if cfg.PathPrefix == "" {
		return handler, closeFn, nil
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.PathPrefix+"/", http.StripPrefix(cfg.PathPrefix, handler))
	return mux, closeFn, nil
}

func runServe(ctx context.Context, cfg serveConfig, logger *slog.Logger) error {
	handler, closeHandler, err := newServeHandler(cfg, logger)
	if err != nil {
		return err
	}
	defer closeHandler()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving badge gallery", slog.String("addr", cfg.Addr), slog.String("pathPrefix", cfg.PathPrefix+"/"))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving gallery: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
