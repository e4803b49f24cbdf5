package gallery

import (
	"log/slog"

	"github.com/networkteam/badge/showcase"
)

// handlerOptions holds configuration for a gallery Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/_badges").
	PathPrefix string
	// ShowcaseSource returns the showcase to render on each request.
	ShowcaseSource func() *showcase.Showcase
	Logger         *slog.Logger
}

// HandlerOption configures a gallery Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// For example, "/_badges" if mounted at that path.
// This is used for generating correct URLs in the gallery.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithShowcase renders a fixed showcase.
// Default is showcase.Default() if not specified.
func WithShowcase(s *showcase.Showcase) HandlerOption {
	return func(o *handlerOptions) {
		o.ShowcaseSource = func() *showcase.Showcase { return s }
	}
}

// WithShowcaseSource renders the showcase returned by source on every request,
// e.g. showcase.Watcher.Current.
func WithShowcaseSource(source func() *showcase.Showcase) HandlerOption {
	return func(o *handlerOptions) {
		o.ShowcaseSource = source
	}
}

// WithLogger sets the request logger.
// Default is slog.Default() if not specified.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = logger
	}
}

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		ShowcaseSource: showcase.Default,
		Logger:         slog.Default(),
	}
}
