package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"
	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/badge"
	"github.com/networkteam/badge/gallery"
)

type service struct {
	Name   string
	Status string
}

var services = []service{
	{Name: "api", Status: "operational"},
	{Name: "worker", Status: "degraded"},
	{Name: "billing", Status: "outage"},
	{Name: "search", Status: "maintenance"},
}

func statusBadge(status string) templ.Component {
	variant := badge.VariantDefault
	switch status {
	case "operational":
		variant = badge.VariantSuccess
	case "degraded":
		variant = badge.VariantWarning
	case "outage":
		variant = badge.VariantError
	case "maintenance":
		variant = badge.VariantInfo
	}

	return badge.New(badge.Text(status), badge.WithVariant(variant), badge.WithSize(badge.SizeSm), badge.WithClass("uppercase"))
}

func statusPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!DOCTYPE html><html><head><title>Status</title><script src="https://cdn.tailwindcss.com"></script>`)
		// The page owns the design-system variables referenced by badges
		_, _ = io.WriteString(w, `<style>:root { --font-code: ui-monospace, monospace; --shadow-card: 0 1px 2px rgb(0 0 0 / 0.1); }</style>`)
		_, _ = io.WriteString(w, `</head><body class="p-8"><ul>`)
		for _, s := range services {
			_, _ = io.WriteString(w, `<li class="flex gap-4 py-1"><span class="w-24">`+templ.EscapeString(s.Name)+`</span>`)
			if err := statusBadge(s.Status).Render(ctx, w); err != nil {
				return err
			}
			_, _ = io.WriteString(w, `</li>`)
		}
		_, err := io.WriteString(w, `</ul><a href="/_badges/">All badges</a></body></html>`)
		return err
	})
}

func main() {
	// 1. Set up slog, info to stderr and debug as JSON to stdout

	logger := slog.New(
		slogmulti.Fanout(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		),
	)
	slog.SetDefault(logger)

	// 2. Render badges in an application page

	http.Handle("/", templ.Handler(statusPage()))

	// 3. Mount the badge gallery

	http.Handle("/_badges/", http.StripPrefix("/_badges", badge.GalleryHandler(
		gallery.WithPathPrefix("/_badges"),
		gallery.WithLogger(logger.With("component", "gallery")),
	)))

	// Run the server

	logger.Info("Starting server on :1095")
	if err := http.ListenAndServe(":1095", nil); err != nil {
		logger.Error("Failed to start server", slog.Group("error", slog.String("message", err.Error())))
		os.Exit(1)
	}
}
