//go:build acceptance
// +build acceptance

package acceptance

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/networkteam/badge"
	"github.com/networkteam/badge/gallery"
	"github.com/networkteam/badge/showcase"
)

// TestApp serves the badge gallery below /_badges.
type TestApp struct {
	Server     *httptest.Server
	GalleryURL string
}

func NewTestApp(t *testing.T, s *showcase.Showcase) *TestApp {
	t.Helper()

	if s == nil {
		s = showcase.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("/_badges/", http.StripPrefix("/_badges", badge.GalleryHandler(
		gallery.WithPathPrefix("/_badges"),
		gallery.WithShowcase(s),
		gallery.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)))

	server := httptest.NewServer(mux)
	return &TestApp{
		Server:     server,
		GalleryURL: server.URL + "/_badges/",
	}
}

func (a *TestApp) Close() {
	a.Server.Close()
}
