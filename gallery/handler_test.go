package gallery_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/badge/gallery"
	"github.com/networkteam/badge/showcase"
)

func get(t *testing.T, h http.Handler, target string) *http.Response {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Result()
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestHandler_Root_DefaultShowcase(t *testing.T) {
	h := gallery.NewHandler()

	resp := get(t, h, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Equal(t, 15, strings.Count(body, `<li class="specimen`))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandler_Root_Filter(t *testing.T) {
	h := gallery.NewHandler(gallery.WithPathPrefix("/_badges"))

	body := readBody(t, get(t, h, "/?variant=warning"))
	assert.Equal(t, 3, strings.Count(body, `<li class="specimen`))
	assert.Equal(t, 3, strings.Count(body, `data-variant="warning"`))
	assert.Contains(t, body, `href="/_badges/?variant=info"`)

	// Unknown filters fall back to the default variant
	body = readBody(t, get(t, h, "/?variant=bogus"))
	assert.Equal(t, 3, strings.Count(body, `data-variant="default"`))
}

func TestHandler_Root_ShowcaseSource(t *testing.T) {
	current := &showcase.Showcase{Title: "First", Badges: []showcase.Entry{{Text: "One"}}}
	h := gallery.NewHandler(gallery.WithShowcaseSource(func() *showcase.Showcase { return current }))

	assert.Contains(t, readBody(t, get(t, h, "/")), "<title>First</title>")

	current = &showcase.Showcase{Title: "Second"}
	assert.Contains(t, readBody(t, get(t, h, "/")), "<title>Second</title>")
}

func TestHandler_Badge(t *testing.T) {
	h := gallery.NewHandler()

	resp := get(t, h, "/badge?text=Active&variant=success&size=lg&class=extra-class")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t,
		`<span class="inline-flex items-center font-bold rounded-full bg-green-500 text-white px-3 py-1.5 text-base extra-class" `+
			`style="font-family: var(--font-code); box-shadow: var(--shadow-card);">Active</span>`,
		readBody(t, resp),
	)
}

func TestHandler_Badge_FailClosed(t *testing.T) {
	h := gallery.NewHandler()

	assert.Equal(t,
		readBody(t, get(t, h, "/badge?text=x")),
		readBody(t, get(t, h, "/badge?text=x&variant=nope&size=huge")),
	)
}

func TestHandler_Badge_MissingText(t *testing.T) {
	h := gallery.NewHandler()

	resp := get(t, h, "/badge?variant=info")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Source(t *testing.T) {
	h := gallery.NewHandler()

	resp := get(t, h, "/source?text=Active&variant=info")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, `class="chroma"`)
	assert.Contains(t, body, "bg-blue-500")
}

func TestHandler_NotFound(t *testing.T) {
	h := gallery.NewHandler()

	assert.Equal(t, http.StatusNotFound, get(t, h, "/unknown").StatusCode)
}

func TestHandler_RequestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := gallery.NewHandler(gallery.WithLogger(logger))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/badge?text=x", nil)
	req.Header.Set("X-Request-Id", "req-123")
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, buf.String(), "requestId=req-123")
	assert.Contains(t, buf.String(), "path=/badge")
	assert.Contains(t, buf.String(), "status=200")
}
