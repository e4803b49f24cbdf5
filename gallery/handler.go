package gallery

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/networkteam/badge/views"
)

type Handler struct {
	options handlerOptions

	mux http.Handler
}

func NewHandler(opts ...HandlerOption) *Handler {
	options := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	mux := http.NewServeMux()
	handler := &Handler{
		options: options,
	}
	handler.mux = requestLogger(options.Logger, setHandlerOptions(options, mux))

	mux.HandleFunc("GET /{$}", handler.root)
	mux.HandleFunc("GET /badge", handler.getBadge)
	mux.HandleFunc("GET /source", handler.getSource)

	return handler
}

func setHandlerOptions(options handlerOptions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{
			PathPrefix: options.PathPrefix,
		})
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	s := h.options.ShowcaseSource()

	var filter views.BadgeVariant
	if v := r.URL.Query().Get("variant"); v != "" {
		filter = views.ParseVariant(v)
	}

	var (
		title     string
		specimens []views.Specimen
	)
	if s != nil {
		title = s.Title
		specimens = s.Specimens()
	}

	h.render(w, r, views.Gallery(views.GalleryProps{
		Title:     title,
		Specimens: specimens,
		Filter:    filter,
	}))
}

func (h *Handler) getBadge(w http.ResponseWriter, r *http.Request) {
	specimen, ok := specimenFromQuery(w, r)
	if !ok {
		return
	}

	h.render(w, r, specimen.Component())
}

func (h *Handler) getSource(w http.ResponseWriter, r *http.Request) {
	specimen, ok := specimenFromQuery(w, r)
	if !ok {
		return
	}

	h.render(w, r, views.HighlightSource(specimen.Component()))
}

func specimenFromQuery(w http.ResponseWriter, r *http.Request) (views.Specimen, bool) {
	query := r.URL.Query()
	text := query.Get("text")
	if text == "" {
		http.Error(w, "Missing badge text", http.StatusBadRequest)
		return views.Specimen{}, false
	}

	return views.Specimen{
		Text: text,
		Props: views.BadgeProps{
			Variant: views.ParseVariant(query.Get("variant")),
			Size:    views.ParseSize(query.Get("size")),
			Class:   query.Get("class"),
		},
	}, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.options.Logger.Error("Failed to render", slog.String("path", r.URL.Path), slog.Any("err", err))
			http.Error(w, "Failed to render", http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}
