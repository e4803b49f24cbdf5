package badge

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/networkteam/badge/gallery"
	"github.com/networkteam/badge/views"
)

type (
	Variant = views.BadgeVariant
	Size    = views.BadgeSize
)

const (
	VariantDefault = views.BadgeVariantDefault
	VariantSuccess = views.BadgeVariantSuccess
	VariantWarning = views.BadgeVariantWarning
	VariantError   = views.BadgeVariantError
	VariantInfo    = views.BadgeVariantInfo

	SizeSm = views.BadgeSizeSm
	SizeMd = views.BadgeSizeMd
	SizeLg = views.BadgeSizeLg
)

// Option configures a badge created by New.
type Option func(*views.BadgeProps)

// WithVariant sets the color variant. Default is VariantDefault.
func WithVariant(v Variant) Option {
	return func(p *views.BadgeProps) {
		p.Variant = v
	}
}

// WithSize sets the size. Default is SizeMd.
func WithSize(s Size) Option {
	return func(p *views.BadgeProps) {
		p.Size = s
	}
}

// WithClass appends custom classes after the computed badge classes.
func WithClass(class string) Option {
	return func(p *views.BadgeProps) {
		p.Class = class
	}
}

// New creates a badge component wrapping content.
//
// Unknown variants and sizes render with the defaults.
func New(content templ.Component, opts ...Option) templ.Component {
	props := views.BadgeProps{}
	for _, opt := range opts {
		opt(&props)
	}
	return views.Badge(props, content)
}

// Text returns content that renders s as escaped text.
func Text(s string) templ.Component {
	return views.Text(s)
}

// GalleryHandler returns a handler serving a preview page of badges.
func GalleryHandler(opts ...gallery.HandlerOption) http.Handler {
	return gallery.NewHandler(opts...)
}
