package views

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

type HandlerOptions struct {
	PathPrefix string
}

type handlerOptionsKey struct{}

func WithHandlerOptions(ctx context.Context, opts HandlerOptions) context.Context {
	return context.WithValue(ctx, handlerOptionsKey{}, opts)
}

func GetHandlerOptions(ctx context.Context) HandlerOptions {
	opts, ok := ctx.Value(handlerOptionsKey{}).(HandlerOptions)
	if !ok {
		return HandlerOptions{}
	}
	return opts
}

// Specimen is a single badge shown in the gallery.
type Specimen struct {
	Text  string
	Props BadgeProps
}

func (s Specimen) Component() templ.Component {
	return Badge(s.Props, Text(s.Text))
}

type GalleryProps struct {
	Title     string
	Specimens []Specimen
	// Filter limits specimens to a variant, empty shows all.
	Filter BadgeVariant
}

// FilterSpecimens returns the specimens whose resolved variant matches filter.
func FilterSpecimens(specimens []Specimen, filter BadgeVariant) []Specimen {
	if filter == "" {
		return specimens
	}
	filter = ParseVariant(string(filter))
	return lo.Filter(specimens, func(s Specimen, _ int) bool {
		return s.Props.Resolved().Variant == filter
	})
}

// designVarStyles defines the design-system variables for the gallery page.
// Applications embedding badges provide their own definitions.
const designVarStyles = `<style>
:root {
	--font-code: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace;
	--shadow-card: 0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1);
}
</style>`

// Gallery renders the full preview page.
func Gallery(props GalleryProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := props.Title
		if title == "" {
			title = "Badges"
		}

		var err error
		write := func(s string) {
			if err == nil {
				_, err = io.WriteString(w, s)
			}
		}
		render := func(c templ.Component) {
			if err == nil {
				err = c.Render(ctx, w)
			}
		}

		write(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>` + templ.EscapeString(title) + `</title>`)
		write(`<script src="https://cdn.tailwindcss.com"></script>`)
		write(designVarStyles)
		render(chromaStyles())
		write(`</head><body class="p-8 bg-neutral-50"><h1 class="text-2xl font-bold mb-4">` + templ.EscapeString(title) + `</h1>`)
		render(galleryToolbar(props.Filter))

		write(`<ul id="specimens" class="space-y-4">`)
		for _, specimen := range FilterSpecimens(props.Specimens, props.Filter) {
			resolved := specimen.Props.Resolved()
			write(`<li class="specimen flex items-start gap-6" data-variant="` + templ.EscapeString(string(resolved.Variant)) + `" data-size="` + templ.EscapeString(string(resolved.Size)) + `"><div class="w-48">`)
			render(specimen.Component())
			write(`</div><div class="flex-1 text-xs">`)
			render(HighlightSource(specimen.Component()))
			write(`</div></li>`)
		}
		write(`</ul></body></html>`)

		return err
	})
}

func galleryToolbar(active BadgeVariant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pathPrefix := GetHandlerOptions(ctx).PathPrefix

		buttons := []templ.Component{
			LinkButton(toolbarButtonProps(active == ""), pathPrefix+"/", "All"),
		}
		for _, variant := range Variants() {
			href := pathPrefix + "/?" + url.Values{"variant": {string(variant)}}.Encode()
			buttons = append(buttons, LinkButton(toolbarButtonProps(active == variant), href, string(variant)))
		}

		if _, err := io.WriteString(w, `<nav class="flex gap-2 mb-6">`); err != nil {
			return err
		}
		if err := Group(buttons...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}

func toolbarButtonProps(active bool) ButtonProps {
	if active {
		return ButtonProps{Size: ButtonSizeSm}
	}
	return ButtonProps{Variant: ButtonVariantOutline, Size: ButtonSizeSm}
}
