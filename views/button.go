package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type ButtonVariant string
type ButtonSize string

const (
	ButtonVariantDefault ButtonVariant = ""
	ButtonVariantOutline ButtonVariant = "outline"

	ButtonSizeDefault ButtonSize = ""
	ButtonSizeSm      ButtonSize = "sm"
)

type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	Class   string
}

func buttonClasses(props ButtonProps) string {
	var variantClasses, sizeClasses string

	switch props.Variant {
	case ButtonVariantOutline:
		variantClasses = "border border-neutral-200 bg-white hover:bg-neutral-200 text-black"
	default: // DefaultVariant
		variantClasses = "bg-black text-white hover:bg-black/90"
	}

	switch props.Size {
	case ButtonSizeSm:
		sizeClasses = "h-8 px-3"
	default: // DefaultSize
		sizeClasses = "h-10 px-4 py-2"
	}

	return ClassNames(
		"cursor-pointer inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium transition-colors",
		variantClasses,
		sizeClasses,
		props.Class,
	)
}

// LinkButton renders a link styled as a button.
func LinkButton(props ButtonProps, href string, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<a href="`+templ.EscapeString(string(templ.URL(href)))+`" class="`+templ.EscapeString(buttonClasses(props))+`">`+templ.EscapeString(label)+`</a>`)
		return err
	})
}
