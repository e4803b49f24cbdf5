package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type BadgeVariant string
type BadgeSize string

const (
	BadgeVariantDefault BadgeVariant = "default"
	BadgeVariantSuccess BadgeVariant = "success"
	BadgeVariantWarning BadgeVariant = "warning"
	BadgeVariantError   BadgeVariant = "error"
	BadgeVariantInfo    BadgeVariant = "info"

	BadgeSizeSm BadgeSize = "sm"
	BadgeSizeMd BadgeSize = "md"
	BadgeSizeLg BadgeSize = "lg"
)

type BadgeProps struct {
	Variant BadgeVariant
	Size    BadgeSize
	// Class is appended after all computed classes.
	Class string
}

const badgeBaseClasses = "inline-flex items-center font-bold rounded-full"

var badgeVariantClasses = map[BadgeVariant]string{
	BadgeVariantDefault: "bg-gray-500 text-white dark:bg-gray-700 dark:text-gray-300",
	BadgeVariantSuccess: "bg-green-500 text-white",
	BadgeVariantWarning: "bg-yellow-400 text-black",
	BadgeVariantError:   "bg-red-500 text-white",
	BadgeVariantInfo:    "bg-blue-500 text-white",
}

var badgeSizeClasses = map[BadgeSize]string{
	BadgeSizeSm: "px-2 py-0.5 text-xs",
	BadgeSizeMd: "px-2.5 py-1 text-sm",
	BadgeSizeLg: "px-3 py-1.5 text-base",
}

// Variants returns all badge variants in display order.
func Variants() []BadgeVariant {
	return []BadgeVariant{
		BadgeVariantDefault,
		BadgeVariantSuccess,
		BadgeVariantWarning,
		BadgeVariantError,
		BadgeVariantInfo,
	}
}

// Sizes returns all badge sizes from smallest to largest.
func Sizes() []BadgeSize {
	return []BadgeSize{BadgeSizeSm, BadgeSizeMd, BadgeSizeLg}
}

// ParseVariant resolves untrusted input to a variant. Unknown values resolve to the default variant.
func ParseVariant(s string) BadgeVariant {
	v := BadgeVariant(s)
	if _, ok := badgeVariantClasses[v]; ok {
		return v
	}
	return BadgeVariantDefault
}

// ParseSize resolves untrusted input to a size. Unknown values resolve to md.
func ParseSize(s string) BadgeSize {
	size := BadgeSize(s)
	if _, ok := badgeSizeClasses[size]; ok {
		return size
	}
	return BadgeSizeMd
}

// Resolved returns props with variant and size normalized.
func (p BadgeProps) Resolved() BadgeProps {
	p.Variant = ParseVariant(string(p.Variant))
	p.Size = ParseSize(string(p.Size))
	return p
}

// BadgeClasses returns the class list for a badge.
func BadgeClasses(props BadgeProps) string {
	props = props.Resolved()

	return ClassNames(
		badgeBaseClasses,
		badgeVariantClasses[props.Variant],
		badgeSizeClasses[props.Size],
		// Additional custom classes
		props.Class,
	)
}

// BadgeStyle returns the inline style of every badge.
func BadgeStyle() string {
	return "font-family: " + FontCode.Ref() + "; box-shadow: " + ShadowCard.Ref() + ";"
}

// Badge renders content inside an inline badge element.
//
// If content is nil, the children passed by a templ caller are rendered instead:
//
//	@views.Badge(views.BadgeProps{Variant: views.BadgeVariantSuccess}, nil) {
//		Active
//	}
func Badge(props BadgeProps, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := content
		if content == nil {
			content = templ.GetChildren(ctx)
			ctx = templ.ClearChildren(ctx)
		}

		if _, err := io.WriteString(w, `<span class="`+templ.EscapeString(BadgeClasses(props))+`" style="`+templ.EscapeString(BadgeStyle())+`">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</span>")
		return err
	})
}
