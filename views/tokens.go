package views

// DesignVar names a CSS custom property owned by the host design system.
// Badges only reference these, the values are defined by the page stylesheet.
type DesignVar string

const (
	FontCode   DesignVar = "--font-code"
	ShadowCard DesignVar = "--shadow-card"
)

// Ref returns the var() reference for use in a style declaration.
func (v DesignVar) Ref() string {
	return "var(" + string(v) + ")"
}
