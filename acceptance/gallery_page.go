//go:build acceptance
// +build acceptance

package acceptance

import (
	"regexp"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// GalleryPage wraps the gallery for page object style tests.
type GalleryPage struct {
	Page playwright.Page
	t    *testing.T
}

func OpenGalleryPage(t *testing.T, page playwright.Page, url string) *GalleryPage {
	t.Helper()

	_, err := page.Goto(url)
	require.NoError(t, err)

	err = page.Locator("#specimens").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err, "gallery did not render")

	return &GalleryPage{Page: page, t: t}
}

// Badge returns the badge of the first specimen with the given variant and size.
func (gp *GalleryPage) Badge(variant, size string) playwright.Locator {
	return gp.Page.Locator("li.specimen[data-variant='" + variant + "'][data-size='" + size + "'] > div > span").First()
}

// SpecimenCount returns the number of rendered specimens.
func (gp *GalleryPage) SpecimenCount() int {
	gp.t.Helper()

	count, err := gp.Page.Locator("li.specimen").Count()
	require.NoError(gp.t, err)
	return count
}

// ComputedStyle evaluates a CSS property of the element.
func (gp *GalleryPage) ComputedStyle(l playwright.Locator, property string) string {
	gp.t.Helper()

	value, err := l.Evaluate(`(el, prop) => getComputedStyle(el).getPropertyValue(prop)`, property)
	require.NoError(gp.t, err)
	s, _ := value.(string)
	return s
}

// FilterBy clicks the toolbar button of a variant.
func (gp *GalleryPage) FilterBy(label string) {
	gp.t.Helper()

	require.NoError(gp.t, gp.Page.Locator("nav a", playwright.PageLocatorOptions{HasText: label}).First().Click())
	require.NoError(gp.t, gp.Page.WaitForURL(regexp.MustCompile(`[?&]variant=`+regexp.QuoteMeta(label)+`$`)))
}
