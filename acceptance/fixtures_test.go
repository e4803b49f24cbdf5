//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/networkteam/badge/showcase"
)

// TestFixtures bundles all commonly needed test fixtures.
type TestFixtures struct {
	App     *TestApp
	PW      *PlaywrightFixture
	Gallery *GalleryPage
}

// WithTestFixtures creates all fixtures, registers cleanup with t.Cleanup(), and calls the test function.
func WithTestFixtures(t *testing.T, s *showcase.Showcase, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	app := NewTestApp(t, s)
	t.Cleanup(func() { app.Close() })

	pw := NewPlaywrightFixture(t)
	t.Cleanup(func() { pw.Close() })

	gallery := OpenGalleryPage(t, pw.NewPage(t), app.GalleryURL)

	fn(t, &TestFixtures{
		App:     app,
		PW:      pw,
		Gallery: gallery,
	})
}
