// Package showcase loads lists of badges from YAML files.
package showcase

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/networkteam/badge/views"
)

type Showcase struct {
	Title  string  `yaml:"title"`
	Badges []Entry `yaml:"badges" validate:"dive"`
}

type Entry struct {
	Text    string `yaml:"text" validate:"required"`
	Variant string `yaml:"variant" validate:"omitempty,badge_variant"`
	Size    string `yaml:"size" validate:"omitempty,badge_size"`
	Class   string `yaml:"class"`
}

// Props resolves the entry to badge props. Unknown variants and sizes fall back to their defaults.
func (e Entry) Props() views.BadgeProps {
	return views.BadgeProps{
		Variant: views.ParseVariant(e.Variant),
		Size:    views.ParseSize(e.Size),
		Class:   e.Class,
	}
}

// Specimens converts the entries for the gallery.
func (s *Showcase) Specimens() []views.Specimen {
	specimens := make([]views.Specimen, 0, len(s.Badges))
	for _, e := range s.Badges {
		specimens = append(specimens, views.Specimen{Text: e.Text, Props: e.Props()})
	}
	return specimens
}

// Parse decodes a showcase document. Unknown fields are rejected.
func Parse(r io.Reader) (*Showcase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Showcase
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decoding showcase: %w", err)
	}
	return &s, nil
}

// Load reads and parses the showcase file at path.
func Load(path string) (*Showcase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening showcase: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns a showcase with every variant in every size.
func Default() *Showcase {
	s := &Showcase{Title: "Badges"}
	for _, variant := range views.Variants() {
		for _, size := range views.Sizes() {
			s.Badges = append(s.Badges, Entry{
				Text:    string(variant),
				Variant: string(variant),
				Size:    string(size),
			})
		}
	}
	return s
}
