package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/networkteam/badge/showcase"
	"github.com/networkteam/badge/terminal"
	"github.com/networkteam/badge/views"
)

const (
	formatHTML = "html"
	formatANSI = "ansi"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Render badges as HTML or for the terminal",
		Example: `  badge render --variant success Active
  badge render --format ansi --size lg --variant error Failed
  badge render --file badges.yaml --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), root.verbose)

			format := cfg.GetString("format")
			if format != formatHTML && format != formatANSI {
				return fmt.Errorf("unknown format %q, expected %s or %s", format, formatHTML, formatANSI)
			}

			var entries []showcase.Entry
			if file := cfg.GetString("file"); file != "" {
				s, err := showcase.Load(file)
				if err != nil {
					return err
				}
				if err := showcase.Validate(s, cfg.GetBool("strict")); err != nil {
					return err
				}
				logger.Debug("Loaded showcase", "file", file, "badges", len(s.Badges))
				entries = s.Badges
			} else {
				text := strings.Join(args, " ")
				if text == "" {
					return errors.New("missing badge text, pass it as arguments or use --file")
				}
				entry := showcase.Entry{
					Text:    text,
					Variant: cfg.GetString("variant"),
					Size:    cfg.GetString("size"),
					Class:   cfg.GetString("class"),
				}
				if err := showcase.Validate(&showcase.Showcase{Badges: []showcase.Entry{entry}}, cfg.GetBool("strict")); err != nil {
					return err
				}
				entries = []showcase.Entry{entry}
			}

			return renderEntries(cmd, cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().String("variant", string(views.BadgeVariantDefault), "Badge variant ("+variantNames()+")")
	cmd.Flags().String("size", string(views.BadgeSizeMd), "Badge size ("+sizeNames()+")")
	cmd.Flags().String("class", "", "Additional classes appended to the badge classes")
	cmd.Flags().String("format", formatHTML, "Output format (html, ansi)")
	cmd.Flags().String("file", "", "Render all badges of a showcase YAML file")
	cmd.Flags().Bool("strict", false, "Reject unknown variants and sizes instead of using the defaults")

	return cmd
}

func renderEntries(cmd *cobra.Command, w io.Writer, format string, entries []showcase.Entry) error {
	for _, entry := range entries {
		var line string
		switch format {
		case formatANSI:
			line = terminal.Render(entry.Props(), entry.Text)
		default:
			html, err := views.RenderString(cmd.Context(), views.Badge(entry.Props(), views.Text(entry.Text)))
			if err != nil {
				return fmt.Errorf("rendering badge %q: %w", entry.Text, err)
			}
			line = html
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func variantNames() string {
	return strings.Join(lo.Map(views.Variants(), func(v views.BadgeVariant, _ int) string { return string(v) }), ", ")
}

func sizeNames() string {
	return strings.Join(lo.Map(views.Sizes(), func(s views.BadgeSize, _ int) string { return string(s) }), ", ")
}
