package views

import (
	"strings"

	"github.com/samber/lo"
)

// ClassNames joins class fragments into a single space separated class list.
// Empty fragments are dropped and whitespace inside fragments is collapsed.
// Duplicates are kept, later classes have to win the cascade.
func ClassNames(fragments ...string) string {
	var classes []string
	for _, fragment := range lo.Compact(fragments) {
		classes = append(classes, strings.Fields(fragment)...)
	}

	return strings.Join(classes, " ")
}
