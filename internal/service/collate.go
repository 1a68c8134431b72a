package service

import (
	"slices"

	"dictionary/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByName orders words with the root Unicode collation so accented and
// non-Latin names sort the way readers expect. Ties keep storage order.
func sortByName(words []domain.Word) {
	c := collate.New(language.Und)
	slices.SortStableFunc(words, func(a, b domain.Word) int {
		return c.CompareString(a.Name, b.Name)
	})
}
